// Command easeldemo exercises the easel document core: it scans the
// opaque bounds of a rasterized object, prints the six alignment
// corrections, and walks a commit/undo/redo cycle with optional SQLite
// persistence.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/easelgfx/easel"
	"github.com/easelgfx/easel/store"
)

func main() {
	var (
		input      = flag.String("input", "", "PNG or BMP file to scan (default: built-in demo raster)")
		configPath = flag.String("config", "easel.toml", "configuration file")
		dbPath     = flag.String("db", "", "SQLite snapshot database (empty: no persistence)")
		saveName   = flag.String("save", "", "save the final state under this document name")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		easel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg, err := easel.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pm, err := loadPixmap(*input)
	if err != nil {
		log.Fatalf("Failed to load input: %v", err)
	}

	ob := easel.ScanOpaqueBounds(pm)
	fmt.Printf("raster %dx%d, opaque bounds x1=%d y1=%d x2=%d y2=%d (%dx%d)\n",
		pm.Width(), pm.Height(), ob.X1, ob.Y1, ob.X2, ob.Y2, ob.Width, ob.Height)

	nominal := easel.R(0, 0, float64(pm.Width()), float64(pm.Height()))
	pos := easel.Pt(0, 0)
	anchors := []easel.Anchor{
		easel.AlignLeft, easel.AlignCenterH, easel.AlignRight,
		easel.AlignTop, easel.AlignCenterV, easel.AlignBottom,
	}
	for _, a := range anchors {
		p := easel.Align(a, nominal, ob, pos, cfg.Surface.Width, cfg.Surface.Height)
		fmt.Printf("align %-8s -> (%.1f, %.1f)\n", a, p.X, p.Y)
	}

	opts := []easel.EditorOption{easel.WithConfig(cfg)}
	var st *store.Store
	if *dbPath != "" {
		st, err = store.Open(*dbPath)
		if err != nil {
			log.Fatalf("Failed to open store: %v", err)
		}
		defer func() {
			_ = st.Close()
		}()
		opts = append(opts, easel.WithStore(st))
	}
	ed := easel.NewEditor(opts...)

	// Three edits, then step back and forward through the history.
	ed.Commit("state: blank surface")
	ed.Commit(easel.Snapshot(fmt.Sprintf("state: object at (%.0f, %.0f)", pos.X, pos.Y)))
	aligned := easel.Align(easel.AlignCenterH, nominal, ob, pos, cfg.Surface.Width, cfg.Surface.Height)
	ed.Commit(easel.Snapshot(fmt.Sprintf("state: object centered at (%.1f, %.1f)", aligned.X, aligned.Y)))

	if snap, ok := ed.Undo(); ok {
		fmt.Printf("undo  -> %s\n", snap)
	}
	if snap, ok := ed.Redo(); ok {
		fmt.Printf("redo  -> %s\n", snap)
	}

	if st != nil && *saveName != "" {
		if err := ed.SaveAs(context.Background(), *saveName); err != nil {
			log.Fatalf("Failed to save: %v", err)
		}
		docs, err := st.List(context.Background())
		if err != nil {
			log.Fatalf("Failed to list store: %v", err)
		}
		for _, d := range docs {
			fmt.Printf("stored %q revision %s at %s\n", d.Name, d.Revision, d.UpdatedAt.Format("15:04:05"))
		}
	}
}

// loadPixmap decodes the given image file, or synthesizes a padded demo
// raster when no input is provided.
func loadPixmap(path string) (*easel.Pixmap, error) {
	if path == "" {
		pm := easel.NewPixmap(64, 64)
		pm.Fill(16, 16, 48, 48, easel.Hex("#3a86ff"))
		return pm, nil
	}

	f, err := os.Open(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	return easel.DecodePixmap(f)
}
