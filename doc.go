// Package easel provides the document core of a raster/vector image editor.
//
// # Overview
//
// easel implements the pieces of an editor that sit behind the drawing
// surface: linear undo/redo history over opaque document snapshots, a
// content-aware bounding-box scanner that finds the visually opaque extent
// of a rasterized object, and alignment math that snaps that opaque content
// (rather than a padded nominal box) to the edges and center lines of the
// surface.
//
// # Quick Start
//
//	import "github.com/easelgfx/easel"
//
//	ed := easel.NewEditor()
//	ed.Commit(serialize(doc))       // on every committed edit
//	if snap, ok := ed.Undo(); ok {
//	    render(snap)                // host re-renders the returned state
//	}
//
//	pm, _ := easel.DecodePixmap(f)  // rasterized object
//	ob := easel.ScanOpaqueBounds(pm)
//	pos := easel.Align(easel.AlignCenterH, nominal, ob, pos, 800, 600)
//
// # History Semantics
//
// History keeps the current document state as the top of its undo stack, so
// an undo stack of length 1 means "at the oldest known state" and Undo
// refuses to go further. A new Commit after undoing discards the redo
// future. Undo and Redo report ineffective calls with a false ok value; the
// host must not re-render in that case.
//
// # Persistence
//
// The store subpackage provides a SQLite-backed SnapshotStore for keeping
// named documents across sessions. The core never touches storage itself.
package easel
