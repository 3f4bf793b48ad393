package easel

import (
	"context"
	"errors"
	"fmt"
)

// SnapshotStore persists named document snapshots across sessions. The
// store subpackage provides a SQLite-backed implementation; the editor
// itself has no knowledge of the storage medium.
type SnapshotStore interface {
	Save(ctx context.Context, name string, snap Snapshot) error
	Load(ctx context.Context, name string) (Snapshot, error)
	Remove(ctx context.Context, name string) error
}

// Editor errors.
var (
	// ErrNoStore is returned by persistence methods when the editor was
	// created without a snapshot store.
	ErrNoStore = errors.New("easel: no snapshot store configured")
	// ErrNoSnapshot is returned by SaveAs when nothing has been committed.
	ErrNoSnapshot = errors.New("easel: no snapshot to save")
)

// Editor ties the document history to a host editing session: it records
// committed states, answers undo/redo requests, enforces the configured
// history limit, and round-trips named documents through an optional
// SnapshotStore.
//
// An Editor is not safe for concurrent mutation; the host must serialize
// calls from concurrent UI callbacks.
type Editor struct {
	history History
	store   SnapshotStore
	cfg     *Config
}

// EditorOption configures an Editor during creation.
type EditorOption func(*Editor)

// WithConfig sets the editor configuration. The config is copied, so
// later changes by the caller do not affect the editor. Nil is ignored.
func WithConfig(cfg *Config) EditorOption {
	return func(e *Editor) {
		if cfg != nil {
			c := *cfg
			e.cfg = &c
		}
	}
}

// WithStore sets the snapshot store used by SaveAs, LoadFrom and Discard.
func WithStore(s SnapshotStore) EditorOption {
	return func(e *Editor) { e.store = s }
}

// WithHistoryLimit overrides the configured history limit.
func WithHistoryLimit(n int) EditorOption {
	return func(e *Editor) { e.cfg.HistoryLimit = n }
}

// NewEditor creates an editor session with default configuration, adjusted
// by any options.
func NewEditor(opts ...EditorOption) *Editor {
	e := &Editor{cfg: DefaultConfig()}
	for _, o := range opts {
		o(e)
	}
	return e
}

// Config returns the editor's active configuration.
func (e *Editor) Config() *Config { return e.cfg }

// Commit records a new current document state. The very first commit
// establishes the floor state that can never be undone away. Committing
// after an undo discards the redo future.
func (e *Editor) Commit(snap Snapshot) {
	e.history.Push(snap)
	e.history.trimOldest(e.cfg.HistoryLimit)
}

// Undo steps the document back one state. The returned snapshot is the
// state to display; ok is false when already at the floor state, in which
// case the host must not re-render.
func (e *Editor) Undo() (Snapshot, bool) {
	return e.history.Undo()
}

// Redo re-applies the most recently undone state. ok is false when no
// future exists.
func (e *Editor) Redo() (Snapshot, bool) {
	return e.history.Redo()
}

// Latest returns the current document state, or false if nothing has been
// committed yet.
func (e *Editor) Latest() (Snapshot, bool) {
	return e.history.Latest()
}

// CanUndo reports whether Undo would be effective.
func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

// CanRedo reports whether Redo would be effective.
func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// History exposes the underlying history for diagnostics.
func (e *Editor) History() *History { return &e.history }

// Reset discards the entire history. Used on "clear canvas".
func (e *Editor) Reset() {
	e.history.Clear()
	Logger().Debug("editor: reset")
}

// SaveAs persists the current document state under name. An empty name
// falls back to the configured autosave name.
func (e *Editor) SaveAs(ctx context.Context, name string) error {
	if e.store == nil {
		return ErrNoStore
	}
	if name == "" {
		name = e.cfg.Autosave
	}
	snap, ok := e.history.Latest()
	if !ok {
		return ErrNoSnapshot
	}
	if err := e.store.Save(ctx, name, snap); err != nil {
		return fmt.Errorf("save %q: %w", name, err)
	}
	return nil
}

// LoadFrom retrieves the named document from the store, replaces the
// history with it as the new floor state, and returns it for rendering.
func (e *Editor) LoadFrom(ctx context.Context, name string) (Snapshot, error) {
	if e.store == nil {
		return "", ErrNoStore
	}
	snap, err := e.store.Load(ctx, name)
	if err != nil {
		return "", fmt.Errorf("load %q: %w", name, err)
	}
	e.history.Clear()
	e.history.Push(snap)
	return snap, nil
}

// Discard removes the named document from the store. The in-memory
// history is untouched.
func (e *Editor) Discard(ctx context.Context, name string) error {
	if e.store == nil {
		return ErrNoStore
	}
	if err := e.store.Remove(ctx, name); err != nil {
		return fmt.Errorf("remove %q: %w", name, err)
	}
	return nil
}
