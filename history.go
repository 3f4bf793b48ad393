package easel

// Snapshot is an opaque serialized representation of the entire document
// state. The history never interprets or compares snapshot contents; a
// snapshot is identified only by its position in the timeline, so pushing
// the same value twice records two distinct states.
type Snapshot string

// ActionStack is an ordered stack of snapshots, insertion order being
// chronological push order. The zero value is an empty stack ready for use.
//
// An ActionStack is not safe for concurrent mutation; see History for the
// serialization contract.
type ActionStack struct {
	items []Snapshot
}

// Push appends a snapshot to the top of the stack. No size limit is
// enforced here; the host may impose one (see Editor).
func (s *ActionStack) Push(snap Snapshot) {
	s.items = append(s.items, snap)
}

// Pop removes and returns the top snapshot. The second return value is
// false when the stack is empty.
func (s *ActionStack) Pop() (Snapshot, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	snap := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return snap, true
}

// Current returns the top snapshot without removing it. The second return
// value is false when the stack is empty.
func (s *ActionStack) Current() (Snapshot, bool) {
	if len(s.items) == 0 {
		return "", false
	}
	return s.items[len(s.items)-1], true
}

// Len returns the number of snapshots on the stack.
func (s *ActionStack) Len() int { return len(s.items) }

// Empty reports whether the stack holds no snapshots.
func (s *ActionStack) Empty() bool { return len(s.items) == 0 }

// Clear removes all snapshots, keeping allocated capacity.
func (s *ActionStack) Clear() { s.items = s.items[:0] }

// Values returns an independent copy of the stack contents, bottom first.
// Mutating the returned slice never affects the stack.
func (s *ActionStack) Values() []Snapshot {
	out := make([]Snapshot, len(s.items))
	copy(out, s.items)
	return out
}

// dropOldest removes n snapshots from the bottom of the stack.
func (s *ActionStack) dropOldest(n int) {
	if n <= 0 {
		return
	}
	if n >= len(s.items) {
		s.items = s.items[:0]
		return
	}
	s.items = append(s.items[:0], s.items[n:]...)
}

// History provides linear undo/redo over document snapshots with the
// classic branch-discarding contract: a new push after undoing makes the
// discarded future unreachable.
//
// The undo stack holds the current document state as its top element, not
// just the states prior to it. An undo stack of length 1 therefore means
// "at the oldest known state", and Undo refuses to pop further — the
// bottom entry is the floor state that can never be undone away.
//
// History assumes no concurrent mutation: the host must serialize Push,
// Undo, Redo and Clear. Concurrent reads through Values are safe because
// they copy.
type History struct {
	undo ActionStack
	redo ActionStack
}

// Push records a new current state and discards any redo future.
func (h *History) Push(snap Snapshot) {
	h.undo.Push(snap)
	h.redo.Clear()
	Logger().Debug("history: push", "undo", h.undo.Len())
}

// Undo steps back one state and returns the state the document should now
// display. It is only effective when more than one state is recorded: the
// current top moves to the redo stack and the new top is returned. At the
// floor state (or with no history at all) Undo returns false and mutates
// nothing.
func (h *History) Undo() (Snapshot, bool) {
	if h.undo.Len() <= 1 {
		return "", false
	}
	snap, _ := h.undo.Pop()
	h.redo.Push(snap)
	cur, _ := h.undo.Current()
	Logger().Debug("history: undo", "undo", h.undo.Len(), "redo", h.redo.Len())
	return cur, true
}

// Redo re-applies the most recently undone state and returns it. When no
// future exists, Redo returns false and mutates nothing.
func (h *History) Redo() (Snapshot, bool) {
	snap, ok := h.redo.Pop()
	if !ok {
		return "", false
	}
	h.undo.Push(snap)
	Logger().Debug("history: redo", "undo", h.undo.Len(), "redo", h.redo.Len())
	return snap, true
}

// Latest returns the current document state without mutating the history.
// The second return value is false only when nothing has ever been pushed.
func (h *History) Latest() (Snapshot, bool) {
	return h.undo.Current()
}

// CanUndo reports whether Undo would be effective.
func (h *History) CanUndo() bool { return h.undo.Len() > 1 }

// CanRedo reports whether Redo would be effective.
func (h *History) CanRedo() bool { return !h.redo.Empty() }

// Clear empties both stacks. Used when the whole document is discarded.
func (h *History) Clear() {
	h.undo.Clear()
	h.redo.Clear()
}

// Values returns independent copies of both stacks' contents for
// diagnostics and tests, bottom first.
func (h *History) Values() (undo, redo []Snapshot) {
	return h.undo.Values(), h.redo.Values()
}

// trimOldest evicts the oldest recorded states so that at most max remain
// on the undo stack. The current state is always retained.
func (h *History) trimOldest(max int) {
	if max < 1 || h.undo.Len() <= max {
		return
	}
	n := h.undo.Len() - max
	h.undo.dropOldest(n)
	Logger().Debug("history: trim", "dropped", n, "undo", h.undo.Len())
}
