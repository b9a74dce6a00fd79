package buffer

// bufferSnapshot is the state one undo step returns to. Lines are private
// copies; the live buffer never aliases them.
type bufferSnapshot struct {
	lines  [][]rune
	cursor Pos
	sel    selectionState
}

// historyStack is a bounded LIFO of snapshots. A non-positive limit keeps
// nothing.
type historyStack struct {
	items []bufferSnapshot
}

func (h *historyStack) push(s bufferSnapshot, limit int) {
	if limit <= 0 {
		return
	}
	h.items = append(h.items, s)
	if n := len(h.items); n > limit {
		h.items = append(h.items[:0:0], h.items[n-limit:]...)
	}
}

func (h *historyStack) pop() (bufferSnapshot, bool) {
	n := len(h.items)
	if n == 0 {
		return bufferSnapshot{}, false
	}
	s := h.items[n-1]
	h.items = h.items[:n-1]
	return s, true
}

func (h *historyStack) clear() { h.items = nil }

type historyState struct {
	undo historyStack
	redo historyStack
}

func (b *Buffer) snapshot() bufferSnapshot {
	return bufferSnapshot{
		lines:  copyLines(b.lines),
		cursor: b.cursor,
		sel:    b.sel,
	}
}

func copyLines(lines [][]rune) [][]rune {
	out := make([][]rune, len(lines))
	for i, l := range lines {
		out[i] = append([]rune(nil), l...)
	}
	return out
}

// restore installs s. A selection that collapsed or fell outside the
// restored text is dropped rather than clamped into a different span.
func (b *Buffer) restore(s bufferSnapshot) {
	b.lines = copyLines(s.lines)
	b.cursor = b.clampPos(s.cursor)
	b.sel = selectionState{}

	if !s.sel.active {
		return
	}
	anchor, end := b.clampPos(s.sel.anchor), b.clampPos(s.sel.end)
	if anchor != s.sel.anchor || end != s.sel.end || anchor == end {
		return
	}
	b.sel = selectionState{active: true, anchor: anchor, end: end}
}

func (b *Buffer) recordUndo(prev bufferSnapshot) {
	b.hist.undo.push(prev, b.opt.HistoryLimit)
	b.hist.redo.clear()
}

func (b *Buffer) CanUndo() bool { return len(b.hist.undo.items) > 0 }

func (b *Buffer) CanRedo() bool { return len(b.hist.redo.items) > 0 }

// Undo restores the state before the last edit, including its selection,
// so undoing a style brings back the plain text still selected.
func (b *Buffer) Undo() bool {
	return b.travel(&b.hist.undo, &b.hist.redo, ChangeUndo)
}

// Redo reapplies the last undone edit and its resulting selection.
func (b *Buffer) Redo() bool {
	return b.travel(&b.hist.redo, &b.hist.undo, ChangeRedo)
}

// travel pops a snapshot from from, saves the current state on to and
// records the difference as a single applied edit.
func (b *Buffer) travel(from, to *historyStack, kind ChangeKind) bool {
	target, ok := from.pop()
	if !ok {
		return false
	}

	cur := b.snapshot()
	change := b.beginChange(kind)
	to.push(cur, b.opt.HistoryLimit)

	b.restore(target)
	b.version++
	if applied, ok := diffAppliedEdit(cur.lines, b.lines); ok {
		change.addAppliedEdit(applied)
	}
	b.commitChange(change)
	return true
}
