package buffer

import "errors"

// ErrNoSelection is returned by selection operations when start == end.
var ErrNoSelection = errors.New("buffer: no text selected")

// TransformSelection rewrites the selected text with fn and splices the
// result back in place. Afterwards the selection covers exactly the
// replacement: [start, start+runeLen(result)).
//
// With an empty selection fn is not called and the buffer is untouched.
// The edit is a single undo step.
func (b *Buffer) TransformSelection(fn func(string) string) (Range, error) {
	r, ok := b.Selection()
	if !ok {
		return Range{}, ErrNoSelection
	}

	out := fn(textForLinesRange(b.lines, r))

	after, changed := b.edit(ChangeTransform, r, out)
	if !changed {
		// Nothing was mappable; the selection already covers the result.
		return r, nil
	}

	b.sel = selectionState{active: after.Start != after.End, anchor: after.Start, end: after.End}
	b.cursor = after.End
	if b.hasLastChange {
		b.lastChange.SelectionAfter = selectionStateFromInternal(b.sel)
	}
	return after, nil
}

// SelectionOffsets returns the normalized selection as rune offsets into
// Text(), counting each line break as one rune.
func (b *Buffer) SelectionOffsets() (start, end int, ok bool) {
	r, ok := b.Selection()
	if !ok {
		off := b.posToRuneOffset(b.cursor)
		return off, off, false
	}
	return b.posToRuneOffset(r.Start), b.posToRuneOffset(r.End), true
}

// SetSelectionOffsets selects [start, end) given in rune offsets. It fails
// without changing anything when either offset is outside the document.
// start == end places the cursor there and clears the selection.
func (b *Buffer) SetSelectionOffsets(start, end int) bool {
	p := ConvertPolicy{ClampMode: OffsetError}
	s, ok := b.PosFromRuneOffset(start, p)
	if !ok {
		return false
	}
	e, ok := b.PosFromRuneOffset(end, p)
	if !ok {
		return false
	}
	if s == e {
		b.SetCursor(s)
		return true
	}
	b.SetSelection(Range{Start: s, End: e})
	return true
}
