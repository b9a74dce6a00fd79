package editor

import "github.com/iw2rmb/glyphpost/buffer"

// ChangeEvent describes the buffer after a version bump.
type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
		// Rune offsets into Text; equal to the caret offset when inactive.
		Start, End int
	}

	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	ev := ChangeEvent{
		Version: b.Version(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	ev.Selection.Start, ev.Selection.End, _ = b.SelectionOffsets()
	return ev
}
