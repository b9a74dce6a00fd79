package buffer

import (
	"errors"
	"strings"
	"testing"

	"github.com/iw2rmb/glyphpost/glyph"
)

func TestTransformSelection_NoSelection(t *testing.T) {
	b := New("Trust", Options{})
	v := b.Version()
	called := false

	_, err := b.TransformSelection(func(s string) string {
		called = true
		return s
	})
	if !errors.Is(err, ErrNoSelection) {
		t.Fatalf("err=%v, want ErrNoSelection", err)
	}
	if called {
		t.Fatalf("transform must not run without a selection")
	}
	if got := b.Version(); got != v {
		t.Fatalf("version=%d, want %d", got, v)
	}
}

func TestTransformSelection_ReselectsResult(t *testing.T) {
	b := New("Trust & Transparency", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 5}})

	got, err := b.TransformSelection(glyph.Styler(glyph.Bold))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	want := Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 0, Col: 5}}
	if got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	if sel, ok := b.Selection(); !ok || sel != want {
		t.Fatalf("selection=%v ok=%v, want %v", sel, ok, want)
	}
	if text, want := b.Text(), glyph.Transform("Trust", glyph.Bold)+" & Transparency"; text != want {
		t.Fatalf("text=%q, want %q", text, want)
	}
}

func TestTransformSelection_NextToEmoji(t *testing.T) {
	b := New("🚀Go🔥", Options{})
	if !b.SetSelectionOffsets(1, 3) {
		t.Fatalf("SetSelectionOffsets failed")
	}

	if _, err := b.TransformSelection(glyph.Styler(glyph.BoldItalic)); err != nil {
		t.Fatalf("err=%v", err)
	}
	if got, want := b.Text(), "🚀"+glyph.Transform("Go", glyph.BoldItalic)+"🔥"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}

	start, end, ok := b.SelectionOffsets()
	if !ok || start != 1 || end != 3 {
		t.Fatalf("offsets=(%d,%d,%v), want (1,3,true)", start, end, ok)
	}

	// A UTF-16 host sees each of these four code points as a surrogate pair.
	sel, _ := b.Selection()
	s16, _ := b.UTF16OffsetFromPos(sel.Start, ConvertPolicy{})
	e16, _ := b.UTF16OffsetFromPos(sel.End, ConvertPolicy{})
	if s16 != 2 || e16 != 6 {
		t.Fatalf("utf16 offsets=(%d,%d), want (2,6)", s16, e16)
	}
}

func TestTransformSelection_MultiLine(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetSelection(Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 1, Col: 1}})

	got, err := b.TransformSelection(glyph.Styler(glyph.Italic))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if want := (Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 1, Col: 1}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	start, end, _ := b.SelectionOffsets()
	if start != 1 || end != 4 {
		t.Fatalf("offsets=(%d,%d), want (1,4)", start, end)
	}
}

func TestTransformSelection_LengthChangingTransform(t *testing.T) {
	b := New("say hi now", Options{})
	b.SetSelectionOffsets(4, 6)

	got, err := b.TransformSelection(func(s string) string { return strings.Repeat(s, 2) })
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if want := (Range{Start: Pos{Row: 0, Col: 4}, End: Pos{Row: 0, Col: 8}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	if text := b.Text(); text != "say hihi now" {
		t.Fatalf("text=%q", text)
	}
}

func TestTransformSelection_NothingMappable(t *testing.T) {
	b := New("a & b", Options{})
	b.SetSelectionOffsets(1, 4)
	v := b.Version()

	got, err := b.TransformSelection(glyph.Styler(glyph.Bold))
	if err != nil {
		t.Fatalf("err=%v", err)
	}
	if want := (Range{Start: Pos{Row: 0, Col: 1}, End: Pos{Row: 0, Col: 4}}); got != want {
		t.Fatalf("range=%v, want %v", got, want)
	}
	if b.Version() != v || b.CanUndo() {
		t.Fatalf("unchanged text must not create a change")
	}
	if _, ok := b.Selection(); !ok {
		t.Fatalf("selection must survive")
	}
}

func TestTransformSelection_AlreadyStyledPartPassesThrough(t *testing.T) {
	b := New(glyph.Transform("A", glyph.Bold)+"b", Options{})
	b.SelectAll()

	if _, err := b.TransformSelection(glyph.Styler(glyph.Bold)); err != nil {
		t.Fatalf("err=%v", err)
	}
	if got, want := b.Text(), glyph.Transform("Ab", glyph.Bold); got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestTransformSelection_UndoRestoresPlainSelection(t *testing.T) {
	b := New("Trust", Options{})
	b.SelectAll()
	if _, err := b.TransformSelection(glyph.Styler(glyph.Bold)); err != nil {
		t.Fatalf("err=%v", err)
	}

	ch, ok := b.LastChange()
	if !ok || ch.Kind != ChangeTransform || !ch.SelectionAfter.Active {
		t.Fatalf("last change=%+v", ch)
	}

	if !b.Undo() {
		t.Fatalf("expected undo")
	}
	if got := b.Text(); got != "Trust" {
		t.Fatalf("text=%q, want Trust", got)
	}
	if s, ok := b.SelectedText(); !ok || s != "Trust" {
		t.Fatalf("selected=%q ok=%v", s, ok)
	}

	if !b.Redo() {
		t.Fatalf("expected redo")
	}
	if s, _ := b.SelectedText(); s != glyph.Transform("Trust", glyph.Bold) {
		t.Fatalf("selected after redo=%q", s)
	}
}

func TestSelectionOffsets_NoSelectionReportsCaret(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, Col: 1})
	start, end, ok := b.SelectionOffsets()
	if ok || start != 4 || end != 4 {
		t.Fatalf("offsets=(%d,%d,%v), want (4,4,false)", start, end, ok)
	}
}

func TestSetSelectionOffsets(t *testing.T) {
	b := New("a🚀\nb", Options{})

	if !b.SetSelectionOffsets(1, 2) {
		t.Fatalf("expected ok")
	}
	if s, _ := b.SelectedText(); s != "🚀" {
		t.Fatalf("selected=%q", s)
	}
	if b.SetSelectionOffsets(0, 99) {
		t.Fatalf("out of range must fail")
	}
	if s, _ := b.SelectedText(); s != "🚀" {
		t.Fatalf("failed call changed selection to %q", s)
	}
	if !b.SetSelectionOffsets(3, 3) {
		t.Fatalf("expected ok")
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("equal offsets must clear selection")
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}
