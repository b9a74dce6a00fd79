package buffer

import (
	"unicode/utf16"
	"unicode/utf8"
)

type OffsetClampMode uint8

const (
	OffsetError OffsetClampMode = iota
	OffsetClamp
)

// ConvertPolicy controls how out-of-range offsets are treated. Line breaks
// always count as a single unit in every encoding.
type ConvertPolicy struct {
	ClampMode OffsetClampMode
}

// unitLen measures one rune in a given encoding.
type unitLen func(r rune) int

func byteUnits(r rune) int { return utf8.RuneLen(r) }

func runeUnits(rune) int { return 1 }

func utf16Units(r rune) int {
	if utf16.IsSurrogate(r) || r < 0x10000 {
		return 1
	}
	return 2
}

func (b *Buffer) PosFromByteOffset(off int, p ConvertPolicy) (Pos, bool) {
	return b.posFromOffset(off, p, byteUnits)
}

func (b *Buffer) ByteOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	return b.offsetFromPos(pos, p, byteUnits)
}

func (b *Buffer) PosFromRuneOffset(off int, p ConvertPolicy) (Pos, bool) {
	return b.posFromOffset(off, p, runeUnits)
}

func (b *Buffer) RuneOffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	return b.offsetFromPos(pos, p, runeUnits)
}

// PosFromUTF16Offset converts an offset counted in UTF-16 code units, as
// produced by browser text areas. An offset that falls between the two
// halves of a surrogate pair is rejected even in OffsetClamp mode.
func (b *Buffer) PosFromUTF16Offset(off int, p ConvertPolicy) (Pos, bool) {
	return b.posFromOffset(off, p, utf16Units)
}

func (b *Buffer) UTF16OffsetFromPos(pos Pos, p ConvertPolicy) (int, bool) {
	return b.offsetFromPos(pos, p, utf16Units)
}

func (b *Buffer) posFromOffset(off int, p ConvertPolicy, size unitLen) (Pos, bool) {
	off, ok := clampOffset(off, b.docLen(size), p.ClampMode)
	if !ok {
		return Pos{}, false
	}

	cur := 0
	for row, line := range b.lines {
		if off == cur {
			return Pos{Row: row, Col: 0}, true
		}
		for col, r := range line {
			next := cur + size(r)
			if off > cur && off < next {
				return Pos{}, false
			}
			cur = next
			if off == cur {
				return Pos{Row: row, Col: col + 1}, true
			}
		}
		if row < len(b.lines)-1 {
			cur++
		}
	}
	return Pos{}, false
}

func (b *Buffer) offsetFromPos(pos Pos, p ConvertPolicy, size unitLen) (int, bool) {
	pos, ok := b.normalizePosForMode(pos, p.ClampMode)
	if !ok {
		return 0, false
	}

	off := 0
	for row := 0; row < pos.Row; row++ {
		for _, r := range b.lines[row] {
			off += size(r)
		}
		off++
	}
	for _, r := range b.lines[pos.Row][:pos.Col] {
		off += size(r)
	}
	return off, true
}

func clampOffset(off, hi int, mode OffsetClampMode) (int, bool) {
	switch mode {
	case OffsetError:
		if off < 0 || off > hi {
			return 0, false
		}
		return off, true
	case OffsetClamp:
		return clampInt(off, 0, hi), true
	default:
		return 0, false
	}
}

func (b *Buffer) normalizePosForMode(pos Pos, mode OffsetClampMode) (Pos, bool) {
	switch mode {
	case OffsetError:
		clamped := b.clampPos(pos)
		if clamped != pos {
			return Pos{}, false
		}
		return pos, true
	case OffsetClamp:
		return b.clampPos(pos), true
	default:
		return Pos{}, false
	}
}

func (b *Buffer) docLen(size unitLen) int {
	total := 0
	for row, line := range b.lines {
		for _, r := range line {
			total += size(r)
		}
		if row < len(b.lines)-1 {
			total++
		}
	}
	return total
}

func (b *Buffer) docRuneLen() int { return b.docLen(runeUnits) }

func (b *Buffer) posToRuneOffset(pos Pos) int {
	off, _ := b.offsetFromPos(pos, ConvertPolicy{ClampMode: OffsetClamp}, runeUnits)
	return off
}
