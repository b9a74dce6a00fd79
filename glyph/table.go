package glyph

// glyphRange describes where a style's glyphs live. A zero base means the
// style has no glyphs for that class and those runes pass through.
type glyphRange struct {
	upper rune
	lower rune
	digit rune

	// holes replaces code points that Unicode left unassigned in a block
	// because the glyph already existed elsewhere (Letterlike Symbols).
	holes map[rune]rune
}

var ranges = [variantCount]glyphRange{
	Bold: {
		upper: 0x1D400,
		lower: 0x1D41A,
		digit: 0x1D7CE,
	},
	Italic: {
		upper: 0x1D434,
		lower: 0x1D44E,
		holes: map[rune]rune{'h': 0x210E},
	},
	BoldItalic: {
		upper: 0x1D468,
		lower: 0x1D482,
	},
}

// asciiTable maps an ASCII rune to its styled glyph; zero means absent.
type asciiTable [128]rune

var (
	tables  [variantCount]asciiTable
	plainOf map[rune]rune
)

func init() {
	plainOf = make(map[rune]rune, int(variantCount)*62)
	for v := range tables {
		tables[v] = buildTable(ranges[v])
		for src, dst := range tables[v] {
			if dst != 0 {
				plainOf[dst] = rune(src)
			}
		}
	}
}

func buildTable(gr glyphRange) asciiTable {
	var t asciiTable
	fill := func(first, last, base rune) {
		if base == 0 {
			return
		}
		for r := first; r <= last; r++ {
			t[r] = base + (r - first)
		}
	}
	fill('A', 'Z', gr.upper)
	fill('a', 'z', gr.lower)
	fill('0', '9', gr.digit)
	for src, dst := range gr.holes {
		t[src] = dst
	}
	return t
}

// Lookup returns the styled glyph for r under v and whether r is in v's
// source domain.
func Lookup(r rune, v Variant) (rune, bool) {
	if !v.Valid() || r < 0 || r >= rune(len(asciiTable{})) {
		return r, false
	}
	dst := tables[v][r]
	if dst == 0 {
		return r, false
	}
	return dst, true
}

// Map returns the styled glyph for r under v, or r itself when v has no
// glyph for it.
func Map(r rune, v Variant) rune {
	dst, _ := Lookup(r, v)
	return dst
}

// Unstyle returns the plain rune a styled glyph was produced from. Runes
// that no variant produces are returned unchanged.
func Unstyle(r rune) rune {
	if src, ok := plainOf[r]; ok {
		return src
	}
	return r
}

// IsStyled reports whether r is a glyph produced by any variant.
func IsStyled(r rune) bool {
	_, ok := plainOf[r]
	return ok
}

// HasDigits reports whether v maps 0-9.
func HasDigits(v Variant) bool {
	return v.Valid() && ranges[v].digit != 0
}
