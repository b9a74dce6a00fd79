package glyph

import (
	"errors"
	"fmt"
	"strings"
)

// Variant selects a glyph table.
type Variant uint8

const (
	Bold Variant = iota
	Italic
	BoldItalic

	variantCount
)

// ErrUnknownVariant is returned by ParseVariant for names outside the closed set.
var ErrUnknownVariant = errors.New("glyph: unknown variant")

var variantNames = [variantCount]string{
	Bold:       "bold",
	Italic:     "italic",
	BoldItalic: "bold-italic",
}

// Variants returns every supported variant in declaration order.
func Variants() []Variant {
	return []Variant{Bold, Italic, BoldItalic}
}

// Valid reports whether v is one of the declared variants.
func (v Variant) Valid() bool { return v < variantCount }

func (v Variant) String() string {
	if !v.Valid() {
		return fmt.Sprintf("Variant(%d)", uint8(v))
	}
	return variantNames[v]
}

// ParseVariant accepts the names produced by String, case-insensitively.
// "bolditalic" and "bold_italic" are accepted as aliases of "bold-italic".
func ParseVariant(s string) (Variant, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	switch name {
	case "bolditalic", "bold_italic", "bi":
		return BoldItalic, nil
	case "b":
		return Bold, nil
	case "i":
		return Italic, nil
	}
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// MarshalText implements encoding.TextMarshaler so variants can appear in
// TOML and JSON configuration.
func (v Variant) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownVariant, uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Variant) UnmarshalText(text []byte) error {
	parsed, err := ParseVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
