package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/glyphpost/glyph"
)

// Style controls the editor's rendering. Cursor wins over Selection, and
// Selection wins over Styled.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	// Text draws plain cells; Styled draws cells holding mathematical
	// alphanumeric glyphs so restyled spans stand out while editing.
	Text   lipgloss.Style
	Styled lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	return Style{
		Gutter:        lipgloss.NewStyle().Foreground(muted),
		LineNum:       lipgloss.NewStyle().Foreground(muted),
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#374151", Dark: "#E5E7EB"}).Bold(true),
		Text:          lipgloss.NewStyle(),
		Styled:        lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#0A66C2", Dark: "#70B5F9"}),
		Selection:     lipgloss.NewStyle().Background(lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A5F"}),
		Cursor:        lipgloss.NewStyle().Reverse(true),
	}
}

func (st Style) cell(text string) lipgloss.Style {
	if strings.IndexFunc(text, glyph.IsStyled) >= 0 {
		return st.Styled
	}
	return st.Text
}
