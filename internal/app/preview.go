package app

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/glyphpost/internal/config"
)

// renderPreview draws the post as a feed card: header, body, reactions
// and the action row. The body keeps the author's line breaks.
func renderPreview(p config.PreviewConfig, text string, width, height int) string {
	inner := max(width-4, 10)

	avatar := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorAccent).
		Padding(0, 1).
		Render(initials(p.Author))

	meta := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(p.Author),
		mutedStyle.MaxWidth(max(inner-lipgloss.Width(avatar)-1, 1)).Render(p.Headline),
		mutedStyle.Render("1h • 🌐"),
	)
	header := lipgloss.JoinHorizontal(lipgloss.Top, avatar, " ", meta)

	body := lipgloss.NewStyle().Width(inner).Render(text)

	reactions := "👍💡 " + mutedStyle.Render("John Smith and 3 others")
	sep := mutedStyle.Render(strings.Repeat("─", inner))
	actions := mutedStyle.Bold(true).Render("👍 Like  💬 Comment  🔁 Repost  ➤ Send")

	card := lipgloss.JoinVertical(lipgloss.Left, header, "", body, "", reactions, sep, actions)
	st := paneStyle.Padding(0, 1).Width(max(width-2, 1))
	if height > 2 {
		st = st.MaxHeight(height)
	}
	return st.Render(card)
}

// initials returns the first letters of the first two words of name.
func initials(name string) string {
	var out []rune
	for _, w := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(w)
		if !unicode.IsLetter(r) {
			continue
		}
		out = append(out, unicode.ToUpper(r))
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}
