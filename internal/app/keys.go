package app

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/glyphpost/internal/config"
)

// KeyMap holds the screen-level bindings. Editing keys belong to the editor.
type KeyMap struct {
	Bold       key.Binding
	Italic     key.Binding
	BoldItalic key.Binding
	Clear      key.Binding
	Emoji      key.Binding
	Copy       key.Binding
	Quit       key.Binding
}

func NewKeyMap(k config.KeysConfig) KeyMap {
	bind := func(keys []string, desc string) key.Binding {
		help := ""
		if len(keys) > 0 {
			help = keys[0]
		}
		return key.NewBinding(key.WithKeys(keys...), key.WithHelp(help, desc))
	}
	return KeyMap{
		Bold:       bind(k.Bold, "bold"),
		Italic:     bind(k.Italic, "italic"),
		BoldItalic: bind(k.BoldItalic, "bold italic"),
		Clear:      bind(k.Clear, "clear style"),
		Emoji:      bind(k.Emoji, "emoji"),
		Copy:       bind(k.Copy, "copy post"),
		Quit:       bind(k.Quit, "quit"),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Bold, k.Italic, k.BoldItalic, k.Clear, k.Emoji, k.Copy, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Bold, k.Italic, k.BoldItalic, k.Clear},
		{k.Emoji, k.Copy, k.Quit},
	}
}
