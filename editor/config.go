package editor

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options. A zero Style renders plain text; use DefaultStyle
	// for a visible cursor and selection.
	ShowLineNums bool
	Style        Style
	TabWidth     int // default: 4
	SoftWrap     bool

	KeyMap    KeyMap
	Clipboard Clipboard
	ReadOnly  bool

	// OnChange is called from Update whenever the buffer version moved.
	OnChange func(ChangeEvent)
	// OnClipboardError is called when the clipboard refuses a read or write.
	OnClipboardError func(op string, err error)

	// Forwarded to buffer.Options.
	HistoryLimit int
}

func (c Config) withDefaults() Config {
	if c.TabWidth <= 0 {
		c.TabWidth = 4
	}
	if c.KeyMap.isZero() {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
