package editor

// Clipboard provides editor-level clipboard integration.
//
// Errors must not crash the UI; copy/cut/paste report them through
// Config.OnClipboardError and otherwise carry on.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(s string) error
}
