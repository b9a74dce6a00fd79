// Package app implements the glyphpost stylizer screen.
//
// The screen pairs an editor pane with a live post preview. Style actions
// rewrite the current selection through package glyph; the emoji picker
// inserts at the caret; copy sends the whole post to the system clipboard.
// Failures surface as toasts and log lines, never as crashes.
package app
