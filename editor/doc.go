// Package editor provides a Bubble Tea component that renders and edits a
// buffer.Buffer.
//
// The component owns key handling, mouse selection, soft wrapping and
// clipboard shortcuts. Hosts reach the document through Buffer() and may
// mutate it directly (for example to restyle the selection); the editor
// picks up such changes on the next Update.
package editor
