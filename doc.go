// Package glyphpost carries the module version. The styling engine lives in
// package glyph; the terminal stylizer in cmd/glyphpost.
package glyphpost
