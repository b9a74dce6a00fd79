package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iw2rmb/glyphpost"
)

func runCmd(args []string, stdin string) (code int, stdout, stderr string) {
	var out, errb bytes.Buffer
	code = run(args, strings.NewReader(stdin), &out, &errb)
	return code, out.String(), errb.String()
}

func TestStyle_Args(t *testing.T) {
	code, out, _ := runCmd([]string{"style", "-variant", "bold", "Trust"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "𝐓𝐫𝐮𝐬𝐭\n", out)
}

func TestStyle_StdinKeepsLayout(t *testing.T) {
	code, out, _ := runCmd([]string{"style", "-variant", "italic"}, "hi\n\n- go\n")
	assert.Equal(t, 0, code)
	assert.Equal(t, "ℎ𝑖\n\n- 𝑔𝑜\n", out)
}

func TestStyle_Clear(t *testing.T) {
	code, out, _ := runCmd([]string{"style", "-clear", "𝐓𝐫𝐮𝐬𝐭", "me"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "Trust me\n", out)
}

func TestStyle_DigitsWarning(t *testing.T) {
	code, out, errOut := runCmd([]string{"style", "-variant", "bi", "Q3"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "𝑸3\n", out)
	assert.Contains(t, errOut, "digits have no styled glyphs")
}

func TestStyle_UnknownVariant(t *testing.T) {
	code, out, errOut := runCmd([]string{"style", "-variant", "shouty", "x"}, "")
	assert.Equal(t, 2, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "unknown variant")
}

func TestVersion(t *testing.T) {
	code, out, _ := runCmd([]string{"version"}, "")
	assert.Equal(t, 0, code)
	assert.Equal(t, "glyphpost "+glyphpost.VersionTag()+"\n", out)
}

func TestUnknownCommand(t *testing.T) {
	code, _, errOut := runCmd([]string{"frobnicate"}, "")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, `unknown command "frobnicate"`)
	assert.Contains(t, errOut, "Usage:")
}
