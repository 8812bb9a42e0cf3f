package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText(t *testing.T) {
	assert.Equal(t, "a b c", CleanText("  a  b\n\tc "))
	assert.Equal(t, "", CleanText("   "))
}

func TestStripHTML(t *testing.T) {
	cases := map[string]string{
		"plain text":                            "plain text",
		"Build <b>Java</b> services":            "Build Java services",
		"R&amp;D team<br>remote ok":             "R&D team remote ok",
		"<p>first</p><p>second</p>":             "first second",
		"  <ul><li>one</li><li>two</li></ul>  ": "one two",
	}
	for in, want := range cases {
		assert.Equal(t, want, StripHTML(in), in)
	}
}
