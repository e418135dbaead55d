package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileBlockIndentsIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithStyles(&buf, PlainStyles())

	p.File("wiki/index.de.po", []string{
		"E no-language-header-field",
		"header Language-Team is wrong",
	})

	assert.Equal(t,
		"wiki/index.de.po:\n"+
			"\tE no-language-header-field\n"+
			"\theader Language-Team is wrong\n",
		buf.String())
}

func TestFileBlockIndentsMultilineIssue(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithStyles(&buf, PlainStyles())

	p.File("index.de.po", []string{"i18nspector failed:\ntraceback line"})

	assert.Equal(t,
		"index.de.po:\n"+
			"\ti18nspector failed:\n"+
			"\ttraceback line\n",
		buf.String())
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewWithStyles(&buf, PlainStyles())

	p.Summary(3, 0)
	assert.Equal(t, "3 file(s) checked, all clean\n", buf.String())

	buf.Reset()
	p.Summary(3, 2)
	assert.Equal(t, "2 of 3 file(s) have issues\n", buf.String())
}

func TestNewPlainForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf)
	p.File("index.de.po", []string{"issue"})
	// no ANSI escapes when the writer is not a terminal
	assert.NotContains(t, buf.String(), "\x1b[")
}
