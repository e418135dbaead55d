package po

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapShortStringUntouched(t *testing.T) {
	assert.Equal(t, []string{"short enough"}, wrap("short enough", 20))
}

func TestWrapBreaksAfterSpaces(t *testing.T) {
	chunks := wrap("aaa bbb ccc ddd", 8)
	assert.Equal(t, []string{"aaa bbb ", "ccc ddd"}, chunks)
	// a break never loses bytes
	assert.Equal(t, "aaa bbb ccc ddd", strings.Join(chunks, ""))
}

func TestWrapNeverSplitsWords(t *testing.T) {
	long := strings.Repeat("x", 30)
	chunks := wrap("a "+long+" b", 10)
	assert.Equal(t, []string{"a ", long + " ", "b"}, chunks)
}

func TestLongStringSerializedMultiline(t *testing.T) {
	f := &File{
		entries: []*Entry{{
			Msgid:  "key",
			Msgstr: strings.Repeat("word ", 30) + "end",
		}},
	}
	out := f.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Greater(t, len(lines), 3)
	assert.Equal(t, `msgid "key"`, lines[0])
	assert.Equal(t, `msgstr ""`, lines[1])
	for _, line := range lines[1:] {
		assert.LessOrEqual(t, len(line), WrapWidth)
	}
}

func TestEmbeddedNewlineForcesMultiline(t *testing.T) {
	f := &File{
		entries: []*Entry{{Msgid: "key", Msgstr: "one\ntwo"}},
	}
	assert.Equal(t, "msgid \"key\"\nmsgstr \"\"\n\"one\\n\"\n\"two\"\n", f.String())
}

func TestTrailingNewlineStaysSingleLine(t *testing.T) {
	f := &File{
		entries: []*Entry{{Msgid: "key", Msgstr: "one line\n"}},
	}
	assert.Equal(t, "msgid \"key\"\nmsgstr \"one line\\n\"\n", f.String())
}

func TestEscapeRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{name: "quotes", in: `say "hi"`},
		{name: "backslash", in: `C:\path\to`},
		{name: "newline and tab", in: "a\n\tb"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.in, unescape(escape(tt.in)))
		})
	}
}

func TestSplitSegments(t *testing.T) {
	assert.Equal(t, []string{"a\n", "b\n"}, splitSegments("a\nb\n"))
	assert.Equal(t, []string{"a\n", "b"}, splitSegments("a\nb"))
	assert.Equal(t, []string{"plain"}, splitSegments("plain"))
	assert.Nil(t, splitSegments(""))
}
