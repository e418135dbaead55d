package po

import (
	"bytes"
	"fmt"
	"strings"
)

// Bytes serializes the catalog in canonical form: header first, entries in
// parse order, strings wrapped at WrapWidth columns.
func (f *File) Bytes() []byte {
	var buf bytes.Buffer
	w := &writer{buf: &buf, width: WrapWidth}
	first := true
	if f.header != nil || len(f.metaKeys) > 0 {
		w.comments(f.header)
		w.field("msgid", "")
		w.field("msgstr", f.headerMsgstr())
		first = false
	}
	for _, e := range f.entries {
		if !first {
			buf.WriteByte('\n')
		}
		first = false
		w.entry(e)
	}
	return buf.Bytes()
}

// String returns the serialized catalog as text.
func (f *File) String() string { return string(f.Bytes()) }

type writer struct {
	buf    *bytes.Buffer
	width  int
	prefix string // "#~ " for obsolete keyword lines
}

func (w *writer) entry(e *Entry) {
	w.comments(e)
	if e.Obsolete {
		w.prefix = "#~ "
		defer func() { w.prefix = "" }()
	}
	if e.HasContext {
		w.field("msgctxt", e.Msgctxt)
	}
	w.field("msgid", e.Msgid)
	if e.HasPlural {
		w.field("msgid_plural", e.MsgidPlural)
		for i, s := range e.Plurals {
			w.field(fmt.Sprintf("msgstr[%d]", i), s)
		}
		return
	}
	w.field("msgstr", e.Msgstr)
}

// comments writes the comment block of an entry. Obsolete-entry comments
// are written plain, without the "#~ " keyword prefix.
func (w *writer) comments(e *Entry) {
	if e == nil {
		return
	}
	for _, c := range e.TranslatorComments {
		w.comment("#", c)
	}
	for _, c := range e.ExtractedComments {
		w.comment("#.", c)
	}
	for _, c := range e.References {
		w.comment("#:", c)
	}
	for _, c := range e.Flags {
		w.comment("#,", c)
	}
	for _, c := range e.Previous {
		w.comment("#|", c)
	}
}

func (w *writer) comment(marker, text string) {
	if text == "" {
		w.line(marker)
		return
	}
	w.line(marker + " " + text)
}

// field writes one keyword plus its string. The string goes on the keyword
// line when its quoted form fits in the wrap width and holds no embedded
// newline; otherwise the keyword gets an empty string and the content
// follows as wrapped continuation lines.
func (w *writer) field(keyword, s string) {
	esc := escape(s)
	segments := splitSegments(s)
	if len(segments) <= 1 && len(w.prefix)+len(keyword)+len(esc)+3 <= w.width {
		w.line(keyword + ` "` + esc + `"`)
		return
	}
	w.line(keyword + ` ""`)
	avail := w.width - 2 - len(w.prefix)
	for _, seg := range segments {
		for _, chunk := range wrap(escape(seg), avail) {
			w.line(`"` + chunk + `"`)
		}
	}
}

func (w *writer) line(s string) {
	w.buf.WriteString(w.prefix)
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

// splitSegments splits after every newline, keeping the newline with the
// preceding segment. Each segment becomes at least one serialized line.
func splitSegments(s string) []string {
	var segs []string
	for len(s) > 0 {
		i := strings.IndexByte(s, '\n')
		if i < 0 {
			segs = append(segs, s)
			break
		}
		segs = append(segs, s[:i+1])
		s = s[i+1:]
	}
	return segs
}

// wrap breaks an escaped segment into chunks of at most width bytes,
// splitting only after spaces. A word longer than width is never split.
func wrap(s string, width int) []string {
	if len(s) <= width {
		return []string{s}
	}
	var chunks []string
	var cur strings.Builder
	for _, tok := range spaceTokens(s) {
		if cur.Len() > 0 && cur.Len()+len(tok) > width {
			chunks = append(chunks, cur.String())
			cur.Reset()
		}
		cur.WriteString(tok)
	}
	if cur.Len() > 0 {
		chunks = append(chunks, cur.String())
	}
	return chunks
}

// spaceTokens splits s into tokens ending after each run of spaces, so a
// break between tokens keeps the trailing space on the earlier line.
func spaceTokens(s string) []string {
	var toks []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == ' ' && (i+1 == len(s) || s[i+1] != ' ') {
			toks = append(toks, s[start:i+1])
			start = i + 1
		}
	}
	if start < len(s) {
		toks = append(toks, s[start:])
	}
	return toks
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\t", `\t`,
	"\r", `\r`,
)

func escape(s string) string { return escaper.Replace(s) }
