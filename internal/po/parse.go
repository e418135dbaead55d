package po

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
)

// continuation targets for quoted string lines
const (
	tgtNone = iota
	tgtMsgctxt
	tgtMsgid
	tgtMsgidPlural
	tgtMsgstr
	tgtPlural
)

type parser struct {
	file   *File
	cur    *Entry
	target int
	line   int
}

func parse(data []byte) (*File, error) {
	p := &parser{file: &File{meta: make(map[string]string)}}
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		p.line++
		if err := p.consume(strings.TrimRight(sc.Text(), "\r")); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	p.finish()
	return p.file, nil
}

func (p *parser) consume(line string) error {
	obsolete := false
	if strings.HasPrefix(line, "#~") {
		obsolete = true
		line = strings.TrimPrefix(strings.TrimPrefix(line, "#~"), " ")
	}

	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		p.finish()
		return nil
	}

	// An entry ends once its msgstr section is complete; a comment or a
	// fresh msgctxt/msgid after that starts the next entry.
	inMsgstr := p.target == tgtMsgstr || p.target == tgtPlural
	if inMsgstr && (strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "msgctxt") ||
		(strings.HasPrefix(trimmed, "msgid") && !strings.HasPrefix(trimmed, "msgid_plural"))) {
		p.finish()
	}
	e := p.entry(obsolete)

	switch {
	case strings.HasPrefix(trimmed, "#."):
		e.ExtractedComments = append(e.ExtractedComments, strings.TrimSpace(trimmed[2:]))
	case strings.HasPrefix(trimmed, "#:"):
		e.References = append(e.References, strings.TrimSpace(trimmed[2:]))
	case strings.HasPrefix(trimmed, "#,"):
		e.Flags = append(e.Flags, strings.TrimSpace(trimmed[2:]))
	case strings.HasPrefix(trimmed, "#|"):
		e.Previous = append(e.Previous, strings.TrimSpace(trimmed[2:]))
	case strings.HasPrefix(trimmed, "#"):
		e.TranslatorComments = append(e.TranslatorComments, strings.TrimSpace(trimmed[1:]))
	case strings.HasPrefix(trimmed, "msgctxt"):
		s, err := p.unquote(trimmed[len("msgctxt"):])
		if err != nil {
			return err
		}
		e.Msgctxt = s
		e.HasContext = true
		p.target = tgtMsgctxt
	case strings.HasPrefix(trimmed, "msgid_plural"):
		s, err := p.unquote(trimmed[len("msgid_plural"):])
		if err != nil {
			return err
		}
		e.MsgidPlural = s
		e.HasPlural = true
		p.target = tgtMsgidPlural
	case strings.HasPrefix(trimmed, "msgid"):
		s, err := p.unquote(trimmed[len("msgid"):])
		if err != nil {
			return err
		}
		e.Msgid = s
		p.target = tgtMsgid
	case strings.HasPrefix(trimmed, "msgstr["):
		end := strings.IndexByte(trimmed, ']')
		if end < 0 {
			return fmt.Errorf("line %d: malformed plural keyword", p.line)
		}
		s, err := p.unquote(trimmed[end+1:])
		if err != nil {
			return err
		}
		e.Plurals = append(e.Plurals, s)
		p.target = tgtPlural
	case strings.HasPrefix(trimmed, "msgstr"):
		s, err := p.unquote(trimmed[len("msgstr"):])
		if err != nil {
			return err
		}
		e.Msgstr = s
		p.target = tgtMsgstr
	case strings.HasPrefix(trimmed, `"`):
		s, err := p.unquote(trimmed)
		if err != nil {
			return err
		}
		switch p.target {
		case tgtMsgctxt:
			e.Msgctxt += s
		case tgtMsgid:
			e.Msgid += s
		case tgtMsgidPlural:
			e.MsgidPlural += s
		case tgtMsgstr:
			e.Msgstr += s
		case tgtPlural:
			e.Plurals[len(e.Plurals)-1] += s
		default:
			return fmt.Errorf("line %d: continuation string outside an entry", p.line)
		}
	default:
		return fmt.Errorf("line %d: unexpected input %q", p.line, trimmed)
	}
	return nil
}

// entry returns the entry under construction, creating one if needed.
func (p *parser) entry(obsolete bool) *Entry {
	if p.cur == nil {
		p.cur = &Entry{}
	}
	if obsolete {
		p.cur.Obsolete = true
	}
	return p.cur
}

// finish completes the entry under construction. The first entry with an
// empty msgid becomes the header; its msgstr is split into metadata.
func (p *parser) finish() {
	e := p.cur
	p.cur = nil
	p.target = tgtNone
	if e == nil {
		return
	}
	if e.IsHeader() && p.file.header == nil && len(p.file.entries) == 0 {
		p.file.header = e
		p.parseMetadata(e.Msgstr)
		return
	}
	p.file.entries = append(p.file.entries, e)
}

func (p *parser) parseMetadata(msgstr string) {
	for _, line := range strings.Split(msgstr, "\n") {
		if line == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		if _, seen := p.file.meta[key]; !seen {
			p.file.metaKeys = append(p.file.metaKeys, key)
		}
		p.file.meta[key] = strings.TrimPrefix(value, " ")
	}
}

// unquote parses the quoted-string remainder of a keyword line.
func (p *parser) unquote(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return "", fmt.Errorf("line %d: expected quoted string, got %q", p.line, s)
	}
	return unescape(s[1 : len(s)-1]), nil
}

func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			// unknown escape, keep verbatim
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
