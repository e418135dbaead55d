// Package po reads and writes gettext PO translation catalogs.
//
// The package keeps an in-memory representation of the catalog (header
// metadata plus the entry list) and can re-serialize it in a canonical
// form: entries in parse order, strings wrapped at a fixed column width.
// A File tracks whether it has diverged from its on-disk form so callers
// can rewrite only catalogs that actually changed.
package po

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WrapWidth is the column width used for canonical serialization.
const WrapWidth = 79

// Entry is a single message in a catalog.
type Entry struct {
	TranslatorComments []string // "# "
	ExtractedComments  []string // "#."
	References         []string // "#:"
	Flags              []string // "#,"
	Previous           []string // "#|"

	Msgctxt    string
	HasContext bool

	Msgid       string
	MsgidPlural string
	HasPlural   bool

	Msgstr  string
	Plurals []string // msgstr[0], msgstr[1], ...

	Obsolete bool
}

// IsHeader reports whether the entry is the catalog header.
func (e *Entry) IsHeader() bool {
	return e.Msgid == "" && !e.HasContext && !e.Obsolete
}

// File is an open PO catalog.
type File struct {
	path    string
	header  *Entry
	entries []*Entry

	// Header metadata in declaration order. metaKeys holds the order,
	// meta holds the values.
	metaKeys []string
	meta     map[string]string

	modified bool
}

// Open parses the catalog at path. The returned File starts unmodified.
// A missing file surfaces the underlying fs.ErrNotExist.
func Open(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	f.path = path
	return f, nil
}

// Path returns the file path the catalog was opened from.
func (f *File) Path() string { return f.path }

// Entries returns the non-header entries in parse order.
func (f *File) Entries() []*Entry { return f.entries }

// Modified reports whether the in-memory catalog diverged from disk.
func (f *File) Modified() bool { return f.modified }

// Metadata returns the value of a header field, and whether it is set.
func (f *File) Metadata(key string) (string, bool) {
	v, ok := f.meta[key]
	return v, ok
}

// HasMetadata reports whether the header field key is set to exactly value.
// A missing key is a non-match, not an error.
func (f *File) HasMetadata(key, value string) bool {
	v, ok := f.meta[key]
	return ok && v == value
}

// SetMetadata sets a header field. Setting a field to its current value
// is a no-op; any actual change marks the catalog modified.
func (f *File) SetMetadata(key, value string) {
	if v, ok := f.meta[key]; ok && v == value {
		return
	}
	if f.meta == nil {
		f.meta = make(map[string]string)
	}
	if _, ok := f.meta[key]; !ok {
		f.metaKeys = append(f.metaKeys, key)
	}
	f.meta[key] = value
	f.modified = true
}

// NeedsRewrap reports whether re-serializing the catalog at the canonical
// wrap width would change the on-disk bytes. A true result marks the
// catalog modified: fix mode relies on this so that a file with correct
// headers but stale wrapping is still rewritten.
func (f *File) NeedsRewrap() (bool, error) {
	disk, err := os.ReadFile(f.path)
	if err != nil {
		return false, err
	}
	if !bytes.Equal(disk, f.Bytes()) {
		f.modified = true
		return true, nil
	}
	return false, nil
}

// Persist writes the catalog back to its path if it was modified.
// The write goes to a temporary file in the same directory, is synced to
// durable storage, and is then renamed over the original, so the original
// is never left half-written. Serialization or write failures remove the
// temporary file and propagate.
func (f *File) Persist() error {
	if !f.modified {
		return nil
	}
	dir := filepath.Dir(f.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".tmp*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if err := writeAll(tmp, f.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return err
	}
	f.modified = false
	return nil
}

func writeAll(f *os.File, data []byte) error {
	if _, err := f.Write(data); err != nil {
		return err
	}
	return f.Sync()
}

// headerMsgstr rebuilds the header entry's msgstr from the metadata map.
func (f *File) headerMsgstr() string {
	var b strings.Builder
	for _, k := range f.metaKeys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(f.meta[k])
		b.WriteString("\n")
	}
	return b.String()
}
