package po

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Catalog filenames carry their language code as the last dotted component
// before the .po extension, e.g. index.de.po or about.zh_Hant.po. A leading
// dot disqualifies the name, as does a missing or empty code.
var (
	langRe   = regexp.MustCompile(`^[^.].*\.([A-Za-z0-9_@]+)\.po$`)
	scriptRe = regexp.MustCompile(`_[A-Z][a-z][A-Za-z]*$`)
	atRe     = regexp.MustCompile(`@.*$`)
)

// NoLanguageError reports a catalog filename the language code cannot be
// derived from.
type NoLanguageError struct {
	Path string
}

func (e *NoLanguageError) Error() string {
	return fmt.Sprintf("can't detect expected file suffix .XX.po for %q", e.Path)
}

// Language extracts the language code from the catalog's filename.
func (f *File) Language() (string, error) {
	return LanguageOf(f.path)
}

// LanguageWithoutScript returns the language code with any @variant suffix
// and any title-case script suffix (as in zh_Hant or sr_Latn) stripped.
// Region suffixes like de_DE are kept.
func (f *File) LanguageWithoutScript() (string, error) {
	code, err := f.Language()
	if err != nil {
		return "", err
	}
	code = atRe.ReplaceAllString(code, "")
	return scriptRe.ReplaceAllString(code, ""), nil
}

// LanguageOf extracts the language code from a catalog path without
// opening the file.
func LanguageOf(path string) (string, error) {
	m := langRe.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return "", &NoLanguageError{Path: path}
	}
	return m[1], nil
}
