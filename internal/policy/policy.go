// Package policy defines the canonical header fields every catalog must
// carry. The required set is a pure function of the catalog's filename:
// the Language field is derived from it, everything else is fixed.
package policy

import (
	"github.com/l10nkit/polint/internal/po"
)

// DefaultTeam is the organization string enforced for the Language-Team
// and Last-Translator headers unless overridden by configuration.
const DefaultTeam = "l10nkit translators <translators@l10nkit.org>"

// Field is one required header key/value pair.
type Field struct {
	Key   string
	Value string
}

// Policy produces the required header mapping for a catalog.
type Policy struct {
	team string
}

// New returns a Policy enforcing the given organization string. An empty
// team falls back to DefaultTeam.
func New(team string) Policy {
	if team == "" {
		team = DefaultTeam
	}
	return Policy{team: team}
}

// Required returns the header fields a catalog with the given path must
// carry, in a stable order. Fails when no language code can be derived
// from the path.
func (p Policy) Required(path string) ([]Field, error) {
	lang, err := po.LanguageOf(path)
	if err != nil {
		return nil, err
	}
	return []Field{
		{Key: "Language", Value: lang},
		{Key: "Content-Type", Value: "text/plain; charset=UTF-8"},
		{Key: "Project-Id-Version", Value: ""},
		{Key: "Language-Team", Value: p.team},
		{Key: "Last-Translator", Value: p.team},
	}, nil
}
