// Package config holds the immutable run configuration: the enforced
// header organization string, the accepted-issue allowlist for the
// external validator, and path exclusions. Defaults are compiled in; an
// optional .polint.yaml in the working directory extends them. The
// configuration is loaded once at process start and never mutated.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	apperrors "github.com/l10nkit/polint/internal/errors"
)

// DefaultFileName is the optional per-repository configuration file.
const DefaultFileName = ".polint.yaml"

// defaultAcceptedIssues are i18nspector tags that long-lived translation
// trees trip constantly without being actionable for translators. Lines
// carrying one of these tags are dropped from the report.
var defaultAcceptedIssues = []string{
	"boilerplate-in-initial-comments",
	"boilerplate-in-language-team",
	"boilerplate-in-last-translator",
	"boilerplate-in-project-id-version",
	"codomain-error-in-unused-plural-forms",
	"conflict-marker-in-header-entry",
	"fuzzy-header-entry",
	"language-team-equal-to-last-translator",
	"no-package-name-in-project-id-version",
	"no-plural-forms-header-field",
	"no-report-msgid-bugs-to-header-field",
	"no-version-in-project-id-version",
	"stray-previous-msgid",
	"unable-to-determine-language",
	"unknown-poedit-language",
}

// defaultExcludePrefixes are path prefixes never selected for checking:
// scratch space and vendored translation submodules maintained upstream.
var defaultExcludePrefixes = []string{
	"tmp/",
	"submodules/",
}

// Config is the effective run configuration.
type Config struct {
	// Team is the organization string enforced for Language-Team and
	// Last-Translator. Empty means the compiled-in default.
	Team string `yaml:"team"`

	// AcceptedIssues extends the compiled-in allowlist of validator
	// issue tags to suppress.
	AcceptedIssues []string `yaml:"accepted_issues"`

	// ExcludePrefixes extends the compiled-in path prefixes to skip.
	ExcludePrefixes []string `yaml:"exclude_prefixes"`

	// Jobs is the default worker count. Zero means available parallelism.
	Jobs int `yaml:"jobs"`
}

// Default returns the compiled-in configuration.
func Default() *Config {
	return &Config{}
}

// Load reads the configuration file at path and merges it over the
// defaults. With required false a missing file is not an error and
// yields the defaults; with required true (an explicitly requested
// path) a missing file is a configuration error.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !required {
		return cfg, nil
	}
	if err != nil {
		return nil, apperrors.ConfigError(fmt.Sprintf("read %s", path), err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, apperrors.ConfigError(fmt.Sprintf("parse %s", path), err)
	}
	if cfg.Jobs < 0 {
		return nil, apperrors.ConfigError(fmt.Sprintf("%s: jobs must not be negative", path), nil)
	}
	return cfg, nil
}

// Accepted returns the full accepted-issue allowlist as a set.
func (c *Config) Accepted() map[string]struct{} {
	set := make(map[string]struct{}, len(defaultAcceptedIssues)+len(c.AcceptedIssues))
	for _, tag := range defaultAcceptedIssues {
		set[tag] = struct{}{}
	}
	for _, tag := range c.AcceptedIssues {
		set[tag] = struct{}{}
	}
	return set
}

// Excluded returns the full list of excluded path prefixes.
func (c *Config) Excluded() []string {
	return append(append([]string{}, defaultExcludePrefixes...), c.ExcludePrefixes...)
}
