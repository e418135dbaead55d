package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/l10nkit/polint/internal/errors"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName), false)
	require.NoError(t, err)

	assert.Empty(t, cfg.Team)
	assert.Zero(t, cfg.Jobs)
	assert.Contains(t, cfg.Accepted(), "boilerplate-in-initial-comments")
	assert.Equal(t, []string{"tmp/", "submodules/"}, cfg.Excluded())
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte(`
team: "Example translators <po@example.org>"
accepted_issues:
  - some-custom-tag
exclude_prefixes:
  - vendor/
jobs: 3
`), 0o644))

	cfg, err := Load(path, false)
	require.NoError(t, err)

	assert.Equal(t, "Example translators <po@example.org>", cfg.Team)
	assert.Equal(t, 3, cfg.Jobs)

	accepted := cfg.Accepted()
	assert.Contains(t, accepted, "some-custom-tag")
	// file entries extend, not replace, the compiled-in set
	assert.Contains(t, accepted, "no-plural-forms-header-field")
	assert.Equal(t, []string{"tmp/", "submodules/", "vendor/"}, cfg.Excluded())
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("team: [unclosed"), 0o644))

	_, err := Load(path, false)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.New(apperrors.ErrCodeConfigInvalid, "", nil))
}

func TestLoadRejectsNegativeJobs(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("jobs: -1"), 0o644))

	_, err := Load(path, false)
	require.Error(t, err)
}

func TestLoadRequiredFailsOnMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")

	_, err := Load(path, true)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.New(apperrors.ErrCodeConfigInvalid, "", nil))
	assert.Contains(t, err.Error(), path)
}
