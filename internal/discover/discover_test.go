package discover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var defaultExcludes = []string{"tmp/", "submodules/"}

func setupTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, nil, 0o644))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(root))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return root
}

func TestFilesDefaultSelection(t *testing.T) {
	setupTree(t,
		"index.de.po",
		"wiki/about.fr.po",
		"tmp/scratch.de.po",
		"submodules/vendored/x.de.po",
		"README.md",
	)

	files, err := Files(Options{ExcludePrefixes: defaultExcludes})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.de.po", filepath.Join("wiki", "about.fr.po")}, files)
}

func TestFilesLangFilter(t *testing.T) {
	setupTree(t,
		"index.de.po",
		"wiki/about.de.po",
		"wiki/po/de.po",
		"index.fr.po",
	)

	files, err := Files(Options{Lang: "de", ExcludePrefixes: defaultExcludes})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"index.de.po",
		filepath.Join("wiki", "about.de.po"),
		filepath.Join("wiki", "po", "de.po"),
	}, files)
}

func TestFilesExplicitPathsAreAdditive(t *testing.T) {
	setupTree(t,
		"index.de.po",
		"index.fr.po",
		"index.es.po",
	)

	files, err := Files(Options{
		Paths:           []string{"index.es.po"},
		Lang:            "de",
		ExcludePrefixes: defaultExcludes,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.de.po", "index.es.po"}, files)
}

func TestFilesDeduplicates(t *testing.T) {
	setupTree(t, "index.de.po")

	files, err := Files(Options{
		Paths:           []string{"index.de.po", "index.de.po"},
		Lang:            "de",
		ExcludePrefixes: defaultExcludes,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"index.de.po"}, files)
}

func TestFilesEmptySelectionIsNotAnError(t *testing.T) {
	setupTree(t, "README.md")

	files, err := Files(Options{ExcludePrefixes: defaultExcludes})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesExplicitPathUnderExcludedPrefix(t *testing.T) {
	setupTree(t, "tmp/scratch.de.po")

	files, err := Files(Options{
		Paths:           []string{filepath.Join("tmp", "scratch.de.po")},
		ExcludePrefixes: defaultExcludes,
	})
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestFilesCached(t *testing.T) {
	root := setupTree(t)
	restore := gitOutput
	t.Cleanup(func() { gitOutput = restore })
	gitOutput = func(args ...string) (string, error) {
		switch args[0] {
		case "rev-parse":
			return root + "\n", nil
		case "diff":
			return "wiki/index.de.po\ntmp/skip.de.po\ndocs/readme.md\n", nil
		}
		return "", errors.New("unexpected git invocation")
	}

	files, err := Files(Options{Cached: true, ExcludePrefixes: defaultExcludes})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "wiki", "index.de.po")}, files)
}

func TestFilesCachedGitFailure(t *testing.T) {
	setupTree(t)
	restore := gitOutput
	t.Cleanup(func() { gitOutput = restore })
	gitOutput = func(args ...string) (string, error) {
		return "", errors.New("not a git repository")
	}

	_, err := Files(Options{Cached: true, ExcludePrefixes: defaultExcludes})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a git repository")
}
