package discover

import (
	"bytes"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// gitOutput runs one git command and returns its stdout.
// Overridable for testing.
var gitOutput = func(args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("git %s: %w: %s",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.String(), nil
}

// stagedCatalogs lists .po files staged for commit, resolved against the
// repository top-level directory. Staged deletions are skipped; exclusion
// prefixes apply to the path relative to the top-level directory.
func stagedCatalogs(excludePrefixes []string) ([]string, error) {
	top, err := gitOutput("rev-parse", "--show-toplevel")
	if err != nil {
		return nil, err
	}
	top = strings.TrimSpace(top)

	names, err := gitOutput("diff", "--cached", "--name-only", "--diff-filter=d")
	if err != nil {
		return nil, err
	}

	var files []string
	for _, name := range strings.Split(names, "\n") {
		name = strings.TrimSpace(name)
		if name == "" || !strings.HasSuffix(name, ".po") {
			continue
		}
		if excluded(name, excludePrefixes) {
			continue
		}
		files = append(files, filepath.Join(top, name))
	}
	return files, nil
}
