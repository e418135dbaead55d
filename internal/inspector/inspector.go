// Package inspector drives the external i18nspector validator.
//
// i18nspector performs the deep structural and semantic linting this tool
// delegates: one subprocess per catalog, a line-oriented stdout contract,
// and a shared on-disk cache that must be isolated per invocation when
// several files are linted concurrently.
package inspector

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	apperrors "github.com/l10nkit/polint/internal/errors"
)

// Program is the external validator executable.
const Program = "i18nspector"

// Inspector invokes the external validator and filters its findings.
type Inspector struct {
	program  string
	accepted map[string]struct{}

	// Overridable for testing.
	lookPath func(file string) (string, error)
	command  func(ctx context.Context, name string, args ...string) *exec.Cmd
}

// Option configures an Inspector.
type Option func(*Inspector)

// WithProgram overrides the validator executable name.
func WithProgram(name string) Option {
	return func(i *Inspector) { i.program = name }
}

// New creates an Inspector. Findings whose issue tag is in accepted are
// dropped from the results.
func New(accepted map[string]struct{}, opts ...Option) *Inspector {
	i := &Inspector{
		program:  Program,
		accepted: accepted,
		lookPath: exec.LookPath,
		command:  exec.CommandContext,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// CheckInstalled verifies the validator is present on the system.
func (i *Inspector) CheckInstalled() error {
	if _, err := i.lookPath(i.program); err != nil {
		return apperrors.ToolMissing(i.program)
	}
	return nil
}

// Run lints one catalog. Each stdout line has the shape
//
//	<severity> <filename> <issue-tag> <extra...>
//
// Allowlisted tags are dropped; surviving lines come back with the
// filename field removed. A non-zero exit is returned as an error
// carrying the captured stderr, never mixed into the issue list, and is
// not retried. env entries override the inherited environment.
//
// Every invocation gets a throwaway cache directory via XDG_CACHE_HOME so
// concurrent workers cannot corrupt a shared validator cache.
func (i *Inspector) Run(ctx context.Context, path, lang string, env map[string]string) ([]string, error) {
	cacheDir, err := os.MkdirTemp("", "polint-cache-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(cacheDir)

	cmd := i.command(ctx, i.program, "--language", lang, path)
	environ := cmd.Env
	if environ == nil {
		environ = os.Environ()
	}
	environ = append(environ, "XDG_CACHE_HOME="+cacheDir)
	for k, v := range env {
		environ = append(environ, k+"="+v)
	}
	cmd.Env = environ

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, apperrors.ToolFailed(i.program, strings.TrimSpace(stderr.String()), err)
	}
	return i.filter(stdout.String()), nil
}

// filter parses validator output, drops allowlisted findings, and strips
// the filename field from the survivors.
func (i *Inspector) filter(out string) []string {
	var issues []string
	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 3 {
			continue
		}
		if _, ok := i.accepted[fields[2]]; ok {
			continue
		}
		issues = append(issues, strings.Join(append(fields[:1:1], fields[2:]...), " "))
	}
	return issues
}
