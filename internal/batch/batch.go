// Package batch fans per-catalog work out over a bounded worker pool.
//
// Check mode streams results in completion order so reports appear as
// soon as a file is done; fix mode only needs the pool drained. Workers
// share nothing: every task opens its own catalog handle, and the
// external validator runs with an isolated cache per invocation.
package batch

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/l10nkit/polint/internal/po"
	"github.com/l10nkit/polint/internal/policy"
)

// Linter checks one catalog with the external validator.
type Linter interface {
	Run(ctx context.Context, path, lang string, env map[string]string) ([]string, error)
}

// Result is the outcome for one checked catalog. An empty issue list
// means the file is clean.
type Result struct {
	Path   string
	Issues []string
}

// Clean reports whether the catalog passed all checks.
func (r Result) Clean() bool { return len(r.Issues) == 0 }

// Driver runs check or fix work units across the pool.
type Driver struct {
	linter   Linter
	policy   policy.Policy
	jobs     int
	extended bool
}

// Option configures a Driver.
type Option func(*Driver)

// WithJobs bounds the worker pool. Zero or negative falls back to the
// available parallelism.
func WithJobs(n int) Option {
	return func(d *Driver) {
		if n > 0 {
			d.jobs = n
		}
	}
}

// WithExtendedChecks also validates the canonical header fields in check
// mode, on top of the external validator.
func WithExtendedChecks(extended bool) Option {
	return func(d *Driver) { d.extended = extended }
}

// New creates a Driver.
func New(linter Linter, pol policy.Policy, opts ...Option) *Driver {
	d := &Driver{
		linter: linter,
		policy: pol,
		jobs:   runtime.NumCPU(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Check lints every file and streams one Result per file over the
// returned channel, in completion order. Per-file failures (missing
// file, undetectable language, validator errors) become issue lines of
// that file's result; they never abort the batch. The channel is closed
// once all files are done.
func (d *Driver) Check(ctx context.Context, files []string) <-chan Result {
	results := make(chan Result, d.jobs)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.jobs)
	go func() {
		defer close(results)
		for _, f := range files {
			f := f
			g.Go(func() error {
				results <- d.checkOne(ctx, f)
				return nil
			})
		}
		g.Wait()
	}()
	return results
}

func (d *Driver) checkOne(ctx context.Context, path string) Result {
	res := Result{Path: path}
	file, err := po.Open(path)
	if err != nil {
		res.Issues = append(res.Issues, err.Error())
		return res
	}
	lang, err := file.LanguageWithoutScript()
	if err != nil {
		res.Issues = append(res.Issues, err.Error())
		return res
	}

	issues, err := d.linter.Run(ctx, path, lang, nil)
	if err != nil {
		// a validator failure is one issue line, not a batch abort
		res.Issues = append(res.Issues, err.Error())
	}
	res.Issues = append(res.Issues, issues...)

	if d.extended {
		res.Issues = append(res.Issues, d.headerIssues(file)...)
	}
	return res
}

// headerIssues compares the catalog's header against the canonical
// required fields.
func (d *Driver) headerIssues(file *po.File) []string {
	required, err := d.policy.Required(file.Path())
	if err != nil {
		return []string{err.Error()}
	}
	var issues []string
	for _, field := range required {
		if file.HasMetadata(field.Key, field.Value) {
			continue
		}
		got, ok := file.Metadata(field.Key)
		if !ok {
			issues = append(issues, fmt.Sprintf("missing header %s, expected %q", field.Key, field.Value))
			continue
		}
		issues = append(issues, fmt.Sprintf("header %s is %q, expected %q", field.Key, got, field.Value))
	}
	return issues
}

// Fix rewrites every file that needs it and waits for all workers. The
// first error aborts the batch; results of individual files are not
// otherwise reported.
func (d *Driver) Fix(ctx context.Context, files []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.jobs)
	for _, f := range files {
		f := f
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			return d.fixOne(f)
		})
	}
	return g.Wait()
}

// fixOne applies the canonical headers, refreshes the wrapping, and
// persists the catalog if anything changed.
func (d *Driver) fixOne(path string) error {
	file, err := po.Open(path)
	if err != nil {
		return err
	}
	required, err := d.policy.Required(path)
	if err != nil {
		return err
	}
	for _, field := range required {
		file.SetMetadata(field.Key, field.Value)
	}
	// marks the catalog modified when only the wrapping is stale
	if _, err := file.NeedsRewrap(); err != nil {
		return err
	}
	return file.Persist()
}
