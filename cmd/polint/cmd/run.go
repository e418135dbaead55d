package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/l10nkit/polint/internal/batch"
	"github.com/l10nkit/polint/internal/config"
	"github.com/l10nkit/polint/internal/discover"
	apperrors "github.com/l10nkit/polint/internal/errors"
	"github.com/l10nkit/polint/internal/inspector"
	"github.com/l10nkit/polint/internal/logging"
	"github.com/l10nkit/polint/internal/policy"
	"github.com/l10nkit/polint/internal/report"
)

// errNotClean is the final error of a check run with failing files.
var errNotClean = errors.New("checked files are not clean")

// run drives one check or fix batch.
func run(ctx context.Context, cmd *cobra.Command, args []string, opts runOptions) error {
	logging.SetupDefault(opts.verbose, opts.quiet)

	if opts.jobs < 0 {
		return apperrors.New(apperrors.ErrCodeInvalidInput, "--jobs must not be negative", nil)
	}

	// the default config file is optional, an explicitly requested one is not
	cfg, err := config.Load(opts.configPath, cmd.Flags().Changed("config"))
	if err != nil {
		return err
	}

	insp := inspector.New(cfg.Accepted())
	if err := insp.CheckInstalled(); err != nil {
		return err
	}

	files, err := discover.Files(discover.Options{
		Paths:           args,
		Lang:            opts.lang,
		Cached:          opts.cached,
		ExcludePrefixes: cfg.Excluded(),
	})
	if err != nil {
		return err
	}
	if len(files) == 0 {
		slog.Warn("no catalog files selected")
		return nil
	}
	slog.Debug("selected catalog files", slog.Int("count", len(files)))

	jobs := opts.jobs
	if jobs == 0 {
		jobs = cfg.Jobs
	}
	driver := batch.New(insp, policy.New(cfg.Team),
		batch.WithJobs(jobs),
		batch.WithExtendedChecks(opts.extended))

	if opts.fix {
		return driver.Fix(ctx, files)
	}
	return runCheck(ctx, cmd, driver, files)
}

// runCheck consumes check results in completion order, printing a block
// per failing file and a final summary.
func runCheck(ctx context.Context, cmd *cobra.Command, driver *batch.Driver, files []string) error {
	printer := report.New(cmd.OutOrStdout())
	failing := 0
	for res := range driver.Check(ctx, files) {
		if res.Clean() {
			slog.Debug("no issue found", slog.String("path", res.Path))
			continue
		}
		failing++
		printer.File(res.Path, res.Issues)
	}
	printer.Summary(len(files), failing)
	if failing > 0 {
		return errNotClean
	}
	return nil
}
