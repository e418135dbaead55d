// Package cmd provides the CLI commands for polint.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/l10nkit/polint/internal/config"
	"github.com/l10nkit/polint/pkg/version"
)

// runOptions holds the CLI flags for a check/fix run.
type runOptions struct {
	fix        bool
	extended   bool
	lang       string
	cached     bool
	jobs       int
	configPath string
	verbose    bool
	quiet      bool
}

// NewRootCmd creates the root command for the polint CLI.
func NewRootCmd() *cobra.Command {
	var opts runOptions

	cmd := &cobra.Command{
		Use:   "polint [file ...]",
		Short: "Check and fix PO translation catalogs",
		Long: `polint validates PO translation catalogs: canonical header fields,
consistent line wrapping, and deep linting via i18nspector.

Without arguments it checks every .po file under the working directory.
With --fix it rewrites headers and wrapping in place.

Examples:
  polint                      check all catalogs recursively
  polint wiki/index.de.po     check one catalog
  polint --lang de            check all German catalogs
  polint --cached             check catalogs staged for commit
  polint --fix --lang de      normalize all German catalogs`,
		Version:       version.Short(),
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, args, opts)
		},
	}

	cmd.SetVersionTemplate("polint version {{.Version}}\n")

	cmd.Flags().BoolVar(&opts.fix, "fix", false, "Rewrite headers and wrapping instead of checking")
	cmd.Flags().BoolVar(&opts.extended, "check-extended", false, "Also validate canonical header field values")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Restrict selection to catalogs of one language code")
	cmd.Flags().BoolVar(&opts.cached, "cached", false, "Restrict selection to catalogs staged for commit")
	cmd.Flags().IntVar(&opts.jobs, "jobs", 0, "Number of parallel workers (0 = available parallelism)")
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultFileName, "Path to the configuration file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.Flags().BoolVarP(&opts.quiet, "quiet", "q", false, "Only log errors")

	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
