package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/djcass44/pkgdiff/pkg/diff"
	"github.com/djcass44/pkgdiff/pkg/report"
	"github.com/djcass44/pkgdiff/pkg/rpmver"
	"github.com/djcass44/go-utils/logging"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

var command = &cobra.Command{
	Use:          "pkgdiff",
	Short:        "compare the binary packages of two ALT Linux branches",
	SilenceUsage: true,
	Args:         cobra.NoArgs,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)

		zc := zap.NewProductionConfig()
		zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))

		_, ctx := logging.NewZap(cmd.Context(), zc)
		cmd.SetContext(ctx)
	},
	RunE: run,
}

const (
	flagLogLevel   = "log-level"
	flagConfig     = "config"
	flagBaseURL    = "base-url"
	flagTimeout    = "timeout"
	flagRetries    = "retries"
	flagComparator = "comparator"

	flagOutput    = "output"
	flagVerbose   = "verbose"
	flagReference = "reference"
	flagTarget    = "target"
)

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	command.PersistentFlags().StringP(flagConfig, "c", "", "path to a diff configuration file")
	command.PersistentFlags().String(flagBaseURL, "", "base url of the branch export api")
	command.PersistentFlags().Duration(flagTimeout, 0, "timeout of each request")
	command.PersistentFlags().Int(flagRetries, 0, "number of times a failed request is retried")
	command.PersistentFlags().String(flagComparator, "", "version comparator to use (RPM, RPMUtils or Builtin)")

	command.Flags().StringP(flagOutput, "o", "", "path to write the results to instead of stdout")
	command.Flags().BoolP(flagVerbose, "v", false, "print a summary of the differences")
	command.Flags().String(flagReference, "", "branch that is expected to be ahead")
	command.Flags().String(flagTarget, "", "branch that is compared against the reference")

	_ = command.MarkPersistentFlagFilename(flagConfig, ".yaml", ".yml", ".json")

	command.AddCommand(fetchCmd, compareCmd)
}

func Execute(version string) {
	command.Version = version
	os.Exit(execute(context.Background()))
}

func execute(ctx context.Context) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := command.ExecuteContext(ctx); err != nil {
		return exitCode(err)
	}
	return 0
}

func run(cmd *cobra.Command, _ []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	outputPath, _ := cmd.Flags().GetString(flagOutput)
	verbose, _ := cmd.Flags().GetBool(flagVerbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	comparator, err := rpmver.NewComparator(cfg.Spec.Comparator)
	if err != nil {
		return err
	}
	branches := cfg.Spec.Branches
	client := newClient(cmd.Context(), cfg)

	// fetch both branches at the same time. If either
	// fails, the other request is cancelled
	var reference, target v1.Catalog
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		reference, err = client.Fetch(ctx, branches.Reference)
		return err
	})
	g.Go(func() error {
		var err error
		target, err = client.Fetch(ctx, branches.Target)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	log.Info("fetched branches", "reference", branches.Reference, "target", branches.Target)

	result := diff.Compare(cmd.Context(), branches, reference, target, comparator)

	return report.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr()).Render(cmd.Context(), result, outputPath, verbose)
}
