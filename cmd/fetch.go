package cmd

import (
	"github.com/djcass44/pkgdiff/pkg/report"
	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <branch>",
	Short: "download the binary packages of a single branch",
	Args:  cobra.ExactArgs(1),
	RunE:  fetch,
}

func init() {
	fetchCmd.Flags().StringP(flagOutput, "o", "", "path to write the packages to instead of stdout")
}

func fetch(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())
	branch := args[0]

	outputPath, _ := cmd.Flags().GetString(flagOutput)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	catalog, err := newClient(cmd.Context(), cfg).Fetch(cmd.Context(), branch)
	if err != nil {
		return err
	}
	log.Info("fetched branch", "branch", branch, "count", catalog.Count())

	if outputPath == "" {
		return report.Encode(cmd.OutOrStdout(), catalog)
	}
	if err := report.WriteJSON(afero.NewOsFs(), outputPath, catalog); err != nil {
		return err
	}
	log.Info("wrote packages", "path", outputPath)
	return nil
}
