package cmd

import (
	"fmt"

	"github.com/djcass44/pkgdiff/pkg/rpmver"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare <a> <b>",
	Short: "compare two version-release strings",
	Long:  "compare two version-release strings and print '<', '=' or '>' depending on whether a is older, equal to or newer than b",
	Args:  cobra.ExactArgs(2),
	RunE:  compare,
}

func compare(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	comparator, err := rpmver.NewComparator(cfg.Spec.Comparator)
	if err != nil {
		return err
	}
	c, err := comparator.Compare(args[0], args[1])
	if err != nil {
		return err
	}

	out := "="
	switch {
	case c < 0:
		out = "<"
	case c > 0:
		out = ">"
	}
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
