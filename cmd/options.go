package cmd

import (
	"context"

	"github.com/djcass44/pkgdiff/pkg/altrepo"
	v1 "github.com/djcass44/pkgdiff/pkg/api/v1"
	"github.com/djcass44/pkgdiff/pkg/config"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

// loadConfig reads the configuration file (if any) and
// applies any flags that were explicitly set on top of it.
func loadConfig(cmd *cobra.Command) (*v1.Diff, error) {
	log := logr.FromContextOrDiscard(cmd.Context())
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString(flagConfig); path != "" {
		log.V(1).Info("reading config file", "path", path)
		var err error
		cfg, err = config.Read(path)
		if err != nil {
			return nil, err
		}
	}

	if flags.Changed(flagBaseURL) {
		cfg.Spec.BaseURL, _ = flags.GetString(flagBaseURL)
	}
	if flags.Changed(flagReference) {
		cfg.Spec.Branches.Reference, _ = flags.GetString(flagReference)
	}
	if flags.Changed(flagTarget) {
		cfg.Spec.Branches.Target, _ = flags.GetString(flagTarget)
	}
	if flags.Changed(flagTimeout) {
		cfg.Spec.Timeout.Duration, _ = flags.GetDuration(flagTimeout)
	}
	if flags.Changed(flagRetries) {
		cfg.Spec.Retries, _ = flags.GetInt(flagRetries)
	}
	if flags.Changed(flagComparator) {
		comparator, _ := flags.GetString(flagComparator)
		cfg.Spec.Comparator = v1.ComparatorType(comparator)
	}
	config.SetDefaults(cfg)

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	log.V(2).Info("loaded configuration", "spec", cfg.Spec)
	return cfg, nil
}

func newClient(ctx context.Context, cfg *v1.Diff) *altrepo.Client {
	return altrepo.NewClient(ctx, altrepo.Options{
		BaseURL: cfg.Spec.BaseURL,
		Timeout: cfg.Spec.Timeout.Duration,
		Retries: cfg.Spec.Retries,
	})
}
