package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genieclient/internal/config"
	"genieclient/internal/logger"
	"genieclient/pkg/adapters"
	"genieclient/pkg/genie"
)

// requireToken checks that an API token is configured, printing guidance
// when it is not.
func requireToken(cmd *cobra.Command) bool {
	if viper.GetString("token") == "" {
		cmd.Println("API token not found. Please set it using the --token flag or the GENIE_TOKEN environment variable")
		return false
	}
	return true
}

// newAdapter resolves the Adapter from flags plus ambient environment
// settings (request timeout).
func newAdapter() (genie.Adapter, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	adapter, err := adapters.New(adapters.Config{
		Version: viper.GetString("api_version"),
		BaseURL: viper.GetString("url"),
		Token:   viper.GetString("token"),
		Timeout: cfg.RequestTimeout,
		Logger:  logger.NewWithOptions(os.Stderr, slog.LevelWarn),
	})
	if err != nil {
		return nil, nil, err
	}
	return adapter, cfg, nil
}

// newJobHandle builds a RunningJob for the given ID, with progress output
// wired per configuration.
func newJobHandle(jobID string) (*genie.RunningJob, error) {
	adapter, cfg, err := newAdapter()
	if err != nil {
		return nil, err
	}

	opts := []genie.Option{genie.WithoutProgress()}
	if w := cfg.ProgressWriter(); w != nil {
		opts = []genie.Option{genie.WithProgressStream(w)}
	}
	return genie.NewRunningJob(jobID, adapter, opts...), nil
}
