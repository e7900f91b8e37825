package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"genieclient/internal/observability"
)

var cfgFile string

var tracingShutdown func(context.Context) error

var rootCmd = &cobra.Command{
	Use:   "geniectl",
	Short: "Geniectl is a command line tool for inspecting jobs on a Genie-style job service",
	Long: `geniectl is the command-line interface for a Genie-style job orchestration
service. It gives a client-side view of a remote, asynchronously-executing
job: status, metadata, logs, and a blocking wait.

Common workflows:

  Check a job's status:
    geniectl status <job-id>

  Dump job metadata (optionally one section):
    geniectl info <job-id> --section cluster

  Read logs:
    geniectl logs <job-id> --source stderr
    geniectl logs <job-id> --path genie/logs/env.log

  Block until the job finishes (or starts running):
    geniectl wait <job-id>
    geniectl wait <job-id> --until-running

  Stop a job:
    geniectl kill <job-id>

Configuration:
  Set the API endpoint and credentials via environment variables or a config file:
    GENIE_URL               Service endpoint (default: http://localhost:8080)
    GENIE_TOKEN             API token for authentication
    GENIE_API_VERSION       Service protocol version (default: 3)
    GENIE_PROGRESS_STREAM   Where wait's progress dots go: stdout, stderr, off
    GENIE_OTLP_ENDPOINT     Optional OTLP collector for request tracing`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if addr := viper.GetString("otlp_endpoint"); addr != "" {
			shutdown, err := observability.InitTracing(cmd.Context(), "geniectl", addr)
			if err != nil {
				cmd.PrintErrf("Failed to initialize tracing: %v\n", err)
				return
			}
			tracingShutdown = shutdown
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if tracingShutdown != nil {
			tracingShutdown(cmd.Context())
			tracingShutdown = nil
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".geniectl"
		viper.AddConfigPath(home)
		viper.SetConfigName(".geniectl")
		viper.SetConfigType("yaml")
	}

	// Read environment variables that match "GENIE_VARNAME"
	viper.SetEnvPrefix("GENIE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.geniectl.yaml)")

	rootCmd.PersistentFlags().String("url", "http://localhost:8080", "Job service URL")
	viper.BindPFlag("url", rootCmd.PersistentFlags().Lookup("url"))

	rootCmd.PersistentFlags().StringP("token", "t", "", "API Token for authentication")
	viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))

	rootCmd.PersistentFlags().String("api-version", "3", "Service protocol version")
	viper.BindPFlag("api_version", rootCmd.PersistentFlags().Lookup("api-version"))
}
