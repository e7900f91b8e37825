package cmd

import (
	"github.com/spf13/cobra"

	"genieclient/pkg/genie"
)

var (
	logSource string
	logPath   string
)

var logsCmd = &cobra.Command{
	Use:   "logs [job_id]",
	Short: "Print logs for a job",
	Long:  `Print a job's logs. --source selects the job-system log (genie), stdout, or stderr; --path reads an arbitrary log relative to the job's output directory and overrides --source.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobID := args[0]

		if !requireToken(cmd) {
			return
		}

		rj, err := newJobHandle(jobID)
		if err != nil {
			cmd.Printf("Failed to create client: %v\n", err)
			return
		}

		ctx := cmd.Context()
		var reader genie.LogReader
		switch {
		case logPath != "":
			reader, err = rj.LogLines(ctx, logPath)
		case logSource == "genie":
			reader, err = rj.GenieLogLines(ctx)
		case logSource == "stdout":
			reader, err = rj.StdoutLines(ctx)
		case logSource == "stderr":
			reader, err = rj.StderrLines(ctx)
		default:
			cmd.Printf("Invalid log source %q (want genie, stdout, or stderr)\n", logSource)
			return
		}
		if err != nil {
			cmd.Printf("Failed to fetch logs: %v\n", err)
			return
		}
		defer reader.Close()

		for reader.Next() {
			cmd.Println(reader.Text())
		}
		if err := reader.Err(); err != nil {
			cmd.Printf("Error reading logs: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.Flags().StringVar(&logSource, "source", "genie", "Log to read: genie, stdout, or stderr")
	logsCmd.Flags().StringVar(&logPath, "path", "", "Relative path of a log in the job's output directory")
}
