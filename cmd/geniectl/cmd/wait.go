package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"genieclient/pkg/genie"
)

var (
	waitInterval     int
	waitUntilRunning bool
	waitQuiet        bool
)

var waitCmd = &cobra.Command{
	Use:   "wait [job_id]",
	Short: "Block until a job finishes",
	Long:  `Poll the service at a fixed interval until the job reaches a terminal status. With --until-running, return as soon as the job leaves the queued/initializing state. There is no timeout; interrupt with Ctrl+C.`,
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
		if _, err := rj.Wait(ctx, genie.WaitOptions{
			PollInterval: time.Duration(waitInterval) * time.Second,
			Quiet:        waitQuiet,
			UntilRunning: waitUntilRunning,
		}); err != nil {
			cmd.Printf("Wait failed: %v\n", err)
			return
		}

		status, err := rj.Status(ctx)
		if err != nil {
			cmd.Printf("Failed to fetch final status: %v\n", err)
			return
		}
		cmd.Printf("Job %s is %s\n", jobID, colorizeStatus(status))
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().IntVarP(&waitInterval, "interval", "i", 10, "Seconds to sleep between status polls")
	waitCmd.Flags().BoolVar(&waitUntilRunning, "until-running", false, "Return once the job is RUNNING instead of waiting for completion")
	waitCmd.Flags().BoolVarP(&waitQuiet, "quiet", "q", false, "Suppress progress output")
}
