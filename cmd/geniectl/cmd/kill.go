package cmd

import (
	"github.com/spf13/cobra"
)

var killCmd = &cobra.Command{
	Use:   "kill [job_id]",
	Short: "Stop a running job",
	Long:  `Ask the service to stop the job. Uses the job's kill URI when the handle already knows it, otherwise kills by job ID.`,
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

		resp, err := rj.Kill(cmd.Context())
		if err != nil {
			cmd.Printf("Failed to kill job: %v\n", err)
			return
		}
		cmd.Printf("Kill request for job %s accepted (%d)\n", jobID, resp.StatusCode)
	},
}

func init() {
	rootCmd.AddCommand(killCmd)
}
