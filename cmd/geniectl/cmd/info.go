package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"genieclient/pkg/genie"
)

var infoSection string

var infoCmd = &cobra.Command{
	Use:   "info [job_id]",
	Short: "Dump job metadata as JSON",
	Long:  `Fetch job metadata from the service and print it as indented JSON. Use --section to limit the fetch to one info section (applications, cluster, command, execution, job, request).`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jobID := args[0]

		if !requireToken(cmd) {
			return
		}

		section := genie.SectionAll
		if infoSection != "" {
			s, err := genie.ParseSection(infoSection)
			if err != nil {
				cmd.Printf("Invalid section: %v\n", err)
				return
			}
			section = s
		}

		adapter, _, err := newAdapter()
		if err != nil {
			cmd.Printf("Failed to create client: %v\n", err)
			return
		}

		data, err := adapter.JobInfo(cmd.Context(), jobID, section)
		if err != nil {
			cmd.Printf("Failed to fetch job info: %v\n", err)
			return
		}

		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			cmd.Printf("Failed to render job info: %v\n", err)
			return
		}
		cmd.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.Flags().StringVarP(&infoSection, "section", "s", "", "Limit the fetch to one info section")
}
