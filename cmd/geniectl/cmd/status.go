package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"genieclient/pkg/genie"
)

var statusCmd = &cobra.Command{
	Use:   "status [job_id]",
	Short: "Get status of a job",
	Long:  `Retrieve status information for a remote job, including its current state (INIT, RUNNING, SUCCEEDED, FAILED, KILLED), type, cluster, and timestamps.`,
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
		status, err := rj.Status(ctx)
		if err != nil {
			cmd.Printf("Failed to fetch status: %v\n", err)
			return
		}

		// Best effort for everything beyond the status itself; a job in
		// INIT may not have metadata yet.
		name, _ := rj.JobName(ctx)
		jobType, _ := rj.JobType(ctx)
		cluster, _ := rj.ClusterName(ctx)
		user, _ := rj.Username(ctx)
		msg, _ := rj.StatusMsg(ctx)
		started, _ := rj.StartTime(ctx)
		finished, _ := rj.FinishTime(ctx)
		duration, _ := rj.Duration(ctx)

		printJobStatus(cmd, jobID, status, name, jobType, cluster, user, msg, started, finished, duration)
	},
}

func printJobStatus(cmd *cobra.Command, jobID, status, name, jobType, cluster, user, msg string, started, finished, duration int64) {
	icon := statusIcon(status)
	cmd.Printf("%s %sJob Details%s\n", icon, colorBold, colorReset)
	cmd.Println("──────────────────────────────")

	cmd.Printf("%sID:%s          %s\n", colorDim, colorReset, jobID)
	cmd.Printf("%sStatus:%s      %s\n", colorDim, colorReset, colorizeStatus(status))

	if name != "" {
		cmd.Printf("%sName:%s        %s\n", colorDim, colorReset, name)
	}
	if jobType != "" {
		cmd.Printf("%sType:%s        %s\n", colorDim, colorReset, jobType)
	}
	if cluster != "" {
		cmd.Printf("%sCluster:%s     %s\n", colorDim, colorReset, cluster)
	}
	if user != "" {
		cmd.Printf("%sUser:%s        %s\n", colorDim, colorReset, user)
	}
	if msg != "" {
		cmd.Printf("%sMessage:%s     %s\n", colorDim, colorReset, msg)
	}

	cmd.Printf("%sStarted:%s     %s\n", colorDim, colorReset, formatEpochMillis(started))

	// A negative duration means the job has not finished yet.
	if duration >= 0 && finished > 0 {
		cmd.Printf("%sFinished:%s    %s %s(%s)%s\n", colorDim, colorReset,
			formatEpochMillis(finished),
			colorCyan, formatDuration(time.Duration(duration)*time.Millisecond), colorReset)
	} else {
		cmd.Printf("%sFinished:%s    %s-%s still running\n", colorDim, colorReset, colorYellow, colorReset)
	}
}

// ANSI color codes
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorDim    = "\033[2m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorCyan   = "\033[36m"
)

func statusIcon(status string) string {
	switch status {
	case genie.StatusSucceeded:
		return colorGreen + "✓" + colorReset
	case genie.StatusFailed, genie.StatusKilled:
		return colorRed + "✗" + colorReset
	case genie.StatusRunning:
		return colorYellow + "⏳" + colorReset
	case genie.StatusInit:
		return colorCyan + "◯" + colorReset
	default:
		return "•"
	}
}

func colorizeStatus(status string) string {
	icon := statusIcon(status)
	switch status {
	case genie.StatusSucceeded:
		return icon + " " + colorGreen + status + colorReset
	case genie.StatusFailed, genie.StatusKilled:
		return icon + " " + colorRed + status + colorReset
	case genie.StatusRunning:
		return icon + " " + colorYellow + status + colorReset
	case genie.StatusInit:
		return icon + " " + colorCyan + status + colorReset
	default:
		return status
	}
}

func formatEpochMillis(millis int64) string {
	if millis <= 0 {
		return "-"
	}
	t := time.UnixMilli(millis).UTC()
	return t.Format("Mon, 02 Jan 2006 15:04:05 MST")
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	} else if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	} else if d < time.Hour {
		return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
