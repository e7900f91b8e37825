package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func TestLogsCommand_Stderr(t *testing.T) {
	resetViper()

	server := newFakeService(t)
	defer server.Close()

	viper.Set("url", server.URL)
	viper.Set("token", "test-token")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"logs", "job-1", "--source", "stderr"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := stdout.String()
	if !strings.Contains(output, "err line 1") || !strings.Contains(output, "err line 2") {
		t.Errorf("expected stderr lines, got: %s", output)
	}
}

func TestLogsCommand_NamedPath(t *testing.T) {
	resetViper()

	server := newFakeService(t)
	defer server.Close()

	viper.Set("url", server.URL)
	viper.Set("token", "test-token")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"logs", "job-1", "--source", "genie", "--path", "genie/logs/env.log"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "log output") {
		t.Errorf("expected log content, got: %s", stdout.String())
	}
}

func TestLogsCommand_InvalidSource(t *testing.T) {
	resetViper()

	viper.Set("url", "http://localhost:0")
	viper.Set("token", "test-token")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"logs", "job-1", "--source", "syslog", "--path", ""})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(stdout.String(), "Invalid log source") {
		t.Errorf("expected invalid source message, got: %s", stdout.String())
	}
}
