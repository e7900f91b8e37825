// Package config handles environment variable loading for the client:
// service endpoint, credentials, protocol version, and progress output.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values for the client.
type Config struct {
	// Base URL of the job orchestration service
	ServiceURL string

	// Bearer token for authentication
	Token string

	// Service protocol version (currently only "3")
	Version string

	// Timeout applied to each HTTP request
	RequestTimeout time.Duration

	// Where Wait's progress dots go: "stdout", "stderr", or "off"
	ProgressStream string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	serviceURL := os.Getenv("GENIE_URL")
	if serviceURL == "" {
		serviceURL = "http://localhost:8080" // Default
	}

	version := os.Getenv("GENIE_VERSION")
	if version == "" {
		version = "3"
	}

	timeout := 30 * time.Second
	if timeoutStr := os.Getenv("GENIE_TIMEOUT_SECONDS"); timeoutStr != "" {
		secs, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return nil, fmt.Errorf("invalid GENIE_TIMEOUT_SECONDS: %w", err)
		}
		timeout = time.Duration(secs) * time.Second
	}

	stream := os.Getenv("GENIE_PROGRESS_STREAM")
	switch stream {
	case "":
		stream = "stdout"
	case "stdout", "stderr", "off":
	default:
		return nil, fmt.Errorf("invalid GENIE_PROGRESS_STREAM %q (want stdout, stderr, or off)", stream)
	}

	return &Config{
		ServiceURL:     serviceURL,
		Token:          os.Getenv("GENIE_TOKEN"),
		Version:        version,
		RequestTimeout: timeout,
		ProgressStream: stream,
	}, nil
}

// ProgressWriter returns the sink selected by ProgressStream, or nil when
// progress output is disabled.
func (c *Config) ProgressWriter() io.Writer {
	switch c.ProgressStream {
	case "stdout":
		return os.Stdout
	case "stderr":
		return os.Stderr
	}
	return nil
}
