// Package adapters resolves a genie.Adapter implementation from
// configuration by service protocol version, so that callers never wire a
// concrete transport themselves.
package adapters

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"genieclient/pkg/adapters/restv3"
	"genieclient/pkg/genie"
)

// Config selects and configures an Adapter implementation.
type Config struct {
	// Version is the service protocol version. Empty means the latest
	// supported version.
	Version string

	// BaseURL is the root URL of the job orchestration service.
	BaseURL string

	// Token is the bearer token used for authentication.
	Token string

	// Timeout applies per HTTP request. Zero keeps the implementation's
	// default.
	Timeout time.Duration

	// Logger receives per-request debug logs.
	Logger *slog.Logger
}

// New returns the Adapter for the configured protocol version.
func New(cfg Config) (genie.Adapter, error) {
	switch cfg.Version {
	case "", "3":
		var opts []restv3.Option
		if cfg.Timeout > 0 {
			opts = append(opts, restv3.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
		}
		if cfg.Logger != nil {
			opts = append(opts, restv3.WithLogger(cfg.Logger))
		}
		return restv3.New(cfg.BaseURL, cfg.Token, opts...), nil
	}
	return nil, fmt.Errorf("unsupported service protocol version %q", cfg.Version)
}
