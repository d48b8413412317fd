package config

import (
	"time"

	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/dsfetch/pkg/domain/types"
)

// HTTP holds HTTP client configuration shared by all dataset subcommands
type HTTP struct {
	Timeout   time.Duration
	UserAgent string
	AuthToken string `masq:"secret"`
	ChunkSize int64
}

// Flags returns CLI flags for HTTP client configuration
func (c *HTTP) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.DurationFlag{
			Name:        "http-timeout",
			Usage:       "Overall HTTP request timeout (0 means no timeout)",
			Value:       0,
			Destination: &c.Timeout,
			Sources:     cli.EnvVars("DSFETCH_HTTP_TIMEOUT"),
		},
		&cli.StringFlag{
			Name:        "user-agent",
			Usage:       "User-Agent header for download requests",
			Value:       "dsfetch/" + types.Version,
			Destination: &c.UserAgent,
			Sources:     cli.EnvVars("DSFETCH_USER_AGENT"),
		},
		&cli.StringFlag{
			Name:        "auth-token",
			Usage:       "Bearer token for authenticated dataset mirrors",
			Destination: &c.AuthToken,
			Sources:     cli.EnvVars("DSFETCH_AUTH_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "chunk-size",
			Usage:       "Download copy chunk size in bytes",
			Value:       1024,
			Destination: &c.ChunkSize,
			Sources:     cli.EnvVars("DSFETCH_CHUNK_SIZE"),
		},
	}
}
