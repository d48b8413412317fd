package config

import "github.com/urfave/cli/v3"

// Download holds the flags shared by every dataset subcommand
type Download struct {
	Directory string
	Clear     bool
	Mirrors   string
}

// Flags returns CLI flags for download target configuration
func (c *Download) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "directory",
			Aliases:     []string{"d"},
			Usage:       "Directory to save downloaded files in",
			Value:       ".",
			Destination: &c.Directory,
			Sources:     cli.EnvVars("DSFETCH_DIRECTORY"),
		},
		&cli.BoolFlag{
			Name:        "clear",
			Usage:       "Remove existing files in the directory before downloading",
			Value:       false,
			Destination: &c.Clear,
			Sources:     cli.EnvVars("DSFETCH_CLEAR"),
		},
		&cli.StringFlag{
			Name:        "mirrors",
			Usage:       "Path to a TOML file with per-dataset mirror URL prefixes",
			Destination: &c.Mirrors,
			Sources:     cli.EnvVars("DSFETCH_MIRRORS"),
		},
	}
}
