package config

import (
	"flag"
	"time"
)

// parseFlags parses configuration flags from args.
//
// Flags:
//
//	-d database file path
//	-c/-config json file path with configs
//	-remote-endpoint base URL of the remote contents API
//	-remote-timeout remote request timeout (e.g., "15s", "1m")
//	-auto-lock auto-lock inactivity timeout (e.g., "5m")
//	-flush-interval background pending-push retry interval (e.g., "1m")
func parseFlags(args []string) (*Config, error) {
	fs := flag.NewFlagSet("claviger", flag.ContinueOnError)

	var (
		databaseDSN     string
		jsonConfigPath  string
		remoteEndpoint  string
		remoteTimeout   time.Duration
		autoLockTimeout time.Duration
		flushInterval   time.Duration
	)

	fs.StringVar(&databaseDSN, "d", "", "Database file path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&remoteEndpoint, "remote-endpoint", "", "Remote contents API base URL")
	fs.DurationVar(&remoteTimeout, "remote-timeout", 0, "Remote request timeout (e.g., 15s, 1m)")
	fs.DurationVar(&autoLockTimeout, "auto-lock", 0, "Auto-lock inactivity timeout (e.g., 5m)")
	fs.DurationVar(&flushInterval, "flush-interval", 0, "Background pending-push retry interval (e.g., 1m)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &Config{
		App: App{
			AutoLockTimeout: autoLockTimeout,
			FlushInterval:   flushInterval,
		},
		Storage: Storage{
			DSN: databaseDSN,
		},
		Remote: Remote{
			Endpoint:       remoteEndpoint,
			RequestTimeout: remoteTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}
