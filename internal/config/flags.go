package config

import (
	"flag"
	"os"
	"time"

	"github.com/peakhub/peakhub/internal/flagx"
)

// parseFlags overlays Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   path of the local session database (default from Config)
//	-l int      simulated login latency in milliseconds (default from Config)
//
// os.Args is filtered through flagx.FilterArgs so flags owned by other
// components do not break parsing.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.StorePath, "s", cfg.StorePath, "path of the local session database")
	latencyMs := fs.Int("l", int(cfg.LoginLatency.Milliseconds()), "simulated login latency (in milliseconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.LoginLatency = time.Duration(*latencyMs) * time.Millisecond
}
