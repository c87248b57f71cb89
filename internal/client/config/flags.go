package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/checklist/internal/flagx"
)

// parseFlags populates Config fields from the command line.
//
//	-a string   backend base URL
//	-t string   password reset token
//	-d string   local state database path
//
// Only these flags are looked at; see flagx.FilterArgs.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "checklist backend base URL")
	fs.StringVar(&cfg.ResetToken, "t", cfg.ResetToken, "password reset token")
	fs.StringVar(&cfg.StateDB, "d", cfg.StateDB, "local state database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
