package config

import (
	"flag"
	"os"

	"github.com/Jaswanthh22/otpauth-cli/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   API base URL override
//	-p string   localhost API port override
//	-o string   origin the auth pages are served from
//	-d string   path of the local session database
//	-l string   log level (debug, info, warn, error)
//	-s string   start page (signup, login, dashboard)
//
// Note: The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-p", "-o", "-d", "-l", "-s"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIBaseURL, "a", cfg.APIBaseURL, "API base URL override")
	fs.StringVar(&cfg.APIPort, "p", cfg.APIPort, "localhost API port override")
	fs.StringVar(&cfg.Origin, "o", cfg.Origin, "origin the auth pages are served from")
	fs.StringVar(&cfg.DatabasePath, "d", cfg.DatabasePath, "path of the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.StartPage, "s", cfg.StartPage, "start page")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
