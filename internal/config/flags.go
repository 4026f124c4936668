package config

import (
	"flag"
	"os"
	"strings"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-auth string      base URL of the auth service
//	-api string       base URL of the records service
//	-s string         path of the persisted session state
//	-d                enable debug logging
//
// Only the flags handled here are parsed; os.Args is filtered first so that
// the JSON-config flags (-c/-config) don't trip this flag set.
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-auth", "-api", "-s", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.AuthAPIBase, "auth", cfg.AuthAPIBase, "base URL of the auth service")
	fs.StringVar(&cfg.FinanzasAPIBase, "api", cfg.FinanzasAPIBase, "base URL of the records service")
	fs.StringVar(&cfg.SessionFile, "s", cfg.SessionFile, "path of the persisted session state")
	fs.BoolVar(&cfg.Debug, "d", cfg.Debug, "enable debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}

// jsonConfigFlags extracts the config file path from the -c or -config flags,
// ignoring every other argument. Returns "" when neither flag is present.
func jsonConfigFlags() string {
	var config string

	args := filterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&config, "config", "", "Path to config file")
	fs.StringVar(&config, "c", "", "Path to config file (short)")
	_ = fs.Parse(args)

	return config
}

// filterArgs returns only the allowed flags (and their values) from args.
// Both "-f value" and "-f=value" forms are recognized, so each flag set can
// parse its own subset of os.Args without tripping over the others'.
func filterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
