package config

import (
	"flag"
	"os"
	"strings"
	"time"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags:
//
//	-s string   base URL of the registry API
//	-t int      request timeout in seconds
//	-d string   path to the local snapshot database
//
// Arguments are filtered to the flags handled here so this parser does
// not trip over flags owned by other components (notably -c/-config,
// consumed by the JSON stage, and Go test flags).
func parseFlags(cfg *Config) {
	args := filterArgs(os.Args[1:], []string{"-s", "-t", "-d"})

	fs := flag.NewFlagSet("console", flag.ContinueOnError)
	fs.StringVar(&cfg.BaseURL, "s", cfg.BaseURL, "base URL of the registry API")
	timeoutSecs := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (seconds)")
	fs.StringVar(&cfg.SnapshotPath, "d", cfg.SnapshotPath, "path to the snapshot database")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeoutSecs) * time.Second
}

// jsonConfigFlag extracts the config-file path given via -c or -config,
// ignoring every other argument.
func jsonConfigFlag() string {
	var path string

	fs := flag.NewFlagSet("json", flag.ContinueOnError)
	fs.StringVar(&path, "config", "", "path to config file")
	fs.StringVar(&path, "c", "", "path to config file (short)")
	_ = fs.Parse(filterArgs(os.Args[1:], []string{"-c", "-config"}))

	return path
}

// filterArgs keeps only the allowed flags and their values. Both
// "-f value" and "-f=value" forms are recognized.
func filterArgs(args []string, allowed []string) []string {
	keep := make(map[string]struct{}, len(allowed))
	for _, f := range allowed {
		keep[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name := strings.SplitN(arg, "=", 2)[0]
			if _, ok := keep[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := keep[arg]; ok {
			filtered = append(filtered, arg)
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}
