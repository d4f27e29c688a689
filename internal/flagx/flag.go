// Package flagx contains helpers for parsing only a subset of os.Args, so
// that several loaders (JSON file, .env file, flags) can each pick the flags
// they own without tripping over the others.
package flagx

import (
	"flag"
	"strings"
)

// FilterArgs returns the subset of args that belongs to allowedFlags, keeping
// each flag's value.
//
// Supported formats:
//  1. Flag and value as separate arguments:  -c conf.json
//  2. Flag and value combined with '=':      -config=conf.json
//
// The result is never nil.
func FilterArgs(args []string, allowedFlags []string) []string {
	allowed := make(map[string]struct{}, len(allowedFlags))
	for _, f := range allowedFlags {
		allowed[f] = struct{}{}
	}

	filtered := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if strings.HasPrefix(arg, "-") && strings.Contains(arg, "=") {
			name, _, _ := strings.Cut(arg, "=")
			if _, ok := allowed[name]; ok {
				filtered = append(filtered, arg)
			}
			continue
		}

		if _, ok := allowed[arg]; ok {
			filtered = append(filtered, arg)
			// a following non-flag token is this flag's value
			if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				filtered = append(filtered, args[i+1])
				i++
			}
		}
	}

	return filtered
}

// StringFlag extracts a single string value registered under a long and a
// short name, e.g. ("config", "c"). It returns "" when neither is present.
func StringFlag(args []string, long, short, usage string) string {
	var value string

	filtered := FilterArgs(args, []string{"-" + long, "-" + short, "--" + long})

	fs := flag.NewFlagSet(long, flag.ContinueOnError)
	fs.StringVar(&value, long, "", usage)
	fs.StringVar(&value, short, "", usage+" (short)")
	_ = fs.Parse(filtered)

	return value
}

// JsonConfigFlags returns the JSON config path given via -c or -config.
func JsonConfigFlags(args []string) string {
	return StringFlag(args, "config", "c", "Path to config file")
}

// EnvFileFlags returns the dotenv file path given via -e or -env.
func EnvFileFlags(args []string) string {
	return StringFlag(args, "env", "e", "Path to .env file")
}
