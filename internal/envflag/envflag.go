// Package envflag lets command-line flags be additionally populated from
// environment variables, with command-line values taking priority.
package envflag

import (
	"flag"
	"log"
	"os"
)

var enable = flag.Bool("envflag.enable", false, "Whether to read flags from environment variables in addition to the command line. "+
	"Command-line flag values take priority over environment variables. Flags are read only from the command line if this is unset")

// Parse parses environment variables and command-line flags.
//
// Call this instead of flag.Parse() before using any flags.
func Parse() {
	flag.Parse()
	if !*enable {
		return
	}

	flagsSet := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		flagsSet[f.Name] = true
	})

	flag.VisitAll(func(f *flag.Flag) {
		if flagsSet[f.Name] {
			return
		}
		if v, ok := os.LookupEnv(f.Name); ok {
			if err := f.Value.Set(v); err != nil {
				log.Fatalf("cannot set flag %s to %q, which is read from environment variable: %s", f.Name, v, err)
			}
		}
	})
}
