package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/xyproto/env/v2"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/emberlang/ember-runtime/rc"
	"github.com/emberlang/ember-runtime/trap"
)

func main() {
	var (
		scenarioFile = flag.String("scenario", "", "Path to TOML scenario file")
		snapshotFile = flag.String("snapshot", "", "Write a CBOR snapshot of the final state")
		interactive  = flag.Bool("i", false, "Interactive mode with TUI")
		verbose      = flag.Bool("v", env.Bool("EMBER_LOG"), "Verbose runtime logging")
	)
	flag.Parse()

	// EMBER_STRICT overrides the default ownership-violation policy.
	if env.Has("EMBER_STRICT") {
		rc.Strict = env.Bool("EMBER_STRICT")
	}

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: logger: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		trap.SetLogger(logger)
	}

	if *interactive || (*scenarioFile == "" && term.IsTerminal(int(os.Stdout.Fd()))) {
		if err := runInteractive(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *scenarioFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: probe -scenario <file.toml> [-snapshot out.cbor]")
		fmt.Fprintln(os.Stderr, "       probe -i  (interactive mode)")
		os.Exit(1)
	}

	if err := runScenario(*scenarioFile, *snapshotFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
