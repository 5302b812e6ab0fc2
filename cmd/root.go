// Package cmd wires up the CLI flags and dispatches to the run modes.
package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	flag "github.com/spf13/pflag"

	"brackets/config"
	"brackets/internal/core"
	"brackets/internal/metrics"
	"brackets/internal/session"
	"brackets/util"
)

// version is overridable at link time:
//
//	go build -ldflags "-X brackets/cmd.version=2.0.0"
var version = "1.0.0" //nolint:gochecknoglobals

// Execute parses args and runs the selected mode on the process's
// standard streams.
func Execute(ctx context.Context, args []string) error {
	return Run(ctx, args, os.Stdin, os.Stdout, os.Stderr)
}

// Run is Execute with explicit I/O.  Verdicts go to stdout; usage,
// logs and --stats go to stderr.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Default()
	config.LoadFromEnv(cfg)
	envVerbose := cfg.Verbose

	fs := flag.NewFlagSet("brackets", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// ── mode ─────────────────────────────────────────────────────────
	fs.BoolVarP(&cfg.SelfTest, "self-test", "t", false, "Run the built-in test cases and exit")
	fs.BoolVarP(&cfg.Interactive, "interactive", "i", false, "Prompt for strings without running the test cases")
	fs.StringArrayVarP(&cfg.Files, "file", "f", nil, "Check each line of `FILE` (- for stdin, repeatable)")

	// ── check ────────────────────────────────────────────────────────
	fs.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Concurrent checks")
	fs.BoolVarP(&cfg.Quiet, "quiet", "q", cfg.Quiet, "Print no verdicts; report through the exit status only")

	// ── interactive ──────────────────────────────────────────────────
	fs.StringVar(&cfg.QuitCommand, "quit-command", cfg.QuitCommand, "Line that ends the prompt (case-insensitive)")
	fs.BoolVar(&cfg.NoTerminal, "no-terminal", cfg.NoTerminal, "Disable line editing even on a terminal")

	// ── output ───────────────────────────────────────────────────────
	fs.BoolVar(&cfg.Stats, "stats", cfg.Stats, "Print run statistics as JSON to stderr on exit")
	fs.CountVarP(&cfg.Verbose, "verbose", "v", "Increase verbosity (repeatable)")

	var showVersion, showHelp, dryRun bool
	fs.BoolVar(&showVersion, "version", false, "Print version and exit")
	fs.BoolVar(&dryRun, "dry-run", false, "Validate flags and exit")
	fs.BoolVarP(&showHelp, "help", "h", false, "Show this help")

	fs.Usage = func() { printUsage(stderr, fs) }

	// ── parse ────────────────────────────────────────────────────────
	if err := fs.Parse(args); err != nil {
		return err
	}

	if showHelp {
		printUsage(stderr, fs)
		return nil
	}
	if showVersion {
		fmt.Fprintf(stdout, "brackets %s\n", version)
		return nil
	}

	// CountVarP resets its target, so restore the env value unless -v
	// was given.
	if !fs.Changed("verbose") {
		cfg.Verbose = envVerbose
	}
	cfg.Inputs = fs.Args()

	// ── validate ─────────────────────────────────────────────────────
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := util.NewLogger(cfg.Verbose)
	logger.SetOutput(stderr)

	if dryRun {
		logger.Info("configuration OK")
		return nil
	}

	// ── build and run ────────────────────────────────────────────────
	collector := metrics.New()
	sess := session.New(stdin, stdout, logger, collector)

	err := core.Build(cfg, sess).Run(ctx)
	if cfg.Stats {
		fmt.Fprintln(stderr, collector.JSON())
	}
	return err
}

// ── helpers ──────────────────────────────────────────────────────────

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintf(w, `brackets – balanced bracket checker v%s

Reports whether every (, { and [ is closed by its own type in the
right order.  Other characters are ignored.

Usage:
  brackets                              Run the test cases, then prompt
  brackets -t                           Run the test cases only
  brackets -i                           Prompt only
  brackets [options] <string>...        Check each string
  brackets [options] -f <file>          Check each line of a file

Options:
`, version)
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintf(w, `
Examples:
  brackets '{[()]}' '([)]'              Two verdicts, exit status 1
  brackets -q -f cases.txt && echo ok   Silent batch check
  git show HEAD:x.json | brackets -f -  Check lines from stdin
`)
}
