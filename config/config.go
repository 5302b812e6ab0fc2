// Package config defines the runtime configuration for brackets and the
// rules that keep a combination of flags consistent.
package config

import (
	"fmt"
	"strings"

	"brackets/internal/errors"
)

// Config holds every tuneable for a single brackets run.
type Config struct {
	// ── Mode ─────────────────────────────────────────────────────────
	SelfTest    bool     // -t: run the built-in case table only
	Interactive bool     // -i: run the prompt loop only
	Inputs      []string // positional strings to check
	Files       []string // -f: files of one input per line ("-" = stdin)

	// ── Check ────────────────────────────────────────────────────────
	Jobs  int  // concurrent validations in check mode
	Quiet bool // suppress per-input verdicts

	// ── Interactive ──────────────────────────────────────────────────
	QuitCommand string // case-insensitive line that ends the loop
	NoTerminal  bool   // never switch a TTY to raw mode

	// ── Output ───────────────────────────────────────────────────────
	Stats   bool // print a metrics snapshot on exit
	Verbose int
}

// Default returns a Config populated from defaults.go.
func Default() *Config {
	return &Config{
		Jobs:        DefaultJobs,
		QuitCommand: DefaultQuitCommand,
	}
}

// CheckRequested reports whether any input was supplied for check mode.
func (c *Config) CheckRequested() bool {
	return len(c.Inputs) > 0 || len(c.Files) > 0
}

// ── Validation ───────────────────────────────────────────────────────

// Validate checks that the configuration is internally consistent.
func (c *Config) Validate() error {
	if c.SelfTest && c.Interactive {
		return &errors.ConfigError{
			Field:   "self-test",
			Message: "--self-test and --interactive are mutually exclusive",
			Hint:    "run without either flag to get the self-test followed by the prompt",
		}
	}

	if c.CheckRequested() {
		switch {
		case c.SelfTest:
			return &errors.ConfigError{
				Field:   "self-test",
				Message: "cannot be combined with inputs to check",
			}
		case c.Interactive:
			return &errors.ConfigError{
				Field:   "interactive",
				Message: "cannot be combined with inputs to check",
				Hint:    "pipe lines through -f - instead",
			}
		}
	}

	for _, f := range c.Files {
		if strings.TrimSpace(f) == "" {
			return &errors.ConfigError{
				Field:   "file",
				Message: "path must not be empty",
				Hint:    `use "-" to read from stdin`,
			}
		}
	}

	if c.Jobs < 1 || c.Jobs > MaxJobs {
		return &errors.ConfigError{
			Field:   "jobs",
			Value:   c.Jobs,
			Message: fmt.Sprintf("out of range 1-%d", MaxJobs),
			Hint:    fmt.Sprintf("omit --jobs to use the default of %d", DefaultJobs),
		}
	}

	if strings.TrimSpace(c.QuitCommand) == "" {
		return &errors.ConfigError{
			Field:   "quit-command",
			Message: "must not be empty",
			Hint:    fmt.Sprintf("the default is %q", DefaultQuitCommand),
		}
	}

	return nil
}
