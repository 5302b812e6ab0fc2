package config

// ── Default values ───────────────────────────────────────────────────
//
// All tuneable defaults live here so they are easy to audit and reuse
// across CLI flags and environment variable loading.

const (
	// DefaultQuitCommand ends the interactive loop (case-insensitive).
	DefaultQuitCommand = "quit"

	// DefaultJobs is the number of concurrent validations in check mode.
	DefaultJobs = 4

	// MaxJobs caps --jobs.
	MaxJobs = 256

	// MaxLineBytes is the longest input line accepted from a file or
	// from stdin.
	MaxLineBytes = 1 << 20
)
