package config

// loader.go - configuration loading from environment variables.
//
// Precedence order (highest wins):
//   1. CLI flags  (handled by cmd/root.go)
//   2. Environment variables  (this file)
//   3. Defaults   (defaults.go)

import (
	"os"
	"strconv"
	"strings"
)

// ── Environment variable mapping ─────────────────────────────────────
//
// Every supported env var uses the BRACKETS_ prefix.  Boolean values
// accept "1", "true", "yes" (case-insensitive).

// LoadFromEnv overlays environment variables onto cfg.  Only non-empty
// env vars override the existing value.  This should be called BEFORE
// CLI flag parsing so that flags take precedence.
func LoadFromEnv(cfg *Config) {
	if v := envInt("BRACKETS_JOBS"); v > 0 {
		cfg.Jobs = v
	}
	if envBool("BRACKETS_QUIET") {
		cfg.Quiet = true
	}
	if v := os.Getenv("BRACKETS_QUIT_COMMAND"); v != "" {
		cfg.QuitCommand = v
	}
	if envBool("BRACKETS_NO_TERMINAL") {
		cfg.NoTerminal = true
	}

	// Output
	if envBool("BRACKETS_STATS") {
		cfg.Stats = true
	}
	if v := envInt("BRACKETS_VERBOSE"); v > 0 {
		cfg.Verbose = v
	}
}

// ── helpers ──────────────────────────────────────────────────────────

func envInt(key string) int {
	v := os.Getenv(key)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}

func envBool(key string) bool {
	v := strings.ToLower(os.Getenv(key))
	return v == "1" || v == "true" || v == "yes"
}
