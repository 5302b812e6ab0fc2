// Package errors provides domain-specific error types for brackets.
//
// The validator itself never fails; these types describe what can go
// wrong around it: bad configuration, unreadable input, and the verdicts
// the CLI turns into a non-zero exit status.
package errors

import (
	"errors"
	"fmt"
)

// ── Sentinel errors ──────────────────────────────────────────────────

var (
	ErrUnbalanced     = errors.New("unbalanced input")
	ErrSelfTestFailed = errors.New("self-test failed")
	ErrQuit           = errors.New("quit requested")
)

// ── Structured error types ───────────────────────────────────────────

// InputError represents a failure reading input lines.
type InputError struct {
	Source string // file path, or "-" for stdin
	Line   int    // last line read successfully (0 if none)
	Err    error  // underlying error
}

func (e *InputError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("read %s after line %d: %v", e.Source, e.Line, e.Err)
	}
	return fmt.Sprintf("read %s: %v", e.Source, e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// ConfigError represents an invalid configuration value.
type ConfigError struct {
	Field   string      // config field name
	Value   interface{} // the invalid value (nil if missing)
	Message string      // human-readable explanation
	Hint    string      // suggestion for the user (optional)
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("config: --%s", e.Field)
	if e.Value != nil {
		msg += fmt.Sprintf("=%v", e.Value)
	}
	msg += ": " + e.Message
	if e.Hint != "" {
		msg += "\n  hint: " + e.Hint
	}
	return msg
}

// ── Constructors ─────────────────────────────────────────────────────

// WrapInput creates an InputError for source.
func WrapInput(source string, line int, err error) *InputError {
	return &InputError{Source: source, Line: line, Err: err}
}

// Unbalanced reports how many of total inputs failed validation.
func Unbalanced(failed, total int) error {
	return fmt.Errorf("%d of %d input(s): %w", failed, total, ErrUnbalanced)
}

// ── Re-exports for convenience ───────────────────────────────────────
//
// These allow callers to use brackets/internal/errors as a drop-in
// replacement for the standard library in common operations.

// As is [errors.As].
func As(err error, target interface{}) bool { return errors.As(err, target) }

// Is is [errors.Is].
func Is(err, target error) bool { return errors.Is(err, target) }

// New is [errors.New].
func New(text string) error { return errors.New(text) }

// Unwrap is [errors.Unwrap].
func Unwrap(err error) error { return errors.Unwrap(err) }

// Join is [errors.Join].
func Join(errs ...error) error { return errors.Join(errs...) }
