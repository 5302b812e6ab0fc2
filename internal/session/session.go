// Package session binds the I/O endpoints, logger and metrics of one
// brackets run.
//
// Modes read lines from the session's Stdin and print verdicts to its
// Stdout, so tests drive them with plain buffers instead of a terminal.
package session

import (
	"io"

	"brackets/bracket"
	"brackets/internal/metrics"
	"brackets/util"
)

// Session encapsulates the runtime context shared by every mode.
type Session struct {
	Stdin   io.Reader
	Stdout  io.Writer
	Logger  *util.Logger
	Metrics *metrics.Collector // may be nil
}

// New creates a Session bound to the given I/O pair.
func New(stdin io.Reader, stdout io.Writer, logger *util.Logger, m *metrics.Collector) *Session {
	return &Session{
		Stdin:   stdin,
		Stdout:  stdout,
		Logger:  logger,
		Metrics: m,
	}
}

// Check validates input and records the verdict.  It is safe for concurrent
// use.
func (s *Session) Check(input string) bool {
	ok := bracket.Valid(input)
	s.Metrics.RecordCheck(len(input), ok)
	s.Logger.Debug("check %q → %v", input, ok)
	return ok
}

// Verdict is the word printed for a check result.
func Verdict(ok bool) string {
	if ok {
		return "valid"
	}
	return "invalid"
}
