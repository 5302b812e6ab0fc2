// Package metrics provides lightweight, lock-free counters for tracking
// runtime statistics of a brackets run.
//
// All methods are safe for concurrent use.  A nil *Collector is a
// valid no-op receiver, so callers never need to nil-check.
package metrics

import (
	"encoding/json"
	"sync"
	"sync/atomic"
	"time"
)

// Collector tracks runtime metrics for a brackets run.
// A nil Collector is safe to use — all methods become no-ops.
type Collector struct {
	checksTotal  atomic.Int64
	balanced     atomic.Int64
	unbalanced   atomic.Int64
	bytesScanned atomic.Int64
	casesPassed  atomic.Int64
	casesFailed  atomic.Int64
	errorsTotal  atomic.Int64

	mu           sync.RWMutex
	startTime    time.Time
	lastError    time.Time
	lastErrorMsg string
}

// New creates a metrics collector with the start time set to now.
func New() *Collector {
	return &Collector{startTime: time.Now()}
}

// ── Check metrics ────────────────────────────────────────────────────

// RecordCheck records one validation of an input of n bytes.
func (c *Collector) RecordCheck(n int, ok bool) {
	if c == nil {
		return
	}
	c.checksTotal.Add(1)
	c.bytesScanned.Add(int64(n))
	if ok {
		c.balanced.Add(1)
	} else {
		c.unbalanced.Add(1)
	}
}

// Checks returns the number of validations performed.
func (c *Collector) Checks() int64 {
	if c == nil {
		return 0
	}
	return c.checksTotal.Load()
}

// Balanced returns how many inputs were balanced.
func (c *Collector) Balanced() int64 {
	if c == nil {
		return 0
	}
	return c.balanced.Load()
}

// Unbalanced returns how many inputs were not balanced.
func (c *Collector) Unbalanced() int64 {
	if c == nil {
		return 0
	}
	return c.unbalanced.Load()
}

// BytesScanned returns the total input size seen by the validator.
func (c *Collector) BytesScanned() int64 {
	if c == nil {
		return 0
	}
	return c.bytesScanned.Load()
}

// ── Self-test metrics ────────────────────────────────────────────────

// RecordCase records the outcome of one self-test case.
func (c *Collector) RecordCase(pass bool) {
	if c == nil {
		return
	}
	if pass {
		c.casesPassed.Add(1)
	} else {
		c.casesFailed.Add(1)
	}
}

// CasesPassed returns the number of self-test cases that passed.
func (c *Collector) CasesPassed() int64 {
	if c == nil {
		return 0
	}
	return c.casesPassed.Load()
}

// CasesFailed returns the number of self-test cases that failed.
func (c *Collector) CasesFailed() int64 {
	if c == nil {
		return 0
	}
	return c.casesFailed.Load()
}

// ── Error metrics ────────────────────────────────────────────────────

// RecordError increments the error counter and stores the message.
func (c *Collector) RecordError(msg string) {
	if c == nil {
		return
	}
	c.errorsTotal.Add(1)
	c.mu.Lock()
	c.lastError = time.Now()
	c.lastErrorMsg = msg
	c.mu.Unlock()
}

// ErrorCount returns the total number of errors recorded.
func (c *Collector) ErrorCount() int64 {
	if c == nil {
		return 0
	}
	return c.errorsTotal.Load()
}

// ── Snapshot ─────────────────────────────────────────────────────────

// Snapshot is a point-in-time view of all metrics.
type Snapshot struct {
	Uptime           string `json:"uptime"`
	Checks           int64  `json:"checks"`
	Balanced         int64  `json:"balanced"`
	Unbalanced       int64  `json:"unbalanced"`
	BytesScanned     int64  `json:"bytes_scanned"`
	CasesPassed      int64  `json:"cases_passed"`
	CasesFailed      int64  `json:"cases_failed"`
	ErrorsTotal      int64  `json:"errors_total"`
	LastError        string `json:"last_error,omitempty"`
	LastErrorMessage string `json:"last_error_message,omitempty"`
}

// Snapshot returns a copy of all current metrics.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := Snapshot{
		Uptime:       time.Since(c.startTime).Truncate(time.Millisecond).String(),
		Checks:       c.checksTotal.Load(),
		Balanced:     c.balanced.Load(),
		Unbalanced:   c.unbalanced.Load(),
		BytesScanned: c.bytesScanned.Load(),
		CasesPassed:  c.casesPassed.Load(),
		CasesFailed:  c.casesFailed.Load(),
		ErrorsTotal:  c.errorsTotal.Load(),
	}
	if !c.lastError.IsZero() {
		s.LastError = c.lastError.Format(time.RFC3339)
		s.LastErrorMessage = c.lastErrorMsg
	}
	return s
}

// JSON returns the snapshot as an indented JSON string.
func (c *Collector) JSON() string {
	s := c.Snapshot()
	data, _ := json.MarshalIndent(s, "", "  ")
	return string(data)
}
