// Package core is the orchestration layer.  It turns a Config into a
// runnable Mode: the self-test table, the interactive prompt, a batch
// check of supplied inputs, or a sequence of these.
//
// Architecture layers (bottom → top):
//
//	bracket  →  session  →  core  →  cmd (CLI)
//
// Build in this package is the single dispatch point from flags to
// behaviour.
package core

import (
	"context"

	"brackets/internal/errors"
)

// Mode represents a complete operational mode of brackets.  Each mode
// owns its I/O from the first line printed to the last.
type Mode interface {
	Run(ctx context.Context) error
}

// Sequence runs modes in order.  A failing mode does not stop the ones
// after it; all errors are joined.  Cancellation stops the sequence.
type Sequence []Mode

// Run implements Mode.
func (s Sequence) Run(ctx context.Context) error {
	var errs []error
	for _, m := range s {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := m.Run(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
