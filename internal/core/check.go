package core

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"brackets/internal/errors"
	"brackets/internal/session"
	"brackets/util"
)

// CheckMode validates every input given on the command line and every
// line of the given files, printing one verdict per input in order.
type CheckMode struct {
	Session      *session.Session
	Inputs       []string
	Files        []string // "-" reads Session.Stdin
	Jobs         int
	Quiet        bool
	MaxLineBytes int

	// Open defaults to os.Open when nil.
	Open func(name string) (io.ReadCloser, error)
}

func (m *CheckMode) open(name string) (io.ReadCloser, error) {
	if m.Open != nil {
		return m.Open(name)
	}
	return os.Open(name)
}

// Run implements Mode.  It returns an error wrapping
// errors.ErrUnbalanced if any input is not balanced.
func (m *CheckMode) Run(ctx context.Context) error {
	inputs := append([]string(nil), m.Inputs...)
	for _, name := range m.Files {
		lines, err := m.readFile(name)
		if err != nil {
			m.Session.Metrics.RecordError(err.Error())
			return err
		}
		m.Session.Logger.Verbose("read %d line(s) from %s", len(lines), name)
		inputs = append(inputs, lines...)
	}

	if len(inputs) == 0 {
		m.Session.Logger.Verbose("nothing to check")
		return nil
	}

	results, err := CheckAll(ctx, inputs, m.Jobs, m.Session.Check)
	if err != nil {
		return err
	}

	failed := 0
	for i, ok := range results {
		if !ok {
			failed++
		}
		if !m.Quiet {
			fmt.Fprintf(m.Session.Stdout, "'%s' is %s\n", inputs[i], session.Verdict(ok))
		}
	}

	m.Session.Logger.Verbose("checked %d input(s), %d unbalanced", len(inputs), failed)
	if failed > 0 {
		return errors.Unbalanced(failed, len(inputs))
	}
	return nil
}

func (m *CheckMode) readFile(name string) ([]string, error) {
	var r io.Reader = m.Session.Stdin
	source := "stdin"
	if name != "-" {
		f, err := m.open(name)
		if err != nil {
			return nil, errors.WrapInput(name, 0, err)
		}
		defer f.Close()
		r, source = f, name
	}

	var lines []string
	n, err := util.ReadLines(r, m.MaxLineBytes, func(line string) error {
		lines = append(lines, line)
		return nil
	})
	if err != nil {
		return nil, errors.WrapInput(source, n, err)
	}
	return lines, nil
}

// CheckAll runs check over inputs with at most jobs calls in flight and
// returns the verdicts in input order.  It stops early only when ctx is
// cancelled.
func CheckAll(ctx context.Context, inputs []string, jobs int, check func(string) bool) ([]bool, error) {
	if jobs < 1 {
		jobs = 1
	}
	results := make([]bool, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, in := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = check(in)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
