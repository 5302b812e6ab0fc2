package core

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"brackets/internal/errors"
	"brackets/internal/session"
	"brackets/util"
)

// InteractiveMode reads one line at a time, validates it and prints the
// verdict until the quit command, end of input, Ctrl-C or cancellation.
type InteractiveMode struct {
	Session      *session.Session
	QuitCommand  string // matched case-insensitively against the whole line
	UseTerminal  bool   // Session.Stdin is a TTY; use raw-mode line editing
	MaxLineBytes int
}

type lineResult struct {
	line string
	err  error
}

func (m *InteractiveMode) prompt() string {
	return fmt.Sprintf("Enter a string to test (or '%s' to exit): ", m.QuitCommand)
}

// open returns the line source and the writer verdicts go to, plus a
// function that undoes any terminal state change.
func (m *InteractiveMode) open() (util.LineReader, io.Writer, func(), error) {
	if f, ok := m.Session.Stdin.(*os.File); ok && m.UseTerminal {
		t, err := util.OpenTerminal(f, m.Session.Stdout, m.prompt())
		if err != nil {
			return nil, nil, nil, fmt.Errorf("terminal: %w", err)
		}
		restore := func() {
			if err := t.Close(); err != nil {
				m.Session.Logger.Warn("restore terminal: %v", err)
			}
		}
		return t, t, restore, nil
	}

	// The scanner releases its buffer at end of input; closing it here
	// could race with a read still pending after cancellation.
	sr := util.NewScanReader(m.Session.Stdin, m.MaxLineBytes)
	return sr, m.Session.Stdout, func() {}, nil
}

// Run implements Mode.  End of input and interrupts are a normal exit.
func (m *InteractiveMode) Run(ctx context.Context) error {
	lr, out, closeFn, err := m.open()
	if err != nil {
		return err
	}
	defer closeFn()

	m.Session.Logger.Verbose("interactive: terminal=%v", m.UseTerminal)
	fmt.Fprint(out, "\nInteractive testing:\n")

	// The reader goroutine reads exactly one line per request so the
	// prompt is always printed before the read it belongs to.
	req := make(chan struct{})
	res := make(chan lineResult, 1)
	defer close(req)
	go func() {
		for range req {
			line, err := lr.ReadLine()
			res <- lineResult{line, err}
			if err != nil {
				return
			}
		}
	}()

	lines := 0
	for {
		fmt.Fprint(out, "\n")
		if !m.UseTerminal {
			fmt.Fprint(out, m.prompt())
		}
		req <- struct{}{}

		select {
		case <-ctx.Done():
			fmt.Fprint(out, "\nExiting...\n")
			return nil
		case r := <-res:
			err := m.handle(out, r)
			switch {
			case err == nil:
				lines++
			case errors.Is(err, errors.ErrQuit):
				return nil
			case errors.Is(err, io.EOF), errors.Is(err, util.ErrInterrupted):
				fmt.Fprint(out, "\nExiting...\n")
				return nil
			default:
				m.Session.Metrics.RecordError(err.Error())
				return errors.WrapInput("stdin", lines, err)
			}
		}
	}
}

// handle processes one read result.  It returns errors.ErrQuit for the
// quit command and the read error, if any, unchanged.
func (m *InteractiveMode) handle(out io.Writer, r lineResult) error {
	if r.err != nil {
		return r.err
	}
	if strings.EqualFold(r.line, m.QuitCommand) {
		return errors.ErrQuit
	}
	ok := m.Session.Check(r.line)
	fmt.Fprintf(out, "'%s' is %s\n", r.line, session.Verdict(ok))
	return nil
}
