package util

import (
	"bytes"
	"io"
	"os"

	"golang.org/x/term"

	"brackets/internal/errors"
)

// ErrInterrupted is returned by Terminal.ReadLine when the user presses
// Ctrl-C.  In raw mode the keypress arrives as a byte instead of SIGINT.
var ErrInterrupted = errors.New("interrupted")

const keyCtrlC = 3

// IsTerminal reports whether r is an *os.File attached to a terminal.
func IsTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Terminal is a LineReader with line editing and history, backed by
// golang.org/x/term.  The terminal stays in raw mode until Close.
type Terminal struct {
	t    *term.Terminal
	fd   int
	prev *term.State
}

// OpenTerminal switches into raw mode and returns a Terminal that
// prints prompt before every line.  Output written through the Terminal
// gets the "\r\n" line endings raw mode needs.
func OpenTerminal(in *os.File, out io.Writer, prompt string) (*Terminal, error) {
	fd := int(in.Fd())
	prev, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	rw := struct {
		io.Reader
		io.Writer
	}{interruptReader{in}, out}

	return &Terminal{
		t:    term.NewTerminal(rw, prompt),
		fd:   fd,
		prev: prev,
	}, nil
}

// ReadLine reads one edited line.  Ctrl-D on an empty line yields
// io.EOF and Ctrl-C yields ErrInterrupted.
func (t *Terminal) ReadLine() (string, error) { return t.t.ReadLine() }

// Write prints p above the prompt.
func (t *Terminal) Write(p []byte) (int, error) { return t.t.Write(p) }

// Close restores the terminal state saved by OpenTerminal.
func (t *Terminal) Close() error { return term.Restore(t.fd, t.prev) }

// interruptReader turns a raw-mode Ctrl-C into ErrInterrupted.
type interruptReader struct{ r io.Reader }

func (ir interruptReader) Read(p []byte) (int, error) {
	n, err := ir.r.Read(p)
	if i := bytes.IndexByte(p[:n], keyCtrlC); i >= 0 {
		return i, ErrInterrupted
	}
	return n, err
}
