package errors

import (
	"fmt"
	"io"
	"os"
	"testing"
)

func TestInputError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  InputError
		want string
	}{
		{
			name: "with line",
			err:  InputError{Source: "cases.txt", Line: 12, Err: io.ErrUnexpectedEOF},
			want: "read cases.txt after line 12: unexpected EOF",
		},
		{
			name: "no line",
			err:  InputError{Source: "-", Err: fmt.Errorf("bad descriptor")},
			want: "read -: bad descriptor",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInputError_Unwrap(t *testing.T) {
	err := WrapInput("missing.txt", 0, os.ErrNotExist)
	if !Is(err, os.ErrNotExist) {
		t.Error("should unwrap to os.ErrNotExist")
	}

	var ie *InputError
	if !As(fmt.Errorf("check: %w", err), &ie) {
		t.Fatal("As should find *InputError through wrapping")
	}
	if ie.Source != "missing.txt" {
		t.Errorf("Source = %q", ie.Source)
	}
}

func TestConfigError_Format(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{
			name: "with value and hint",
			err: ConfigError{
				Field:   "jobs",
				Value:   0,
				Message: "must be at least 1",
				Hint:    "omit --jobs to use one worker per CPU",
			},
			want: "config: --jobs=0: must be at least 1\n  hint: omit --jobs to use one worker per CPU",
		},
		{
			name: "missing value no hint",
			err: ConfigError{
				Field:   "quit-command",
				Message: "must not be empty",
			},
			want: "config: --quit-command: must not be empty",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("got:\n%s\nwant:\n%s", got, tt.want)
			}
		})
	}
}

func TestUnbalanced(t *testing.T) {
	err := Unbalanced(2, 5)
	if !Is(err, ErrUnbalanced) {
		t.Error("should wrap ErrUnbalanced")
	}
	if got, want := err.Error(), "2 of 5 input(s): unbalanced input"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSentinels(t *testing.T) {
	// Verify sentinel errors are distinct.
	sentinels := []error{ErrUnbalanced, ErrSelfTestFailed, ErrQuit}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && Is(a, b) {
				t.Errorf("sentinel %d and %d should not match", i, j)
			}
		}
	}
}

func TestJoin(t *testing.T) {
	err := Join(ErrUnbalanced, ErrSelfTestFailed)
	if !Is(err, ErrUnbalanced) || !Is(err, ErrSelfTestFailed) {
		t.Errorf("joined error should match both sentinels: %v", err)
	}
	if Unwrap(New("x")) != nil {
		t.Error("plain error should not unwrap")
	}
}
