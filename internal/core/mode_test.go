package core

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brackets/internal/errors"
)

type modeFunc func(ctx context.Context) error

func (f modeFunc) Run(ctx context.Context) error { return f(ctx) }

func TestSequence_RunsAll(t *testing.T) {
	var ran []int
	boom := errors.New("boom")

	seq := Sequence{
		modeFunc(func(context.Context) error { ran = append(ran, 1); return boom }),
		modeFunc(func(context.Context) error { ran = append(ran, 2); return nil }),
	}

	err := seq.Run(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []int{1, 2}, ran, "a failing mode must not stop the next one")
}

func TestSequence_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	var ran int

	seq := Sequence{
		modeFunc(func(context.Context) error { ran++; cancel(); return nil }),
		modeFunc(func(context.Context) error { ran++; return nil }),
	}

	err := seq.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, ran)
}

// TestSequence_SelfTestThenPrompt runs the default pairing end to end.
func TestSequence_SelfTestThenPrompt(t *testing.T) {
	sess, out, m := newSession(nil)
	sess.Stdin = strings.NewReader("([])\nquit\n")

	seq := Sequence{
		&SelfTestMode{Session: sess},
		&InteractiveMode{Session: sess, QuitCommand: "quit"},
	}

	require.NoError(t, seq.Run(context.Background()))
	assert.Contains(t, out.String(), "Test 12: '({[}])' → false (expected: false) ✓ PASS")
	assert.Contains(t, out.String(), "'([])' is valid")
	assert.EqualValues(t, len(SelfTestCases)+1, m.Checks())
}
