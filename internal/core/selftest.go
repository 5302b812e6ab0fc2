package core

import (
	"context"
	"fmt"
	"strings"

	"brackets/internal/errors"
	"brackets/internal/session"
)

// Case is one row of the self-test table.
type Case struct {
	Input string
	Want  bool
}

// SelfTestCases is the built-in table run by SelfTestMode.
var SelfTestCases = []Case{
	{"()", true},
	{"()[]{}", true},
	{"(]", false},
	{"([)]", false},
	{"{[]}", true},
	{"", true},
	{"(", false},
	{")", false},
	{"(((", false},
	{")))", false},
	{"({[]})", true},
	{"({[}])", false},
}

var rule = strings.Repeat("=", 40)

// SelfTestMode runs every case through the validator and prints one
// PASS/FAIL line per case.
type SelfTestMode struct {
	Session *session.Session
	Cases   []Case // defaults to SelfTestCases when nil
}

// Run prints the report and returns an error wrapping
// errors.ErrSelfTestFailed if any case disagrees with its expectation.
func (m *SelfTestMode) Run(ctx context.Context) error {
	cases := m.Cases
	if cases == nil {
		cases = SelfTestCases
	}
	out := m.Session.Stdout

	fmt.Fprintln(out, "Testing valid parentheses function:")
	fmt.Fprintln(out, rule)

	failed := 0
	for i, c := range cases {
		if err := ctx.Err(); err != nil {
			return err
		}
		got := m.Session.Check(c.Input)
		pass := got == c.Want
		m.Session.Metrics.RecordCase(pass)

		status := "✓ PASS"
		if !pass {
			status = "✗ FAIL"
			failed++
		}
		fmt.Fprintf(out, "Test %d: '%s' → %v (expected: %v) %s\n",
			i+1, c.Input, got, c.Want, status)
	}

	fmt.Fprintln(out, rule)

	if failed > 0 {
		return fmt.Errorf("%d of %d case(s): %w", failed, len(cases), errors.ErrSelfTestFailed)
	}
	m.Session.Logger.Verbose("self-test: %d case(s) passed", len(cases))
	return nil
}
