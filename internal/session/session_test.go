package session

import (
	"bytes"
	"strings"
	"testing"

	"brackets/internal/metrics"
	"brackets/util"
)

func TestSession_Check(t *testing.T) {
	m := metrics.New()
	sess := New(strings.NewReader(""), &bytes.Buffer{}, util.NewLogger(0), m)

	if !sess.Check("{[]}") {
		t.Error(`"{[]}" should be valid`)
	}
	if sess.Check("([)]") {
		t.Error(`"([)]" should be invalid`)
	}

	if m.Checks() != 2 || m.Balanced() != 1 || m.Unbalanced() != 1 {
		t.Errorf("metrics = %+v", m.Snapshot())
	}
	if m.BytesScanned() != 8 {
		t.Errorf("bytes scanned = %d, want 8", m.BytesScanned())
	}
}

func TestSession_CheckNilMetrics(t *testing.T) {
	sess := New(nil, nil, util.NewLogger(0), nil)
	if !sess.Check("") {
		t.Error("empty input should be valid")
	}
}

func TestSession_CheckDebugLog(t *testing.T) {
	var logs bytes.Buffer
	logger := util.NewLogger(3)
	logger.SetOutput(&logs)
	logger.SetTimestamps(false)

	New(nil, nil, logger, nil).Check("(]")

	if !strings.Contains(logs.String(), `[DBG] check "(]" → false`) {
		t.Errorf("unexpected debug output %q", logs.String())
	}
}

func TestVerdict(t *testing.T) {
	if Verdict(true) != "valid" || Verdict(false) != "invalid" {
		t.Errorf("Verdict(true) = %q, Verdict(false) = %q", Verdict(true), Verdict(false))
	}
}
