package core

import (
	"brackets/config"
	"brackets/internal/session"
	"brackets/util"
)

// Build constructs the Mode selected by cfg.  With no mode flag and no
// inputs it returns the self-test followed by the interactive prompt.
func Build(cfg *config.Config, sess *session.Session) Mode {
	switch {
	case cfg.SelfTest:
		return buildSelfTest(sess)
	case cfg.Interactive:
		return buildInteractive(cfg, sess)
	case cfg.CheckRequested():
		return buildCheck(cfg, sess)
	default:
		return Sequence{buildSelfTest(sess), buildInteractive(cfg, sess)}
	}
}

// ── mode builders ────────────────────────────────────────────────────

func buildSelfTest(sess *session.Session) Mode {
	return &SelfTestMode{Session: sess, Cases: SelfTestCases}
}

func buildInteractive(cfg *config.Config, sess *session.Session) Mode {
	return &InteractiveMode{
		Session:      sess,
		QuitCommand:  cfg.QuitCommand,
		UseTerminal:  !cfg.NoTerminal && util.IsTerminal(sess.Stdin),
		MaxLineBytes: config.MaxLineBytes,
	}
}

func buildCheck(cfg *config.Config, sess *session.Session) Mode {
	return &CheckMode{
		Session:      sess,
		Inputs:       cfg.Inputs,
		Files:        cfg.Files,
		Jobs:         cfg.Jobs,
		Quiet:        cfg.Quiet,
		MaxLineBytes: config.MaxLineBytes,
	}
}
