// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package strainer

import "github.com/tagsift/tagsift/internal/log"

// WarningKind classifies the diagnostics a Strainer can raise while filters
// are normalized. Warnings never surface as errors and never alter the
// constructed rule set beyond skipping the offending value.
type WarningKind int

const (
	// WarnDeprecation flags use of a legacy constructor surface.
	WarnDeprecation WarningKind = iota

	// WarnBadFilter flags a filter value that was skipped because it
	// cannot be turned into a rule safely.
	WarnBadFilter
)

// WarnFunc receives strainer diagnostics.
type WarnFunc func(kind WarningKind, msg string)

// warnSink is the collaborator-supplied warnings channel. The default sink
// routes through the shared logger, which writes to stderr.
var warnSink WarnFunc = func(kind WarningKind, msg string) {
	log.Warnf("%s", msg)
}

// SetWarnSink replaces the warnings channel. Passing nil restores the
// default stderr-backed sink.
func SetWarnSink(fn WarnFunc) {
	if fn == nil {
		fn = func(kind WarningKind, msg string) {
			log.Warnf("%s", msg)
		}
	}
	warnSink = fn
}

func warn(kind WarningKind, msg string) {
	warnSink(kind, msg)
}
