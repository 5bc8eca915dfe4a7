// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders matched markup and summary lines for the CLI.
// Matched nodes are serialized back to markup, one per line block, with
// optional terminal coloring. Counts are humanized in the summary so large
// documents read well.
package output
