// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package domtree adapts golang.org/x/net/html parse trees to the strainer's
// node views and provides the two consumers of a strainer: search over a
// built tree (FindAll) and parse-time admission over a token stream (Scan).
//
// The adapter is a minimal collaborator shim. It splits a namespace prefix
// off the node name at the first colon, presents multi-valued attributes
// such as class as ordered string sequences, and exposes a tag's sole
// descendant string as its associated text.
package domtree
