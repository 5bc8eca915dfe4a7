// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package strainer

// Tag is the strainer's read-only view of an element node. It is supplied by
// the parser collaborator; the strainer never mutates it.
type Tag interface {
	// Name returns the tag's local name, without any namespace prefix.
	Name() string

	// Prefix returns the tag's namespace prefix, or "" when it has none.
	Prefix() string

	// Attr returns the named attribute's values in document order. A
	// single-valued attribute is returned as a one-element slice. ok is
	// false when the attribute is absent from the tag.
	Attr(name string) (values []string, ok bool)

	// Text returns the tag's associated string content. ok is false when
	// the tag has no single associated string.
	Text() (string, bool)
}

// Text is the strainer's read-only view of a string-bearing node.
type Text interface {
	Text() string
}
