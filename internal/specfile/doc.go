// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package specfile loads declarative filter specs from JSON files. A spec
// carries the three constructor arguments of a strainer:
//
//	{
//	  "name": "a",
//	  "attrs": {"class": ["sister", {"regex": "^bro"}], "data-x": null},
//	  "string": {"regex": "story"}
//	}
//
// Scalars, booleans, nulls and arrays map to the strainer's flexible filter
// forms. An object of the shape {"regex": "..."} compiles to a pattern,
// since JSON has no regular expression literal.
package specfile
