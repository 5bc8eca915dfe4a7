// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command assembles the tagsift CLI.
//
// Two commands are provided:
//
//   - find: parse documents and print the elements and strings that match
//     the constructed filter.
//   - scan: tokenize documents and report which start tags the filter would
//     admit at parse time, without building a tree.
//
// Filters are built from flags (--name, --attr, --string), from a JSON spec
// file (--spec), or both. --name and --string replace the spec's name and
// string filters; --attr filters are added to the spec's attribute filters,
// and an attribute named in both gets the rules of both. Flag values may also come from the environment (TAGSIFT_*) or from
// the user config file.
//
// Attribute filter expressions:
//
//   - "id=1" : attribute id must equal "1"
//   - "id=~^link" : attribute id must match the pattern
//   - "id" : attribute id must be present
//   - "!id" : attribute id must be absent
package command
