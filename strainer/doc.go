// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package strainer decides whether a markup element (a tag or a string node)
// satisfies a declaratively-constructed filter.
//
// A Strainer aggregates three rule lists: rules on the tag name, rules on
// individual attribute values, and rules on the tag's string content. Within
// a list the rules are a disjunction; across attribute names and across the
// three lists the clauses are a conjunction.
//
// Filter values are deliberately flexible. Anywhere a filter is accepted, any
// of the following forms may be supplied:
//
//   - string : the candidate must equal the value exactly
//   - []byte : as string, decoded as UTF-8
//   - *regexp.Regexp : the pattern must match somewhere in the candidate
//   - bool : true matches any present value, false matches only absent ones
//   - TagPredicate / StringPredicate : an arbitrary yes-or-no function
//   - a slice of any of the above : at least one element must match
//   - anything else : converted with fmt.Sprint and matched as a string
//
// Examples:
//
//   - New("a", nil, nil, nil) : matches every <a> tag
//   - New(nil, "main", nil, nil) : matches any tag with class "main"
//   - New("b", nil, nil, map[string]any{"id": "1"}) : <b id="1">
//   - New(nil, nil, regexp.MustCompile("story"), nil) : string content only
//
// A Strainer serves two consumers: search over a built tree (Search and
// MatchesTag) and parse-time admission (AllowTagCreation), where a
// prospective tag is vetted from its name and attributes alone before any
// children exist.
//
// A constructed Strainer is immutable and safe to share across concurrent
// readers without synchronization.
package strainer
