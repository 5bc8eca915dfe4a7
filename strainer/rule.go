// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package strainer

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrInvalidRule is returned when a match rule would be constructed with
// zero assertions, with more than one, or with a predicate of the wrong
// shape for its kind. The Strainer cannot be built from such a rule.
var ErrInvalidRule = errors.New("invalid match rule")

// TagPredicate is a user-supplied test applied to a whole tag view. Only
// tag-name filters accept one.
type TagPredicate func(Tag) bool

// StringPredicate is a user-supplied test applied to a single candidate
// string, as used by attribute-value and string filters.
type StringPredicate func(string) bool

// ruleKind selects which flavor of MatchRule the normalizer produces. The
// three flavors share the string-match primitive but differ in the predicate
// type they carry.
type ruleKind int

const (
	tagNameRule ruleKind = iota
	attributeValueRule
	stringValueRule
)

func (k ruleKind) String() string {
	switch k {
	case tagNameRule:
		return "name"
	case attributeValueRule:
		return "attribute"
	case stringValueRule:
		return "string"
	}
	return "unknown"
}

// MatchRule holds exactly one positive assertion about a candidate value:
// literal equality, an unanchored pattern search, a user predicate, or a
// presence/absence test. Rules are owned by their enclosing Strainer.
type MatchRule struct {
	kind    ruleKind
	literal *string
	pattern *regexp.Regexp
	tagFn   TagPredicate
	strFn   StringPredicate
	present *bool
}

// ruleSpec carries the assertion used to build a MatchRule. Exactly one
// field must be set; newMatchRule enforces the invariant.
type ruleSpec struct {
	literal *string
	pattern *regexp.Regexp
	tagFn   TagPredicate
	strFn   StringPredicate
	present *bool
}

// newMatchRule validates a ruleSpec and returns the rule. The exactly-one
// invariant is checked here rather than by construction so that a malformed
// spec surfaces as ErrInvalidRule instead of a silently vacuous rule.
func newMatchRule(kind ruleKind, spec ruleSpec) (MatchRule, error) {
	set := 0
	if spec.literal != nil {
		set++
	}
	if spec.pattern != nil {
		set++
	}
	if spec.tagFn != nil {
		set++
	}
	if spec.strFn != nil {
		set++
	}
	if spec.present != nil {
		set++
	}

	switch {
	case set == 0:
		return MatchRule{}, fmt.Errorf("%w: one of literal, pattern, predicate or present must be provided", ErrInvalidRule)
	case set > 1:
		return MatchRule{}, fmt.Errorf("%w: at most one of literal, pattern, predicate and present may be provided", ErrInvalidRule)
	}

	// Predicates are typed per rule kind. Only tag-name rules take a
	// predicate over the tag view; the other kinds test plain strings.
	if spec.tagFn != nil && kind != tagNameRule {
		return MatchRule{}, fmt.Errorf("%w: tag predicates are only valid for %s rules, not %s rules", ErrInvalidRule, tagNameRule, kind)
	}
	if spec.strFn != nil && kind == tagNameRule {
		return MatchRule{}, fmt.Errorf("%w: %s rules take a tag predicate, not a string predicate", ErrInvalidRule, kind)
	}

	return MatchRule{
		kind:    kind,
		literal: spec.literal,
		pattern: spec.pattern,
		tagFn:   spec.tagFn,
		strFn:   spec.strFn,
		present: spec.present,
	}, nil
}

// matchesString applies the rule's assertion to a candidate value. present
// is false when the candidate is absent (a missing attribute, or a tag with
// no associated string).
func (r *MatchRule) matchesString(value string, present bool) bool {
	// Presence rules decide on presence alone; the value is irrelevant.
	if r.present != nil {
		if *r.present {
			return present
		}
		return !present
	}

	if r.literal != nil {
		return present && value == *r.literal
	}

	// Pattern match is an unanchored search anywhere in the candidate. An
	// absent candidate never matches a pattern.
	if r.pattern != nil {
		return present && r.pattern.MatchString(value)
	}

	// Predicates are never invoked on an absent value. Absence matching is
	// the job of a presence rule.
	if r.strFn != nil {
		return present && r.strFn(value)
	}

	// A tag predicate carries no string-level assertion; it is applied by
	// matchesTagName against the tag view itself.
	return true
}

// matchesTagName reports whether this tag-name rule accepts the tag. The
// base assertion is tried against the local name and, when the tag carries a
// namespace prefix, against the prefix-qualified form "prefix:name". A tag
// predicate then runs against the tag view, not the name string.
func (r *MatchRule) matchesTagName(t Tag) bool {
	ok := r.matchesString(t.Name(), true)
	if !ok && t.Prefix() != "" {
		ok = r.matchesString(t.Prefix()+":"+t.Name(), true)
	}
	if !ok {
		return false
	}

	if r.tagFn != nil {
		return r.tagFn(t)
	}
	return true
}

// String returns a compact description of the rule for log output.
func (r *MatchRule) String() string {
	switch {
	case r.literal != nil:
		return fmt.Sprintf("%s=%q", r.kind, *r.literal)
	case r.pattern != nil:
		return fmt.Sprintf("%s~/%s/", r.kind, r.pattern.String())
	case r.present != nil:
		return fmt.Sprintf("%s present=%t", r.kind, *r.present)
	default:
		return fmt.Sprintf("%s predicate", r.kind)
	}
}
