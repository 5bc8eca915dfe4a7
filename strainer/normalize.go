// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package strainer

import (
	"fmt"
	"reflect"
	"regexp"
)

// nestedListWarning is emitted when a slice filter value contains another
// slice. The inner slice is skipped, never recursed into, because a
// self-referential value would otherwise recurse forever.
const nestedListWarning = "Ignoring nested list [[...]] to avoid the possibility of infinite recursion."

// makeMatchRules coerces one user-supplied filter value into zero or more
// rules of the requested kind. The dispatch order mirrors the flexible forms
// listed in the package documentation; anything that matches no earlier case
// is converted with fmt.Sprint and matched as a literal.
func makeMatchRules(value any, kind ruleKind) ([]MatchRule, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil

	case string:
		return singleRule(kind, ruleSpec{literal: &v})

	case []byte:
		// Byte strings are carried as UTF-8 text from here on.
		s := string(v)
		return singleRule(kind, ruleSpec{literal: &s})

	case bool:
		return singleRule(kind, ruleSpec{present: &v})

	case *regexp.Regexp:
		return singleRule(kind, ruleSpec{pattern: v})

	case TagPredicate:
		return singleRule(kind, ruleSpec{tagFn: v})

	case func(Tag) bool:
		return singleRule(kind, ruleSpec{tagFn: v})

	case StringPredicate:
		return singleRule(kind, ruleSpec{strFn: v})

	case func(string) bool:
		return singleRule(kind, ruleSpec{strFn: v})
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Func:
		// Any other function shape cannot be applied to a candidate, so
		// it cannot become a rule of any kind.
		return nil, fmt.Errorf("%w: unsupported predicate signature %T", ErrInvalidRule, value)

	case reflect.Slice, reflect.Array:
		rules := make([]MatchRule, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			elem := rv.Index(i).Interface()
			if isNestedIterable(elem) {
				warn(WarnBadFilter, nestedListWarning)
				continue
			}
			sub, err := makeMatchRules(elem, kind)
			if err != nil {
				return nil, err
			}
			rules = append(rules, sub...)
		}
		return rules, nil
	}

	s := fmt.Sprint(value)
	return singleRule(kind, ruleSpec{literal: &s})
}

// singleRule wraps newMatchRule for the common one-value case.
func singleRule(kind ruleKind, spec ruleSpec) ([]MatchRule, error) {
	rule, err := newMatchRule(kind, spec)
	if err != nil {
		return nil, err
	}
	return []MatchRule{rule}, nil
}

// isNestedIterable reports whether a slice element is itself a slice or
// array, byte strings excepted since they normalize to text.
func isNestedIterable(value any) bool {
	if _, ok := value.([]byte); ok {
		return false
	}
	switch reflect.ValueOf(value).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	}
	return false
}
