// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package strainer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedNode is returned by Search when the node is neither a Tag
// nor a Text view.
var ErrUnsupportedNode = errors.New("unsupported node kind")

// textKeyDeprecation is raised once per constructor call that relies on the
// legacy 'text' filter key.
const textKeyDeprecation = "The 'text' filter key is deprecated. Use the string filter instead."

// Strainer aggregates rules on a tag's name, on its attribute values, and on
// its string content. Once constructed it is immutable.
type Strainer struct {
	nameRules   []MatchRule
	attrRules   map[string][]MatchRule
	stringRules []MatchRule
}

// New constructs a Strainer.
//
// name and str filter the tag name and the string content and accept any of
// the flexible filter forms. attrs is either a map of attribute name to
// filter value, or a bare filter value, which is shorthand for filtering the
// "class" attribute. extra supplies additional per-attribute filters by
// name.
//
// Two keys of extra are special. "class_" renames to "class", so that
// callers porting filters from languages where class is a reserved word keep
// their behavior; an attrs-map key "class_" is preserved verbatim, which is
// the only way to filter an attribute literally named "class_". "text" is
// the deprecated spelling of the str filter and is honored, with a
// deprecation warning, only when str is nil.
//
// When the same effective attribute is filtered through both attrs and
// extra, the rule lists concatenate and each list contributes to the same
// per-attribute disjunction.
//
// A nil filter value for an attribute means the attribute must be absent.
func New(name, attrs, str any, extra map[string]any) (*Strainer, error) {
	if str == nil {
		if v, ok := extra["text"]; ok {
			str = v
			rest := make(map[string]any, len(extra)-1)
			for k, val := range extra {
				if k != "text" {
					rest[k] = val
				}
			}
			extra = rest
			warn(WarnDeprecation, textKeyDeprecation)
		}
	}

	s := &Strainer{attrRules: make(map[string][]MatchRule)}

	var err error
	if s.nameRules, err = makeMatchRules(name, tagNameRule); err != nil {
		return nil, err
	}

	attrMap := attrsAsMap(attrs)

	// attrs first, then extra, so overlapping sources contribute their
	// rules in a stable order.
	for _, src := range []struct {
		filters  map[string]any
		keywords bool
	}{
		{attrMap, false},
		{extra, true},
	} {
		for attr, value := range src.filters {
			// "class_" is only an alias when it arrives as a keyword.
			if src.keywords && attr == "class_" {
				attr = "class"
			}
			// A nil filter means the attribute must be absent.
			if value == nil {
				value = false
			}
			rules, err := makeMatchRules(value, attributeValueRule)
			if err != nil {
				return nil, err
			}
			s.attrRules[attr] = append(s.attrRules[attr], rules...)
		}
	}

	if s.stringRules, err = makeMatchRules(str, stringValueRule); err != nil {
		return nil, err
	}

	return s, nil
}

// attrsAsMap normalizes the attrs argument. A non-map value is shorthand
// for a filter on the "class" attribute.
func attrsAsMap(attrs any) map[string]any {
	switch m := attrs.(type) {
	case nil:
		return nil
	case map[string]any:
		return m
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	return map[string]any{"class": attrs}
}

// MatchesTag reports whether a tag satisfies every clause of the strainer:
// at least one name rule, at least one attribute rule per filtered
// attribute, and at least one string rule when string rules exist.
func (s *Strainer) MatchesTag(t Tag) bool {
	// String rules alone cannot match a tag.
	if len(s.nameRules) == 0 && len(s.attrRules) == 0 {
		return false
	}

	if len(s.nameRules) > 0 {
		matched := false
		for i := range s.nameRules {
			if s.nameRules[i].matchesTagName(t) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	// Every filtered attribute must have at least one matching rule.
	for attr, rules := range s.attrRules {
		values, ok := t.Attr(attr)
		if !matchAttrValue(rules, values, ok) {
			return false
		}
	}

	if len(s.stringRules) > 0 {
		text, ok := t.Text()
		for i := range s.stringRules {
			if s.stringRules[i].matchesString(text, ok) {
				return true
			}
		}
		return false
	}

	return true
}

// matchAttrValue applies one attribute's rule list to that attribute's
// values. Multi-valued attributes are tried element-wise first; when no
// element matches, the list is retried against the values joined with a
// single space, so a filter written as one string can still match the
// sequence in document order.
func matchAttrValue(rules []MatchRule, values []string, present bool) bool {
	if !present {
		for i := range rules {
			if rules[i].matchesString("", false) {
				return true
			}
		}
		return false
	}

	// An attribute that is present with no value is a single empty string.
	if len(values) == 0 {
		values = []string{""}
	}

	for i := range rules {
		for _, v := range values {
			if rules[i].matchesString(v, true) {
				return true
			}
		}
	}

	if len(values) > 1 {
		joined := strings.Join(values, " ")
		for i := range rules {
			if rules[i].matchesString(joined, true) {
				return true
			}
		}
	}

	return false
}

// AllowTagCreation decides, before a tag object exists, whether a tag with
// the given prefix, name and attributes could possibly match. It is
// conservative: a prospective tag is admitted unless some rule can already
// be decided negative from the name and attributes alone. Rules carrying a
// tag predicate cannot reject here, and string rules are ignored because the
// string content is not yet known.
func (s *Strainer) AllowTagCreation(prefix, name string, attrs map[string][]string) bool {
	if len(s.nameRules) > 0 {
		matched := false
		for i := range s.nameRules {
			r := &s.nameRules[i]
			if r.tagFn != nil {
				// The predicate needs a tag view; defer to MatchesTag.
				matched = true
				break
			}
			if r.matchesString(name, true) || (prefix != "" && r.matchesString(prefix+":"+name, true)) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	for attr, rules := range s.attrRules {
		values, ok := attrs[attr]
		if !matchAttrValue(rules, values, ok) {
			return false
		}
	}

	return true
}

// Search offers a node to the strainer. It returns the node itself when it
// matches and nil when it does not; only a node that is neither a tag nor a
// text view is an error. A text node can match only a strainer with no name
// and no attribute rules.
func (s *Strainer) Search(node any) (any, error) {
	switch n := node.(type) {
	case Tag:
		if s.MatchesTag(n) {
			return node, nil
		}
		return nil, nil

	case Text:
		if len(s.nameRules) == 0 && len(s.attrRules) == 0 {
			text := n.Text()
			for i := range s.stringRules {
				if s.stringRules[i].matchesString(text, true) {
					return node, nil
				}
			}
		}
		return nil, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedNode, node)
}

// String returns a compact description of the strainer for log output.
func (s *Strainer) String() string {
	return fmt.Sprintf("strainer(name rules=%d, attribute rules=%d, string rules=%d)",
		len(s.nameRules), len(s.attrRules), len(s.stringRules))
}
