// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package strainer

import (
	"embed"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// ruleYAML describes one assertion in a YAML test case.
type ruleYAML struct {
	Literal *string `yaml:"literal"`
	Pattern *string `yaml:"pattern"`
	Present *bool   `yaml:"present"`
}

// rule builds the described MatchRule.
func (r ruleYAML) rule(t *testing.T, kind ruleKind) MatchRule {
	t.Helper()

	spec := ruleSpec{literal: r.Literal, present: r.Present}
	if r.Pattern != nil {
		spec.pattern = regexp.MustCompile(*r.Pattern)
	}

	rule, err := newMatchRule(kind, spec)
	require.NoError(t, err)
	return rule
}

// testMatchesStringCase is a single case for TestMatchesString.
type testMatchesStringCase struct {
	Name  string   `yaml:"name"`
	Rule  ruleYAML `yaml:"rule"`
	Value *string  `yaml:"value"`
	Want  bool     `yaml:"want"`
}

func loadMatchesStringCases(t *testing.T) []testMatchesStringCase {
	t.Helper()

	raw, err := testDataFS.ReadFile("testdata/matchrule.yaml")
	require.NoError(t, err)

	var doc struct {
		Cases []testMatchesStringCase `yaml:"matchesString"`
	}
	require.NoError(t, yaml.Unmarshal(raw, &doc))
	require.NotEmpty(t, doc.Cases)
	return doc.Cases
}

func TestMatchesString(t *testing.T) {
	// The primitive is shared by all three rule kinds, so exercising one
	// kind covers them all.
	for _, tt := range loadMatchesStringCases(t) {
		t.Run(tt.Name, func(t *testing.T) {
			rule := tt.Rule.rule(t, attributeValueRule)

			value, present := "", false
			if tt.Value != nil {
				value, present = *tt.Value, true
			}

			assert.Equal(t, tt.Want, rule.matchesString(value, present))
		})
	}
}

func TestMatchesStringPredicate(t *testing.T) {
	upper, err := newMatchRule(attributeValueRule, ruleSpec{
		strFn: func(s string) bool { return strings.ToUpper(s) == s },
	})
	require.NoError(t, err)

	assert.True(t, upper.matchesString("UPPERCASE", true))
	assert.False(t, upper.matchesString("lowercase", true))

	// A predicate is never invoked for an absent value.
	assert.False(t, upper.matchesString("", false))
}

func TestNewMatchRuleInvariant(t *testing.T) {
	literal := "a"
	pattern := regexp.MustCompile("a")
	present := true

	tests := []struct {
		name    string
		kind    ruleKind
		spec    ruleSpec
		wantErr bool
	}{
		{
			name:    "no assertion",
			kind:    attributeValueRule,
			spec:    ruleSpec{},
			wantErr: true,
		},
		{
			name:    "two assertions",
			kind:    attributeValueRule,
			spec:    ruleSpec{literal: &literal, pattern: pattern},
			wantErr: true,
		},
		{
			name:    "all assertions",
			kind:    tagNameRule,
			spec:    ruleSpec{literal: &literal, pattern: pattern, present: &present, tagFn: func(Tag) bool { return true }},
			wantErr: true,
		},
		{
			name:    "tag predicate on attribute rule",
			kind:    attributeValueRule,
			spec:    ruleSpec{tagFn: func(Tag) bool { return true }},
			wantErr: true,
		},
		{
			name:    "string predicate on name rule",
			kind:    tagNameRule,
			spec:    ruleSpec{strFn: func(string) bool { return true }},
			wantErr: true,
		},
		{
			name: "single literal",
			kind: stringValueRule,
			spec: ruleSpec{literal: &literal},
		},
		{
			name: "single presence",
			kind: attributeValueRule,
			spec: ruleSpec{present: &present},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newMatchRule(tt.kind, tt.spec)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRule)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTagNameRuleMatchesTag(t *testing.T) {
	tag := newTestTag("a", "", nil, "")
	prefixed := newTestTag("a", "ns", nil, "")

	literal := func(s string) MatchRule {
		rule, err := newMatchRule(tagNameRule, ruleSpec{literal: &s})
		require.NoError(t, err)
		return rule
	}

	// The base assertion runs against the local name and against the
	// prefix-qualified form.
	ruleA := literal("a")
	ruleNSA := literal("ns:a")
	ruleNS2A := literal("ns2:a")
	assert.True(t, ruleA.matchesTagName(tag))
	assert.True(t, ruleA.matchesTagName(prefixed))
	assert.True(t, ruleNSA.matchesTagName(prefixed))
	assert.False(t, ruleNSA.matchesTagName(tag))
	assert.False(t, ruleNS2A.matchesTagName(prefixed))

	// A tag predicate sees the tag view, not the name string.
	hasID, err := newMatchRule(tagNameRule, ruleSpec{tagFn: func(t Tag) bool {
		_, ok := t.Attr("id")
		return ok
	}})
	require.NoError(t, err)

	withID := newTestTag("a", "", map[string][]string{"id": {"x"}}, "")
	assert.True(t, hasID.matchesTagName(withID))
	assert.False(t, hasID.matchesTagName(tag))

	// A pattern base assertion is also tried against the local name.
	startsA, err := newMatchRule(tagNameRule, ruleSpec{pattern: regexp.MustCompile("^a")})
	require.NoError(t, err)
	assert.True(t, startsA.matchesTagName(withID))
	assert.False(t, startsA.matchesTagName(newTestTag("b", "", nil, "")))
}
