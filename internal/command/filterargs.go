// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"regexp"
	"strings"
)

// attrSpecRegex parses an --attr expression into negation, key and value
// components. The value is optional; a leading ~ marks it as a pattern.
// Examples: "id=1" (literal), "id=~^link" (pattern), "id" (present),
// "!id" (absent).
var attrSpecRegex = regexp.MustCompile(`^(!)?([^=]+)(?:=(.*))?$`)

// buildNameFilter turns the --name flag into a strainer name filter. A
// comma-separated list becomes a disjunction; each entry may be a literal or
// a ~pattern.
func buildNameFilter(spec string) (any, error) {
	if spec == "" {
		return nil, nil
	}

	parts := strings.Split(spec, ",")
	values := make([]any, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		value, err := scalarFilter(part)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}

	switch len(values) {
	case 0:
		return nil, nil
	case 1:
		return values[0], nil
	}
	return values, nil
}

// buildStringFilter turns the --string flag into a strainer string filter.
func buildStringFilter(spec string) (any, error) {
	if spec == "" {
		return nil, nil
	}
	return scalarFilter(spec)
}

// buildAttrFilters turns repeated --attr expressions into the per-attribute
// filter map. Repeating a key appends to that attribute's disjunction.
func buildAttrFilters(specs []string) (map[string]any, error) {
	if len(specs) == 0 {
		return nil, nil
	}

	filters := make(map[string]any)
	for _, spec := range specs {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}

		parts := attrSpecRegex.FindStringSubmatch(spec)
		if parts == nil || strings.TrimSpace(parts[2]) == "" {
			return nil, fmt.Errorf("invalid attribute filter: %s", spec)
		}

		// parts[1] is the optional negation
		// parts[2] is the attribute name
		// parts[3] is the optional value
		negate := parts[1] == "!"
		key := strings.TrimSpace(parts[2])
		hasValue := strings.Contains(spec, "=")

		var value any
		switch {
		case negate && hasValue:
			return nil, fmt.Errorf("invalid attribute filter: %s (a negated attribute takes no value)", spec)
		case negate:
			// The attribute must be absent.
			value = false
		case !hasValue:
			// The attribute must be present, any value.
			value = true
		default:
			var err error
			if value, err = scalarFilter(parts[3]); err != nil {
				return nil, err
			}
		}

		// A repeated key grows that attribute's rule list.
		if existing, ok := filters[key]; ok {
			if list, ok := existing.([]any); ok {
				filters[key] = append(list, value)
			} else {
				filters[key] = []any{existing, value}
			}
			continue
		}
		filters[key] = value
	}

	return filters, nil
}

// scalarFilter converts one expression value: a leading ~ compiles to a
// pattern, anything else is a literal.
func scalarFilter(expr string) (any, error) {
	if strings.HasPrefix(expr, "~") {
		pattern, err := regexp.Compile(expr[1:])
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", expr[1:], err)
		}
		return pattern, nil
	}
	return expr, nil
}
