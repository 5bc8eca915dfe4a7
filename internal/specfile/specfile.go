// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package specfile

import (
	"fmt"
	"os"
	"regexp"

	"github.com/tidwall/gjson"

	"github.com/tagsift/tagsift/internal/log"
	"github.com/tagsift/tagsift/strainer"
)

// Spec holds the filter values read from a spec file, in the forms the
// strainer constructor accepts.
type Spec struct {
	Name   any
	Attrs  any
	String any
}

// Strainer builds the strainer described by the spec.
func (s Spec) Strainer() (*strainer.Strainer, error) {
	return strainer.New(s.Name, s.Attrs, s.String, nil)
}

// Load reads a JSON filter spec from path.
func Load(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, err
	}
	return parse(data, path)
}

// parse validates and converts a spec document.
func parse(data []byte, source string) (Spec, error) {
	if !gjson.ValidBytes(data) {
		return Spec{}, fmt.Errorf("spec file %s is not valid JSON", source)
	}

	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return Spec{}, fmt.Errorf("spec file %s must be a JSON object", source)
	}

	spec := Spec{}

	name, err := filterValue(root.Get("name"))
	if err != nil {
		return Spec{}, fmt.Errorf("spec key name: %w", err)
	}
	spec.Name = name

	attrs, err := attrsValue(root.Get("attrs"))
	if err != nil {
		return Spec{}, fmt.Errorf("spec key attrs: %w", err)
	}
	spec.Attrs = attrs

	str, err := filterValue(root.Get("string"))
	if err != nil {
		return Spec{}, fmt.Errorf("spec key string: %w", err)
	}
	spec.String = str

	log.Debugf("spec loaded: source=%s", source)
	return spec, nil
}

// attrsValue converts the attrs key. An object maps attribute names to
// filter values; any other shape is passed through as a bare filter, which
// the strainer treats as a class filter.
func attrsValue(res gjson.Result) (any, error) {
	if !res.Exists() {
		return nil, nil
	}

	if res.IsObject() && !isRegexObject(res) {
		attrs := make(map[string]any)
		var convErr error
		res.ForEach(func(key, value gjson.Result) bool {
			v, err := filterValue(value)
			if err != nil {
				convErr = fmt.Errorf("attribute %s: %w", key.String(), err)
				return false
			}
			attrs[key.String()] = v
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return attrs, nil
	}

	return filterValue(res)
}

// filterValue converts one JSON value to a strainer filter value.
func filterValue(res gjson.Result) (any, error) {
	if !res.Exists() {
		return nil, nil
	}

	switch res.Type {
	case gjson.Null:
		// null means the attribute must be absent.
		return nil, nil
	case gjson.True:
		return true, nil
	case gjson.False:
		return false, nil
	case gjson.String:
		return res.Str, nil
	case gjson.Number:
		// Numbers are matched by their string form.
		return res.Value(), nil
	}

	if res.IsArray() {
		var values []any
		var convErr error
		res.ForEach(func(_, value gjson.Result) bool {
			v, err := filterValue(value)
			if err != nil {
				convErr = err
				return false
			}
			values = append(values, v)
			return true
		})
		if convErr != nil {
			return nil, convErr
		}
		return values, nil
	}

	if isRegexObject(res) {
		expr := res.Get("regex").String()
		pattern, err := regexp.Compile(expr)
		if err != nil {
			return nil, fmt.Errorf("bad regex %q: %w", expr, err)
		}
		return pattern, nil
	}

	return nil, fmt.Errorf("unsupported filter value %s", res.Raw)
}

// isRegexObject reports whether a JSON object is the {"regex": "..."} form.
func isRegexObject(res gjson.Result) bool {
	return res.IsObject() && res.Get("regex").Type == gjson.String
}
