// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package specfile

import (
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	spec, err := Load(filepath.Join("testdata", "sisters.json"))
	require.NoError(t, err)

	assert.Equal(t, "a", spec.Name)

	attrs, ok := spec.Attrs.(map[string]any)
	require.True(t, ok)

	values, ok := attrs["class"].([]any)
	require.True(t, ok)
	require.Len(t, values, 2)
	assert.Equal(t, "sister", values[0])
	pattern, ok := values[1].(*regexp.Regexp)
	require.True(t, ok)
	assert.Equal(t, "^bro", pattern.String())

	// null means the attribute must be absent.
	assert.Nil(t, attrs["data-x"])

	str, ok := spec.String.(*regexp.Regexp)
	require.True(t, ok)
	assert.Equal(t, "story", str.String())
}

func TestLoadMissingKeys(t *testing.T) {
	spec, err := Load(filepath.Join("testdata", "name-only.json"))
	require.NoError(t, err)

	assert.Equal(t, "title", spec.Name)
	assert.Nil(t, spec.Attrs)
	assert.Nil(t, spec.String)

	s, err := spec.Strainer()
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestLoadScalarAttrs(t *testing.T) {
	// A bare attrs value passes through; the strainer treats it as a
	// class filter.
	spec, err := Load(filepath.Join("testdata", "scalar-attrs.json"))
	require.NoError(t, err)
	assert.Equal(t, "main", spec.Attrs)

	_, err = spec.Strainer()
	require.NoError(t, err)
}

func TestParseRejectsBadInput(t *testing.T) {
	_, err := parse([]byte("not json"), "test")
	assert.Error(t, err)

	_, err = parse([]byte(`["array"]`), "test")
	assert.Error(t, err)

	_, err = parse([]byte(`{"string": {"regex": "("}}`), "test")
	assert.Error(t, err)

	_, err = parse([]byte(`{"name": {"weird": 1}}`), "test")
	assert.Error(t, err)
}

func TestParseBooleansAndNumbers(t *testing.T) {
	spec, err := parse([]byte(`{"attrs": {"id": 1, "data": false, "hidden": true}}`), "test")
	require.NoError(t, err)

	attrs, ok := spec.Attrs.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), attrs["id"])
	assert.Equal(t, false, attrs["data"])
	assert.Equal(t, true, attrs["hidden"])
}
