// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

// setupTestConfig sets TAGSIFT_CFG_FILE to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	assert.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("TAGSIFT_CFG_FILE", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

// withConfig is a helper that sets up a test config and executes a test function.
func withConfig(t *testing.T, testFile string, ns string, fn func(t *testing.T)) {
	t.Helper()
	cleanup := setupTestConfig(t, testFile)
	defer cleanup()
	_, _ = Load(ns)
	fn(t)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		wantErr   bool
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, true, cfg.Data["color"])
				assert.Equal(t, "span", cfg.Data["name"])
			},
		},
		{
			name:     "nested structure",
			testFile: "nested.yaml",
			wantErr:  false,
			checkFunc: func(t *testing.T, cfg Type) {
				find, ok := cfg.Data["find"].(map[string]interface{})
				assert.True(t, ok, "find should be a map")
				assert.Equal(t, false, find["color"])
				attrs, ok := find["attrs"].([]interface{})
				assert.True(t, ok)
				assert.Len(t, attrs, 2)
			},
		},
		{
			name:     "missing file",
			testFile: "does-not-exist.yaml",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleanup := setupTestConfig(t, tt.testFile)
			defer cleanup()

			cfg, err := Load()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.checkFunc != nil {
				tt.checkFunc(t, cfg)
			}
		})
	}
}

func TestGetString(t *testing.T) {
	withConfig(t, "simple.yaml", "", func(t *testing.T) {
		got, err := GetString("name")
		assert.NoError(t, err)
		assert.Equal(t, "span", got)

		got, err = GetString("missing", "fallback")
		assert.NoError(t, err)
		assert.Equal(t, "fallback", got)

		_, err = GetString("missing")
		assert.Error(t, err)
	})
}

func TestGetBool(t *testing.T) {
	withConfig(t, "simple.yaml", "", func(t *testing.T) {
		got, err := GetBool("color")
		assert.NoError(t, err)
		assert.True(t, got)

		got, err = GetBool("missing", false)
		assert.NoError(t, err)
		assert.False(t, got)
	})
}

func TestNamespacedLookup(t *testing.T) {
	// The namespaced key find.color must win over the top-level color.
	withConfig(t, "nested.yaml", "find", func(t *testing.T) {
		got, err := GetBool("color")
		assert.NoError(t, err)
		assert.False(t, got)
	})
}

func TestGetStringSlice(t *testing.T) {
	withConfig(t, "nested.yaml", "find", func(t *testing.T) {
		got, err := GetStringSlice("attrs")
		assert.NoError(t, err)
		assert.Equal(t, []string{"class=sister", "id=~^link"}, got)

		got, err = GetStringSlice("missing", []string{"x"})
		assert.NoError(t, err)
		assert.Equal(t, []string{"x"}, got)
	})
}
