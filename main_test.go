// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"reflect"
	"testing"
)

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{
			name: "no version flag",
			args: []string{"tagsift", "find", "--name", "a"},
			want: false,
		},
		{
			name: "long flag",
			args: []string{"tagsift", "--version"},
			want: true,
		},
		{
			name: "short flag",
			args: []string{"tagsift", "-v"},
			want: true,
		},
		{
			name: "flag after command",
			args: []string{"tagsift", "find", "--version"},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := handleVersion(tt.args); got != tt.want {
				t.Errorf("handleVersion(%v) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "binary only gets help",
			args:     []string{"tagsift"},
			expected: []string{"tagsift", "--help"},
		},
		{
			name:     "command present is untouched",
			args:     []string{"tagsift", "find"},
			expected: []string{"tagsift", "find"},
		},
		{
			name:     "full invocation is untouched",
			args:     []string{"tagsift", "find", "--name", "a", "page.html"},
			expected: []string{"tagsift", "find", "--name", "a", "page.html"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := handleNakedCommand(tt.args)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("handleNakedCommand(%v) = %v, want %v", tt.args, got, tt.expected)
			}
		})
	}
}
