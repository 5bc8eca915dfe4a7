// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for tagsift's user
// configuration. The configuration is expected to be a YAML document located
// in the user's configuration directory, typically:
//   - Linux: $XDG_CONFIG_HOME/tagsift.yaml or $HOME/.config/tagsift.yaml
//   - macOS: $HOME/Library/Application Support/tagsift.yaml
//   - Windows: %AppData%/tagsift.yaml
//
// Actual resolution relies on os.UserConfigDir which follows platform
// conventions. Keys may be namespaced by subcommand, so "find.color" wins
// over "color" when the find command asks for "color".
package config
