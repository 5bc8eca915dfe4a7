// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tagsift/tagsift/internal/config"
	"github.com/tagsift/tagsift/internal/version"
)

// InitApp assembles the CLI. The arg immediately following the binary is the
// subcommand and also the namespace key used when retrieving config values;
// it is ignored when it appears to be a flag.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is fine; flags and defaults carry the day.
	_, _ = config.Load(ns)

	app := &cli.Command{
		Name:    "tagsift",
		Usage:   "sift markup for matching elements",
		Version: version.Version,
		Commands: []*cli.Command{
			newFindCommand(),
			newScanCommand(),
		},
	}

	return app, nil
}
