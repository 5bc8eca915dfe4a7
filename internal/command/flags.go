// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"strings"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tagsift/tagsift/internal/config"
)

// flagSources builds the value source chain for a flag: the environment
// first, then the namespaced config key, then the bare config key. The
// config sources are only attached when a config file was found.
func flagSources(ns, name string) cli.ValueSourceChain {
	sources := []cli.ValueSource{
		cli.EnvVar("TAGSIFT_" + strings.ToUpper(name)),
	}

	if path := config.Path(); path != "" {
		sources = append(sources,
			yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
			yaml.YAML(name, altsrc.StringSourcer(path)),
		)
	}

	return cli.NewValueSourceChain(sources...)
}

// filterFlags are the flags shared by the find and scan commands. ns is the
// command name, used to namespace config lookups.
func filterFlags(ns string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "name",
			Aliases: []string{"n"},
			Usage:   "tag name filter; comma-separated, ~ marks a pattern",
			Sources: flagSources(ns, "name"),
		},
		&cli.StringSliceFlag{
			Name:    "attr",
			Aliases: []string{"a"},
			Usage:   "attribute filter (key=value, key=~pattern, key, !key); repeatable",
		},
		&cli.StringFlag{
			Name:    "string",
			Aliases: []string{"s"},
			Usage:   "string content filter; ~ marks a pattern",
			Sources: flagSources(ns, "string"),
		},
		&cli.StringFlag{
			Name:  "spec",
			Usage: "JSON filter spec file",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("TAGSIFT_SPEC"),
			),
		},
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Sources: flagSources(ns, "color"),
		},
		&cli.BoolFlag{
			Name:  "count",
			Usage: "print a summary count instead of the matches",
			Sources: flagSources(ns, "count"),
		},
	}
}
