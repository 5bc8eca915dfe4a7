// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/net/html"

	"github.com/tagsift/tagsift/internal/domtree"
	"github.com/tagsift/tagsift/internal/log"
	"github.com/tagsift/tagsift/internal/output"
	"github.com/tagsift/tagsift/internal/specfile"
	"github.com/tagsift/tagsift/strainer"
)

func newFindCommand() *cli.Command {
	return &cli.Command{
		Name:      "find",
		Usage:     "print the elements and strings that match the filter",
		ArgsUsage: "[file ...]",
		Flags:     filterFlags("find"),
		Action:    runFind,
	}
}

// runFind parses each input document and prints the matching nodes.
func runFind(ctx context.Context, cmd *cli.Command) error {
	s, err := buildStrainer(cmd)
	if err != nil {
		return err
	}
	log.Debugf("filter built: %s", s)

	colorize := output.WantColor(cmd.Bool("color"))

	var matches []*html.Node
	total := 0

	err = eachInput(cmd.Args().Slice(), func(name string, r io.Reader) error {
		root, err := domtree.Parse(r)
		if err != nil {
			return err
		}

		found, offered, err := domtree.FindAll(root, s)
		if err != nil {
			return err
		}

		log.Debugf("input done: source=%s matched=%d offered=%d", name, len(found), offered)
		matches = append(matches, found...)
		total += offered
		return nil
	})
	if err != nil {
		return err
	}

	if cmd.Bool("count") {
		output.Summary(os.Stdout, "matched", "nodes", len(matches), total, colorize)
		return nil
	}

	return output.Spit(os.Stdout, matches, colorize)
}

// buildStrainer builds the filter from the spec file, if any, and the
// command line. --name and --string replace the spec's name and string
// filters; --attr filters are added to the spec's attribute filters.
func buildStrainer(cmd *cli.Command) (*strainer.Strainer, error) {
	var base specfile.Spec
	if path := cmd.String("spec"); path != "" {
		var err error
		if base, err = specfile.Load(path); err != nil {
			return nil, err
		}
	}

	name, err := buildNameFilter(cmd.String("name"))
	if err != nil {
		return nil, err
	}
	if name == nil {
		name = base.Name
	}

	str, err := buildStringFilter(cmd.String("string"))
	if err != nil {
		return nil, err
	}
	if str == nil {
		str = base.String
	}

	extra, err := buildAttrFilters(cmd.StringSlice("attr"))
	if err != nil {
		return nil, err
	}

	return strainer.New(name, base.Attrs, str, extra)
}

// eachInput runs fn over every named file, or over stdin when no files are
// given. "-" also names stdin.
func eachInput(files []string, fn func(name string, r io.Reader) error) error {
	if len(files) == 0 {
		return fn("stdin", os.Stdin)
	}

	for _, file := range files {
		if file == "-" {
			if err := fn("stdin", os.Stdin); err != nil {
				return err
			}
			continue
		}

		f, err := os.Open(file)
		if err != nil {
			return err
		}
		err = fn(file, f)
		f.Close()
		if err != nil {
			return err
		}
	}

	return nil
}
