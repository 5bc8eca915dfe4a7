// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tagsift/tagsift/internal/domtree"
	"github.com/tagsift/tagsift/internal/log"
	"github.com/tagsift/tagsift/internal/output"
)

func newScanCommand() *cli.Command {
	return &cli.Command{
		Name:      "scan",
		Usage:     "report which start tags the filter would admit at parse time",
		ArgsUsage: "[file ...]",
		Flags:     filterFlags("scan"),
		Action:    runScan,
	}
}

// runScan tokenizes each input document and reports the start tags the
// filter admits, without building a tree. String filters cannot be decided
// at this phase and are ignored, exactly as a filtered parse would ignore
// them.
func runScan(ctx context.Context, cmd *cli.Command) error {
	s, err := buildStrainer(cmd)
	if err != nil {
		return err
	}
	log.Debugf("filter built: %s", s)

	colorize := output.WantColor(cmd.Bool("color"))

	var admitted []string
	total := 0

	err = eachInput(cmd.Args().Slice(), func(name string, r io.Reader) error {
		names, seen, err := domtree.Scan(r, s)
		if err != nil {
			return err
		}

		log.Debugf("input done: source=%s admitted=%d seen=%d", name, len(names), seen)
		admitted = append(admitted, names...)
		total += seen
		return nil
	})
	if err != nil {
		return err
	}

	if cmd.Bool("count") {
		output.Summary(os.Stdout, "admitted", "tags", len(admitted), total, colorize)
		return nil
	}

	return output.Text(os.Stdout, admitted)
}
