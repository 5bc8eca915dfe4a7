// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/dustin/go-humanize"
	"golang.org/x/net/html"
	"golang.org/x/term"

	"github.com/tagsift/tagsift/internal/log"
)

var (
	matchStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	summaryStyle = lipgloss.NewStyle().Bold(true)
)

// WantColor decides whether output should be colored. The flag wins, but
// color is never emitted when stdout is not a terminal.
func WantColor(flag bool) bool {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return false
	}
	return flag
}

// Spit serializes each matched node and writes it to w, one per line.
func Spit(w io.Writer, matches []*html.Node, colorize bool) error {
	for _, n := range matches {
		var sb strings.Builder
		if err := html.Render(&sb, n); err != nil {
			return err
		}

		rendered := sb.String()
		if colorize {
			rendered = matchStyle.Render(rendered)
		}

		if _, err := fmt.Fprintln(w, rendered); err != nil {
			return err
		}
	}

	log.Tracef("spit done: matches=%d", len(matches))
	return nil
}

// Text writes plain lines, used for admitted tag names from a scan.
func Text(w io.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// Summary writes a "matched M of N nodes" line with humanized counts.
func Summary(w io.Writer, verb, noun string, matched, total int, colorize bool) {
	line := fmt.Sprintf("%s %s of %s %s", verb,
		humanize.Comma(int64(matched)), humanize.Comma(int64(total)), noun)
	if colorize {
		line = summaryStyle.Render(line)
	}
	fmt.Fprintln(w, line)
}
