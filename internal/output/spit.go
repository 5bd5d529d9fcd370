// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v2"

	"github.com/csvscan/csvscan/internal/config"
)

// Formats lists the accepted --output values.
var Formats = []string{"text", "json", "yaml", "raw"}

// Options controls rendering.
type Options struct {
	Format string
	Color  bool
	Titles bool
}

// Matches renders the fields returned by Find.
func Matches(w io.Writer, matches []string, opts Options) error {
	if matches == nil {
		matches = []string{}
	}

	switch opts.Format {
	case "json":
		return writeJSON(w, matches)
	case "yaml":
		return writeYAML(w, matches)
	case "raw":
		for _, m := range matches {
			if _, err := fmt.Fprintln(w, m); err != nil {
				return err
			}
		}
		return nil
	default:
		return tableWriter(w, matches, opts)
	}
}

// Count renders the number returned by Count. Text output groups digits.
func Count(w io.Writer, n int, opts Options) error {
	switch opts.Format {
	case "json":
		return writeJSON(w, map[string]int{"count": n})
	case "yaml":
		return writeYAML(w, map[string]int{"count": n})
	case "raw":
		_, err := fmt.Fprintln(w, strconv.Itoa(n))
		return err
	default:
		s := humanize.Comma(int64(n))
		if opts.Titles {
			s = "count: " + s
		}
		_, err := fmt.Fprintln(w, s)
		return err
	}
}

// Merged renders the CSV text returned by Merge. Text and raw emit it
// unchanged; json and yaml wrap it as a single string value.
func Merged(w io.Writer, text string, opts Options) error {
	switch opts.Format {
	case "json":
		return writeJSON(w, text)
	case "yaml":
		return writeYAML(w, text)
	default:
		_, err := io.WriteString(w, text)
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	_, err = w.Write(b)
	return err
}

// tableWriter renders matches as a single-column table honoring color and
// titles. Nothing is written for an empty result.
func tableWriter(w io.Writer, matches []string, opts Options) error {
	if len(matches) == 0 {
		return nil
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors("colors")

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		// Embedded newlines would split a row across table lines.
		rows = append(rows, []string{strings.ReplaceAll(m, "\n", `\n`)})
	}

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row%2 == 0:
				return evenRowStyle
			default:
				return oddRowStyle
			}
		}).
		Rows(rows...)

	if opts.Titles {
		t = t.Headers("match").BorderHeader(false)
	}

	_, err := fmt.Fprintln(w, t)
	return err
}

// getColors returns configured color values for table rendering. Explicit
// config colors win; otherwise a default is picked for the terminal's
// background.
func getColors(key string) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		if colorCfg, err := config.GetString(key); err == nil {
			return lipgloss.Color(colorCfg)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(key+".title", "#b08800", "#f6be00")
	even = resolveColor(key+".even", "#333333", "#ffffff")
	odd = resolveColor(key+".odd", "#0088a0", "#00c8f0")

	return
}
