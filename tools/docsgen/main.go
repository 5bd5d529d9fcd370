// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes one markdown page per csvscan subcommand, built from the live
// command definitions plus hand-written examples.
//
//	go run ./tools/docsgen docs
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/csvscan/csvscan/internal/command"
	"github.com/csvscan/csvscan/internal/version"
)

// Examples maps subcommand name to its examples.
type Examples map[string][]Example

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type Flag struct {
	Names   string
	Usage   string
	Default string
}

type TemplateData struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []Flag
	Examples  []Example
	Version   string
}

const pageTemplate = `# csvscan {{ .Name }}

{{ .Usage }}

## Usage

` + "```" + `
{{ .UsageText }}
` + "```" + `
{{ if .Flags }}
## Flags

| Flag | Description | Default |
|---|---|---|
{{ range .Flags }}| ` + "`{{ .Names }}`" + ` | {{ .Usage }} | {{ .Default }} |
{{ end }}{{ end }}{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

` + "```" + `
{{ .Command }}
` + "```" + `
{{ end }}{{ end }}
_csvscan {{ .Version }}_
`

func main() {
	if len(os.Args) < 2 { //nolint:mnd
		fmt.Fprintln(os.Stderr, "usage: docsgen <docs-dir>")
		os.Exit(1)
	}
	if err := run(os.Args[1]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(docs string) error {
	examples, err := loadExamples(filepath.Join(docs, "examples.yaml"))
	if err != nil {
		return err
	}

	app, err := command.InitApp(context.Background(), []string{"csvscan"})
	if err != nil {
		return err
	}

	folder := filepath.Join(docs, "commands")
	if err := os.MkdirAll(folder, 0o755); err != nil { //nolint:mnd
		return err
	}

	for _, cmd := range app.Commands {
		path := filepath.Join(folder, cmd.Name+".md")
		fmt.Println("Generating", path)

		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = render(f, cmd, examples[cmd.Name])
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return fmt.Errorf("failed to generate %s: %w", path, err)
		}
	}
	return nil
}

// loadExamples reads the examples file. A missing file yields no examples.
func loadExamples(path string) (Examples, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Examples{}, nil
	}
	if err != nil {
		return nil, err
	}

	var ex Examples
	if err := yaml.Unmarshal(data, &ex); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return ex, nil
}

func render(w io.Writer, cmd *cli.Command, examples []Example) error {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return err
	}

	data := TemplateData{
		Name:      cmd.Name,
		Usage:     cmd.Usage,
		UsageText: cmd.UsageText,
		Flags:     flags(cmd),
		Examples:  examples,
		Version:   version.Version,
	}
	return tmpl.Execute(w, data)
}

func flags(cmd *cli.Command) []Flag {
	var out []Flag
	for _, f := range cmd.Flags {
		names := make([]string, 0, len(f.Names()))
		for _, n := range f.Names() {
			if len(n) == 1 {
				names = append(names, "-"+n)
			} else {
				names = append(names, "--"+n)
			}
		}

		fl := Flag{Names: strings.Join(names, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			fl.Usage = df.GetUsage()
			fl.Default = df.GetValue()
		}
		out = append(out, fl)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Names < out[j].Names })
	return out
}
