// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

// NewGlobalFlags returns the flags shared by the scan subcommands. params[0]
// is the command namespace and params[1] the config file; when both are given
// output, profile, region, and endpoint also resolve from the config file.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	outputFlag := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("CSVSCAN_OUTPUT"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}

	profileFlag := &cli.StringFlag{
		Name:  "profile",
		Usage: "AWS shared config profile for s3:// locations",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_PROFILE"),
		),
	}

	regionFlag := &cli.StringFlag{
		Name:  "region",
		Usage: "AWS region for s3:// locations",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_REGION"),
			cli.EnvVar("AWS_DEFAULT_REGION"),
		),
	}

	endpointFlag := &cli.StringFlag{
		Name:  "endpoint",
		Usage: "S3-compatible endpoint URL for s3:// locations",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("AWS_ENDPOINT_URL_S3"),
		),
	}

	if len(params) == 2 && params[1] != "" {
		for _, f := range []*cli.StringFlag{outputFlag, profileFlag, regionFlag, endpointFlag} {
			NameSpacedValueChainFlagFromConfigFile(params[0], params[1], f)
		}
	}

	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "no-header",
			Aliases: []string{"n"},
			Usage:   "treat the first row as data instead of a header",
			Value:   false,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
		endpointFlag,
		outputFlag,
		profileFlag,
		regionFlag,
	}

	return
}

// NewOutFlag constructs the --out flag used by merge to write its result to a
// file instead of stdout.
func NewOutFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "out",
		Usage: "write the result to this file instead of stdout",
		Validator: func(value string) error {
			return FlagValidators(value, OutValidator)
		},
	}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	if ns != "" {
		src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
		flag.Sources.Chain = append(flag.Sources.Chain, src)
	}

	src := yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}
