// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/csvscan/csvscan/internal/command"
	"github.com/csvscan/csvscan/internal/config"
	"github.com/csvscan/csvscan/internal/log"
	"github.com/csvscan/csvscan/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(w io.Writer, args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	if len(args) > 1 && args[1] == "completion" {
		// Short-circuit completion: pass args directly.
		return args
	}
	args = processSetOnly(args)
	log.Debugf("args after set processing: args=%v", args)
	return args
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(os.Stdout, args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands an @set argument into the argument list stored under
// <command>.<set> in the config file. An @word with no matching config entry
// is left in place, so patterns such as "@example.com" pass through.
func processSetOnly(args []string) []string {
	if len(args) < 3 { //nolint:mnd
		return args
	}

	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "@") || len(a) == 1 {
			continue
		}

		setArgs, err := config.GetStringSlice(args[1] + "." + a[1:])
		if err != nil {
			log.Debugf("no arg set for %s: %v", a, err)
			continue
		}

		var parts []string
		for _, entry := range setArgs {
			parts = append(parts, strings.Fields(entry)...)
		}

		expanded := make([]string, 0, len(args)-1+len(parts))
		expanded = append(expanded, args[:i]...)
		expanded = append(expanded, parts...)
		expanded = append(expanded, args[i+1:]...)
		return expanded
	}

	return args
}
