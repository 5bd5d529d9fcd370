// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/csvscan/csvscan/internal/meta"
)

const bashCompletionScript = `# bash completion for csvscan
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_csvscan()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "find count merge completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local common="--color -c --endpoint --no-header -n --output -o --profile --region --titles -t"

    # Count positionals (file, pattern) already provided.
    local positionals=0
    local idx=2
    while [[ $idx -lt $COMP_CWORD ]]; do
        local w=${COMP_WORDS[$idx]}
        local p=${COMP_WORDS[$idx-1]}
        if [[ $w != -* && $p != --output && $p != -o && $p != --out \
              && $p != --profile && $p != --region && $p != --endpoint ]]; then
            ((positionals++))
        fi
        ((idx++))
    done

    case "$cmd" in
        find|count)
            local opts="$common"
            ;;
        merge)
            local opts="$common --out"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$common"
            ;;
    esac

    if [[ "$prev" == "--output" || "$prev" == "-o" ]]; then
        COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
        return 0
    fi

    if [[ "$prev" == "--out" ]]; then
        COMPREPLY=( $(compgen -f -- "$cur") )
        return 0
    fi

    if [[ "$cur" == -* || $positionals -ge 1 ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # First positional is the CSV file.
    COMPREPLY=( $(compgen -f -X '!*.csv' -- "$cur") $(compgen -d -- "$cur") )
    return 0
}

complete -F _csvscan csvscan
`

const zshCompletionScript = `#compdef csvscan

_csvscan() {
  local -a cmds
  cmds=(
    'find:list fields matching a pattern'
    'count:count fields matching a pattern'
    'merge:replace matching fields and keep matching rows'
    'completion:generate shell completion script'
  )

  local -a common
  common=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '--endpoint[S3-compatible endpoint URL]:url'
  '(-n --no-header)'{-n,--no-header}'[treat the first row as data]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--profile[AWS profile]:profile'
  '--region[AWS region]:region'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'csvscan commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    find|count)
      _arguments -C \
        $common \
        '1:CSV file:_files -g "*.csv"' \
        '2:pattern:'
      ;;
    merge)
      _arguments -C \
        $common \
        '--out[write result to file]:file:_files' \
        '1:CSV file:_files -g "*.csv"' \
        '2:pattern:'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $common '*:file:_files'
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _csvscan csvscan
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	w := Writer(cmd)

	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return errors.New("usage: csvscan completion [bash|zsh]")
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "csvscan completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
