package main

import (
	"fmt"

	"github.com/emaiannone/network-monitor/internal/prefs"
)

func runCompletion(args []string) {
	if len(args) == 0 {
		fatal(fmt.Errorf("completion requires a shell: bash or zsh\nUsage: netmon completion bash|zsh"))
	}
	switch args[0] {
	case "bash":
		fmt.Print(bashCompletionScript)
	case "zsh":
		fmt.Print(zshCompletionScript)
	default:
		fatal(unknownError("shell", args[0], []string{"bash", "zsh"}))
	}
}

// runInternalComplete is called by shell completion scripts to get dynamic candidates.
// It prints one entry per line and is intentionally silent on errors.
func runInternalComplete(args []string) {
	if len(args) == 0 {
		return
	}
	schema := prefs.EmailSchema()
	switch args[0] {
	case "keys":
		for _, k := range schema.Keys() {
			fmt.Println(k)
		}
	case "values":
		if len(args) < 2 {
			return
		}
		if def, ok := schema.Lookup(prefs.Key(args[1])); ok {
			for _, v := range def.Entries.Values() {
				fmt.Println(v)
			}
		}
	}
}

const bashCompletionScript = `# bash completion for netmon
# Usage:
#   source <(netmon completion bash)
# Or add to ~/.bashrc:
#   eval "$(netmon completion bash)"

_netmon() {
  COMPREPLY=()
  local cur="${COMP_WORDS[COMP_CWORD]}"
  local cmd="${COMP_WORDS[1]}"
  local key="${COMP_WORDS[2]}"

  case $COMP_CWORD in
    1)
      COMPREPLY=($(compgen -W "list l get set check completion" -- "$cur"))
      ;;
    2)
      case $cmd in
        get|set)
          COMPREPLY=($(compgen -W "$(netmon __complete keys 2>/dev/null)" -- "$cur"))
          ;;
        list|l)
          COMPREPLY=($(compgen -W "--json" -- "$cur"))
          ;;
        completion)
          COMPREPLY=($(compgen -W "bash zsh" -- "$cur"))
          ;;
      esac
      ;;
    *)
      case $cmd in
        set)
          COMPREPLY=($(compgen -W "$(netmon __complete values "$key" 2>/dev/null)" -- "$cur"))
          ;;
      esac
      ;;
  esac
}

complete -F _netmon netmon
`

const zshCompletionScript = `#compdef netmon
# zsh completion for netmon
# Usage (one-time setup):
#   mkdir -p ~/.zfunc
#   netmon completion zsh > ~/.zfunc/_netmon
# Then add to ~/.zshrc (before compinit):
#   fpath=(~/.zfunc $fpath)
#   autoload -Uz compinit && compinit

_netmon() {
  local cmd="${words[2]}"
  local key="${words[3]}"

  case $CURRENT in
    2)
      local -a cmds
      cmds=(
        'list:print every setting with its summary'
        'l:alias for list'
        'get:print the stored value of a setting'
        'set:change a setting'
        'check:validate the e-mail settings'
        'completion:output shell completion script'
      )
      _describe 'command' cmds
      ;;
    3)
      case $cmd in
        get|set)
          local -a keys
          keys=(${(f)"$(netmon __complete keys 2>/dev/null)"})
          _describe 'key' keys
          ;;
        completion)
          local -a shells
          shells=('bash:bash completion script' 'zsh:zsh completion script')
          _describe 'shell' shells
          ;;
      esac
      ;;
    *)
      case $cmd in
        set)
          local -a vals
          vals=(${(f)"$(netmon __complete values $key 2>/dev/null)"})
          _describe 'value' vals
          ;;
      esac
      ;;
  esac
}

_netmon "$@"
`
