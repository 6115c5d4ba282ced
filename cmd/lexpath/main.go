package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/MacroPower/lexpath/cmd/lexpath/commands"
)

const (
	cmdName = "lexpath"

	shortDesc = "Lexical path processing for POSIX and Windows grammars."
	longDesc  = `Lexpath parses, normalizes, joins, relativizes and root-restricts paths
purely lexically: no operation ever touches the filesystem, and the
target grammar (POSIX or Windows) is selected per invocation rather
than taken from the host OS.
`
)

func main() {
	cmd := commands.NewRootCmd(cmdName, shortDesc, longDesc)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}
