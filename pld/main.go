// Command pld simulates climbing the property ladder.
//
// Run "pld help" for the list of subcommands.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/ladder/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	// Answers shell completion requests, and exits, when run by the shell.
	cmd.Completion(flag.CommandLine).Complete("pld")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
