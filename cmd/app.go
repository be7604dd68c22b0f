// Package cmd implements the CLI application to simulate a property ladder.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/ladder"
	"github.com/etnz/ladder/config"
	"github.com/etnz/ladder/logger"
	"github.com/google/subcommands"
	"go.uber.org/zap"
)

// Commands are the subcommands of the application, by group.
var Commands = []struct {
	Group    string
	Commands []subcommands.Command
}{
	{"simulation", []subcommands.Command{&runCmd{}, &searchCmd{}}},
	{"calculators", []subcommands.Command{&costsCmd{}, &ltvCmd{}, &convertCmd{}, &letCmd{}}},
	{"documentation", []subcommands.Command{&topicCmd{}}},
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range Commands {
		for _, cmd := range g.Commands {
			c.Register(cmd, g.Group)
		}
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "", "Path to a YAML config file overriding the default assumptions")
var logLevel = flag.String("log-level", "", "Log level (debug, info, warn, error), overrides the config file")
var currency = flag.String("currency", "", "ISO currency code used in reports, overrides the config file")

// setup loads the configuration and builds the logger of a command.
func setup() (config.Config, *zap.Logger, error) {
	cfg, err := config.Load(*configFile)
	if err != nil {
		return config.Config{}, zap.NewNop(), err
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *currency != "" {
		cfg.Currency = *currency
	}
	return cfg, logger.New(cfg.Log, os.Stderr), nil
}

// exitStatus reports err and maps it to an exit status.
func exitStatus(err error) subcommands.ExitStatus {
	if err == nil {
		return subcommands.ExitSuccess
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	if errors.Is(err, ladder.ErrInvalidConfiguration) {
		return subcommands.ExitUsageError
	}
	return subcommands.ExitFailure
}

// printMarkdown prints md as is, or rendered for the terminal when pretty is set.
func printMarkdown(md string, pretty bool) {
	if pretty {
		out, err := glamour.Render(md, "dark")
		if err == nil {
			md = out
		}
	}
	fmt.Print(md)
}
