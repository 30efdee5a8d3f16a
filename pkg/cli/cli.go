package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/urfave/cli/v3"

	"github.com/qainar-projects/infoutils/pkg/config"
	"github.com/qainar-projects/infoutils/pkg/report"
)

// Exit codes shared by the four tools. Only Success and UsageError are
// produced by current code paths; the others are reserved for
// collectors that start distinguishing failure classes.
const (
	ExitSuccess          = 0
	ExitUsageError       = 1
	ExitPermissionDenied = 2
	ExitNotFound         = 3
	ExitRuntimeError     = 4
)

// version is embedded at build time:
//
//	go build -ldflags="-X 'github.com/qainar-projects/infoutils/pkg/cli.version=1.1.0'"
var version = "1.0"

const homePage = "https://github.com/qainar-projects/infoutils"

// Main runs a tool command and terminates the process. Argument errors
// print a GNU-style message, a near-miss suggestion when one exists,
// and the help hint to stderr before exiting with code 1.
func Main(cmd *cli.Command) {
	initLogging()
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", cmd.Name, err)
		if s := suggestFlag(cmd, err.Error()); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintf(os.Stderr, "Try '%s --help' for more information.\n", cmd.Name)
		os.Exit(ExitUsageError)
	}
}

// initLogging installs a text handler on stderr. LOG_LEVEL selects
// verbosity; warnings and up are shown by default.
func initLogging() {
	level := slog.LevelWarn
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "error":
		level = slog.LevelError
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// suggestFlag extracts the offending token from a flag parse error and
// returns the closest defined long flag within edit distance 2.
func suggestFlag(cmd *cli.Command, errText string) string {
	idx := strings.LastIndex(errText, ": ")
	if idx < 0 {
		return ""
	}
	token := strings.Trim(errText[idx+2:], "-'\" ")
	if token == "" || strings.ContainsAny(token, " \t") {
		return ""
	}

	best, bestDist := "", 3
	for _, f := range cmd.Flags {
		for _, name := range f.Names() {
			if len(name) < 2 {
				continue
			}
			if d := levenshtein.ComputeDistance(token, name); d < bestDist {
				best, bestDist = "--"+name, d
			}
		}
	}
	return best
}

// loadConfig reads the user config, downgrading failures to a warning
// so a broken config never blocks a report.
func loadConfig() config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("ignoring user config", "error", err)
	}
	return cfg
}

// newPrinter builds the stdout printer, honoring --no-color over the
// configured color mode.
func newPrinter(cmd *cli.Command, cfg config.Config) *report.Printer {
	mode := cfg.Color
	if cmd.Bool("no-color") {
		mode = report.ColorNever
	}
	return report.NewPrinter(os.Stdout, mode)
}

// rejectArgs enforces the "any unrecognized token is an error" contract
// for tools that take no positional arguments.
func rejectArgs(cmd *cli.Command) error {
	if cmd.Args().Len() > 0 {
		return fmt.Errorf("invalid option -- '%s'", cmd.Args().First())
	}
	return nil
}

// printVersion writes the fixed version block all four tools share.
func printVersion(tool string) {
	fmt.Printf("%s (QCO InfoUtils) %s\n", tool, version)
	fmt.Println("Copyright (C) 2025 the infoutils authors")
	fmt.Println("License Apache 2.0: Apache License version 2.0")
	fmt.Println("This is free software: you are free to change and redistribute it.")
	fmt.Println("There is NO WARRANTY, to the extent permitted by law.")
}

func allFlag() *cli.BoolFlag {
	return &cli.BoolFlag{Name: "all", Aliases: []string{"a"}, Usage: "display all available information"}
}

func detailedFlag(usage string) *cli.BoolFlag {
	return &cli.BoolFlag{Name: "detailed", Aliases: []string{"d"}, Usage: usage}
}

func noColorFlag() *cli.BoolFlag {
	return &cli.BoolFlag{Name: "no-color", Usage: "disable colored output"}
}

func versionFlag() *cli.BoolFlag {
	return &cli.BoolFlag{Name: "version", Aliases: []string{"V"}, Usage: "output version information and exit"}
}
