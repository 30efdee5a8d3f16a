// Package cli implements the command-line surface shared by the four
// infoutils tools: osinfo, cpuinfo, meminfo and diskls.
//
// # Overview
//
// Each tool is an independent binary built from one *cli.Command. The
// tools share flag conventions, error reporting, version output, the
// optional user configuration file and the report printer; everything
// tool-specific lives in the per-tool files next to this one.
//
// osinfo - operating system and user information:
//
//	osinfo [-a] [-d] [-e] [-r] [-u]
//
// cpuinfo - processor model, load, frequency and topology:
//
//	cpuinfo [-a] [-d] [-f] [-l] [-t]
//
// meminfo - memory, swap and per-process memory usage:
//
//	meminfo [-a] [-d] [-p] [-s]
//
// diskls - block devices, usage, mounts and type groupings:
//
//	diskls [-a] [-d] [-m] [-t] [-u]
//
// Every tool also accepts --no-color, --help/-h and --version/-V. The
// -a flag enables every section of the tool's report at once, and -d
// adds detail rows to sections that have them.
//
// # Error Handling
//
// Unknown flags and stray positional arguments print a one-line
// diagnostic to stderr followed by a "Try '<tool> --help'" hint, and
// exit with status 1. When an unknown flag is close to a real one the
// diagnostic includes a did-you-mean suggestion. Unreadable data
// sources degrade per section: the tool prints a warning for the
// affected section and keeps rendering the rest.
//
// # Environment Variables
//
//	LOG_LEVEL         Set logging verbosity (debug, info, warn, error)
//	NO_COLOR          Disable ANSI color, same as --no-color
//	XDG_CONFIG_HOME   Base directory for the user configuration file
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/qainar-projects/infoutils/pkg/cli.version=1.0'"
package cli
