// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and command dispatch for logdiff.
//
// CLI: Comprehensive help and examples for all commands
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdDiff
	CmdWatch
	CmdConfig
	CmdHistory
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool
	JSON    bool

	// Compared files
	LeftPath  string
	RightPath string

	// Command-specific
	Pattern    string // Timestamp strip pattern (overrides config)
	Format     string // Export format for diff output
	Output     string // Output directory for exports
	NoHistory  bool   // Skip recording the run
	Subcommand string
	ConfigKey  string
	ConfigVal  string

	// Raw args (remaining after flag parsing)
	Raw []string
}

const usageText = `logdiff - compare log files while ignoring timestamps

Logdiff compares two log files line by line, strips a configurable
timestamp pattern before matching, and detects moved lines in addition
to plain additions and deletions.

Usage:
  logdiff <left> <right>              Open the interactive TUI
  logdiff diff <left> <right>         One-shot diff to stdout
  logdiff watch <left> <right>        Re-diff automatically on change
  logdiff config [show|get|set|path]  Configuration
  logdiff history [list|patterns|clear|count]  Run history
  logdiff version                     Show version
  logdiff help                        Show this help

Common flags:
  -p, --pattern REGEX   Timestamp pattern to strip before comparing
      --format FORMAT   Output format for diff: text, json, html
  -o, --output DIR      Directory for exported files
      --no-history      Do not record this run
      --json            Machine-readable output where supported
  -q, --quiet           Summary line only
  -v, --verbose         Extra diagnostics

Examples:
  # Interactive side-by-side view
  logdiff app-old.log app-new.log

  # Strip ISO timestamps, print a unified diff
  logdiff diff -p '^\d{4}-\d{2}-\d{2}T\S+ ' old.log new.log

  # Emit a standalone HTML report
  logdiff diff --format html -o /tmp/reports old.log new.log

  # Keep re-diffing while a service writes the files
  logdiff watch old.log new.log

  # Most used strip patterns
  logdiff history patterns

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("logdiff version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}

// Parse parses command-line arguments and returns the command and args.
func Parse() (Command, Args) {
	return parseArgs(os.Args[1:])
}

// parseArgs is the testable core of Parse.
func parseArgs(args []string) (Command, Args) {
	remaining, parsedArgs := parseGlobalFlags(args)

	// Bare invocation opens the TUI with the configured paths
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs
	}

	cmd := strings.ToLower(remaining[0])
	rest := remaining[1:]

	switch cmd {
	case "tui":
		parsePathArgs(&parsedArgs, rest)
		return CmdTUI, parsedArgs

	case "diff", "compare":
		parsePathArgs(&parsedArgs, rest)
		return CmdDiff, parsedArgs

	case "watch":
		parsePathArgs(&parsedArgs, rest)
		return CmdWatch, parsedArgs

	case "config":
		parseConfigArgs(&parsedArgs, rest)
		return CmdConfig, parsedArgs

	case "history", "runs":
		if len(rest) > 0 {
			parsedArgs.Subcommand = rest[0]
		}
		parsedArgs.Raw = rest
		return CmdHistory, parsedArgs

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs

	default:
		// Two bare paths open the TUI directly: "logdiff a.log b.log"
		parsePathArgs(&parsedArgs, remaining)
		return CmdTUI, parsedArgs
	}
}

// parseGlobalFlags extracts global flags from args and returns remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var remaining []string
	var parsedArgs Args

	i := 0
	for i < len(args) {
		arg := args[i]

		switch arg {
		case "-q", "--quiet":
			parsedArgs.Quiet = true
		case "-v", "--verbose":
			parsedArgs.Verbose = true
		case "--json":
			parsedArgs.JSON = true
		case "--no-history":
			parsedArgs.NoHistory = true
		case "-p", "--pattern":
			if i+1 < len(args) {
				i++
				parsedArgs.Pattern = args[i]
			}
		case "--format":
			if i+1 < len(args) {
				i++
				parsedArgs.Format = args[i]
			}
		case "-o", "--output":
			if i+1 < len(args) {
				i++
				parsedArgs.Output = args[i]
			}
		default:
			switch {
			case strings.HasPrefix(arg, "--pattern="):
				parsedArgs.Pattern = strings.TrimPrefix(arg, "--pattern=")
			case strings.HasPrefix(arg, "--format="):
				parsedArgs.Format = strings.TrimPrefix(arg, "--format=")
			case strings.HasPrefix(arg, "--output="):
				parsedArgs.Output = strings.TrimPrefix(arg, "--output=")
			default:
				remaining = append(remaining, arg)
			}
		}
		i++
	}

	return remaining, parsedArgs
}

// parsePathArgs fills the left/right paths from positional arguments.
func parsePathArgs(args *Args, remaining []string) {
	args.Raw = remaining
	for _, arg := range remaining {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		if args.LeftPath == "" {
			args.LeftPath = arg
		} else if args.RightPath == "" {
			args.RightPath = arg
		}
	}
}

// parseConfigArgs parses config command specific arguments.
func parseConfigArgs(args *Args, remaining []string) {
	args.Raw = remaining
	if len(remaining) == 0 {
		args.Subcommand = "show"
		return
	}

	args.Subcommand = remaining[0]
	if len(remaining) > 1 {
		args.ConfigKey = remaining[1]
	}
	if len(remaining) > 2 {
		args.ConfigVal = strings.Join(remaining[2:], " ")
	}
}
