// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line interface parsing and execution for logdiff.
//
// This package implements all CLI commands for the logdiff application,
// providing both the interactive TUI entry point and non-interactive
// one-shot modes suitable for scripting and CI.
//
// # Key Types
//
//   - Command: Enumeration of all available CLI commands
//   - Args: Parsed command-line arguments with global and command-specific flags
//   - ArgParser: Flag/positional parsing shared by subcommands
//
// # Usage
//
// Parse and execute commands:
//
//	cmd, args := cli.Parse()
//	switch cmd {
//	case cli.CmdDiff:
//	    return cli.HandleDiff(args)
//	case cli.CmdWatch:
//	    return cli.HandleWatch(args)
//	// ... other commands
//	}
//
// # Commands Overview
//
//   - (default): Interactive side-by-side TUI
//   - diff: One-shot comparison printed to stdout or exported
//   - watch: Re-run the comparison whenever either file changes
//   - config: Configuration management (show/get/set/path/keys)
//   - history: Recorded run inspection (list/patterns/clear/count)
//
// Machine-readable commands support the --json flag.
package cli
