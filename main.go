// logdiff - compare log files while ignoring timestamps.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/logdiff/internal/cli"
	"github.com/jeranaias/logdiff/internal/config"
	"github.com/jeranaias/logdiff/internal/history"
	"github.com/jeranaias/logdiff/internal/ui/view"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		// Piped or redirected output gets a plain diff instead of the TUI.
		if !cli.IsTTY() || !cli.IsStdoutTTY() {
			if err := cli.HandleDiff(args); err != nil {
				cli.HandleErrorAndExit(err, args.JSON)
			}
			return
		}
		if err := runTUI(args); err != nil {
			cli.HandleErrorAndExit(err, args.JSON)
		}

	case cli.CmdDiff:
		if err := cli.HandleDiff(args); err != nil {
			cli.HandleErrorAndExit(err, args.JSON)
		}

	case cli.CmdWatch:
		if err := cli.HandleWatch(args); err != nil {
			cli.HandleErrorAndExit(err, args.JSON)
		}

	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			cli.HandleErrorAndExit(err, args.JSON)
		}

	case cli.CmdHistory:
		if err := cli.HandleHistory(args); err != nil {
			cli.HandleErrorAndExit(err, args.JSON)
		}

	case cli.CmdVersion:
		cli.PrintVersion()

	case cli.CmdHelp:
		cli.PrintUsage()

	default:
		cli.PrintUsage()
		os.Exit(cli.ExitUsageError)
	}
}

// runTUI launches the interactive side-by-side view.
func runTUI(args cli.Args) error {
	if err := cli.RequiresTTY("run the interactive view"); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return cli.NewCommandError("tui", "start", "configuration unusable", err)
	}

	// CLI arguments override the configured defaults.
	if args.LeftPath != "" {
		cfg.Compare.LeftPath = args.LeftPath
	}
	if args.RightPath != "" {
		cfg.Compare.RightPath = args.RightPath
	}
	if args.Pattern != "" {
		cfg.Compare.Pattern = args.Pattern
	}
	if args.NoHistory {
		cfg.History.Enabled = false
	}

	if cfg.Compare.LeftPath == "" || cfg.Compare.RightPath == "" {
		return cli.NewValidationErrorWithExample(
			"paths", "",
			"two files are required",
			"logdiff old.log new.log",
		)
	}

	// History is best-effort: a broken database never blocks the view.
	var store *history.Store
	if cfg.History.Enabled {
		if dbPath, err := cfg.HistoryDBPath(); err == nil {
			if s, err := history.Open(dbPath); err == nil {
				store = s
				defer store.Close()
			} else {
				fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
			}
		}
	}

	program := tea.NewProgram(view.New(cfg, store), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return cli.NewCommandError("tui", "run", "terminal UI failed", err)
	}
	return nil
}
