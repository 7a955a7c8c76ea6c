// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// watch.go - Non-interactive watch command for logdiff.
//
// Re-runs the comparison whenever either file changes and prints a
// timestamped summary line, until interrupted.
package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeranaias/logdiff/internal/compare"
	"github.com/jeranaias/logdiff/internal/source"
)

// HandleWatch runs the comparison on every change until Ctrl-C.
func HandleWatch(args Args) error {
	req, cfg, err := buildRequest(args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	workflow := compare.Default()

	run := func() {
		runCtx, cancel := context.WithTimeout(ctx, 60*time.Second)
		defer cancel()

		result, err := workflow.Run(runCtx, req)
		if err != nil {
			fmt.Printf("%s %s\n",
				DimStyle.Render(time.Now().Format("15:04:05")),
				ErrorStyle.Render(err.Error()))
			return
		}
		recordRun(cfg, args, result)
		fmt.Printf("%s %s\n",
			DimStyle.Render(time.Now().Format("15:04:05")),
			compare.Summary(result))
	}

	run()

	debounce := time.Duration(cfg.Watch.DebounceMs) * time.Millisecond
	watcher, err := source.NewWatcher([]string{req.LeftPath, req.RightPath}, debounce)
	if err != nil {
		return NewCommandError("watch", "start", "watcher unavailable", err)
	}
	defer watcher.Close()

	if !args.Quiet {
		fmt.Println(DimStyle.Render("watching for changes, Ctrl-C to stop"))
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			verbosef(args, "changed: %s", event.Path)
			run()
		}
	}
}
