// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export provides diff result export functionality for logdiff.
//
// Three formats are supported:
//
//   - TextExporter: unified plain text with an optional metadata header
//   - JSONExporter: complete machine-readable record of the run
//   - HTMLExporter: standalone side-by-side page with embedded CSS
//
// # Usage
//
// Export a result to a file:
//
//	exporter, err := export.ForFormat("html", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	path, err := export.ExportToFile(result, exporter, nil)
package export
