// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small file and string helpers shared across athena.
//
// # Key Functions
//
//   - AtomicWrite, AtomicWriteFile: crash-safe file replacement with fsync
//   - TruncateWidth, PadWidth: terminal-cell aware string fitting
//
// # Usage
//
//	err := util.AtomicWrite(path, 0o644, func(w io.Writer) error {
//	    return storage.Encode(w, list.All())
//	})
package util
