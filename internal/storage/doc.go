// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage provides task list persistence for athena.
//
// The list is kept in a single flat text file, one pipe-delimited record
// per task:
//
//	<icon>|<0|1>|<description>[|<date>]
//
// # Key Types
//
//   - Store: loads and saves a tasks.List at a fixed path
//   - Error: a failed load/save/decode, matching ErrPersistence
//
// # Usage
//
//	store := storage.NewStore("data", "athena.txt")
//	list, err := store.Load()
//	...
//	if list.Modified() {
//	    if err := store.Save(list); err == nil {
//	        list.MarkSaved()
//	    }
//	}
//
// # Storage Location
//
// Defaults to data/athena.txt relative to the working directory. The
// directory is created on first save.
package storage
