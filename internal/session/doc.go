// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package session connects user input to the task list.
//
// A Session loads the list once, then handles one line at a time:
// parse, execute, and save if the command modified the list.
//
// # Key Types
//
//   - Session: owns the list, its store and a logger
//   - Store: persistence contract implemented by storage.Store
//
// # Usage
//
//	sess, err := session.New(storage.NewStore(dir, file), logger)
//	if err != nil {
//	    return err // unreadable task file
//	}
//	fmt.Println(sess.Greeting())
//	for sess.Active() && scanner.Scan() {
//	    fmt.Println(sess.Handle(scanner.Text()))
//	}
package session
