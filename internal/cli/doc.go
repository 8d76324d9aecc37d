// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the line-oriented chat
// front-end for athena.
//
// # Key Types
//
//   - Command: the top-level commands (chat, tui, config, version, help)
//   - Args: parsed global flags and command arguments
//   - Runtime: config, logger and session shared by the front-ends
//   - UsageError, ConfigError: errors mapped to exit codes by GetExitCode
//
// # Usage
//
//	cmd, args, err := cli.Parse(os.Args[1:])
//	if err != nil {
//	    cli.DisplayError(os.Stderr, err)
//	    os.Exit(cli.GetExitCode(err))
//	}
//	switch cmd {
//	case cli.CmdChat:
//	    err = cli.HandleChat(args, os.Stdin, os.Stdout)
//	// ... other commands
//	}
//
// The chat loop uses peterh/liner for history and keyword completion when
// stdin is a terminal, and a plain line scanner otherwise so that scripts
// can pipe commands in.
package cli
