// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - Command line parsing for athena.
package cli

import (
	"errors"
	"fmt"
	"io"
	"runtime"
	"strings"

	"github.com/spf13/pflag"
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
	CmdChat Command = iota
	CmdTUI
	CmdConfig
	CmdVersion
	CmdHelp
)

// String returns the command name as typed on the command line.
func (c Command) String() string {
	switch c {
	case CmdChat:
		return "chat"
	case CmdTUI:
		return "tui"
	case CmdConfig:
		return "config"
	case CmdVersion:
		return "version"
	case CmdHelp:
		return "help"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

var commandNames = map[string]Command{
	"chat":    CmdChat,
	"tui":     CmdTUI,
	"config":  CmdConfig,
	"version": CmdVersion,
	"help":    CmdHelp,
}

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string // --config, empty means ~/.athena/config.toml
	DataDir    string // --data-dir overrides storage.data_dir
	File       string // --file overrides storage.file_name
	Verbose    bool
	Quiet      bool
	NoColor    bool

	// Command-specific
	Subcommand string   // config: show|path|get|keys
	Raw        []string // positional arguments after the subcommand
}

const usageText = `athena - a personal task assistant

Athena keeps a list of todos, deadlines and events in a plain text file
and lets you manage it with short commands.

Usage:
  athena [flags]                 Interactive chat (default)
  athena chat                    Interactive chat
  athena tui                     Full-screen interface
  athena config [show|path]      Show configuration or its file location
  athena config get <key>        Print one configuration value
  athena config keys             List configuration keys
  athena version                 Show version information
  athena help                    Show this help and the task commands

Flags:
`

// Parse parses command line arguments (without the program name).
func Parse(argv []string) (Command, Args, error) {
	var args Args

	fs := newFlagSet(&args)
	if err := fs.Parse(argv); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return CmdHelp, args, nil
		}
		return CmdHelp, args, &UsageError{Reason: err.Error()}
	}

	positional := fs.Args()
	if len(positional) == 0 {
		return CmdChat, args, nil
	}

	cmd, ok := commandNames[strings.ToLower(positional[0])]
	if !ok {
		return CmdHelp, args, &UsageError{
			Reason:  fmt.Sprintf("unknown command %q", positional[0]),
			Example: suggestExample("athena ", Suggest(positional[0], commandList()), "athena help"),
		}
	}

	rest := positional[1:]
	switch cmd {
	case CmdConfig:
		args.Subcommand = "show"
		if len(rest) > 0 {
			args.Subcommand = strings.ToLower(rest[0])
			rest = rest[1:]
		}
		switch args.Subcommand {
		case "show", "path", "keys":
		case "get":
			if len(rest) != 1 {
				return cmd, args, &UsageError{Reason: "config get needs exactly one key", Example: "athena config get storage.data_dir"}
			}
		default:
			return cmd, args, &UsageError{
				Reason:  fmt.Sprintf("unknown config subcommand %q", args.Subcommand),
				Example: suggestExample("athena config ", Suggest(args.Subcommand, configSubcommands), "athena config show"),
			}
		}
	case CmdChat, CmdTUI, CmdVersion, CmdHelp:
		if len(rest) > 0 {
			return cmd, args, &UsageError{Reason: fmt.Sprintf("unexpected argument %q", rest[0])}
		}
	}
	args.Raw = rest

	return cmd, args, nil
}

func newFlagSet(args *Args) *pflag.FlagSet {
	fs := pflag.NewFlagSet("athena", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.SortFlags = false

	fs.StringVar(&args.ConfigPath, "config", "", "path to config file (default: ~/.athena/config.toml)")
	fs.StringVar(&args.DataDir, "data-dir", "", "directory holding the task file")
	fs.StringVar(&args.File, "file", "", "task file name inside the data directory")
	fs.BoolVarP(&args.Verbose, "verbose", "v", false, "log at debug level")
	fs.BoolVarP(&args.Quiet, "quiet", "q", false, "skip the greeting and headers")
	fs.BoolVar(&args.NoColor, "no-color", false, "disable colored output")
	return fs
}

// Usage returns the CLI usage text including flag descriptions.
func Usage() string {
	fs := newFlagSet(&Args{})
	return usageText + fs.FlagUsages()
}

// VersionString returns the version line printed by "athena version".
func VersionString() string {
	return fmt.Sprintf("athena %s (commit %s, built %s, %s/%s)",
		Version, GitCommit, BuildDate, runtime.GOOS, runtime.GOARCH)
}
