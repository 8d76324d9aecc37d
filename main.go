// athena - a personal task assistant for the terminal.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/athena/internal/cli"
	"github.com/jeranaias/athena/internal/ui/tui"
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
	os.Exit(run(os.Args[1:]))
}

func run(argv []string) int {
	cmd, args, err := cli.Parse(argv)
	if err != nil {
		cli.DisplayError(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Run 'athena help' for usage.")
		return cli.GetExitCode(err)
	}

	// Route to appropriate handler
	switch cmd {
	case cli.CmdChat:
		err = cli.HandleChat(args, os.Stdin, os.Stdout)
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdConfig:
		err = cli.HandleConfig(args, os.Stdout)
	case cli.CmdVersion:
		cli.HandleVersion(os.Stdout)
	case cli.CmdHelp:
		// Help must work even with a broken config file.
		mode := "auto"
		if cfg, cerr := cli.LoadConfig(args); cerr == nil {
			mode = cfg.UI.Color
		}
		cli.SetColors(cli.ResolveColors(mode, args.NoColor, cli.IsStdoutTTY()))
		cli.HandleHelp(os.Stdout)
	}

	if err != nil {
		cli.DisplayError(os.Stderr, err)
		return cli.GetExitCode(err)
	}
	return cli.ExitSuccess
}

// runTUI starts the full-screen interface. It needs a terminal on both ends.
func runTUI(args cli.Args) (err error) {
	if !cli.IsTTY() || !cli.IsStdoutTTY() {
		return &cli.UsageError{Reason: "the tui needs an interactive terminal", Example: "athena chat"}
	}

	rt, err := cli.Setup(args)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, rt.Close())
	}()

	model := tui.New(rt.Session, tui.Options{
		AssistantName: rt.Config.UI.AssistantName,
		Prompt:        rt.Config.UI.Prompt,
		Quiet:         args.Quiet,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
