// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// app.go - Startup wiring and command handlers for athena.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/jeranaias/athena/internal/commands"
	"github.com/jeranaias/athena/internal/config"
	"github.com/jeranaias/athena/internal/logging"
	"github.com/jeranaias/athena/internal/session"
	"github.com/jeranaias/athena/internal/storage"
)

// =============================================================================
// CONFIGURATION
// =============================================================================

// LoadConfig loads the config file named by --config (or the default one)
// and applies command line overrides on top of it.
func LoadConfig(args Args) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if args.ConfigPath != "" {
		cfg, err = config.LoadFromPath(args.ConfigPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, &ConfigError{Path: args.ConfigPath, Err: err}
	}

	if args.DataDir != "" {
		cfg.Storage.DataDir = args.DataDir
	}
	if args.File != "" {
		cfg.Storage.FileName = args.File
	}
	if args.NoColor {
		cfg.UI.Color = "never"
	}
	if err := cfg.Validate(); err != nil {
		return nil, &ConfigError{Err: err}
	}
	return cfg, nil
}

// ConfigFilePath returns the config file athena reads for these args.
func ConfigFilePath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPath()
}

// =============================================================================
// RUNTIME
// =============================================================================

// Runtime bundles what a front-end needs: configuration, logger and a
// session with the task list loaded.
type Runtime struct {
	Config  *config.Config
	Logger  *slog.Logger
	Session *session.Session

	closeLog func() error
}

// Setup loads configuration, opens the log and starts a session. An
// unreadable task file stops startup with an error matching
// storage.ErrPersistence.
func Setup(args Args) (*Runtime, error) {
	cfg, err := LoadConfig(args)
	if err != nil {
		return nil, err
	}

	SetColors(ResolveColors(cfg.UI.Color, args.NoColor, IsStdoutTTY()))

	logger, closeLog, err := logging.Open(cfg, args.Verbose)
	if err != nil {
		return nil, &ConfigError{Err: err}
	}

	store := storage.NewStore(cfg.Storage.DataDir, cfg.Storage.FileName)
	sess, err := session.New(store, logger)
	if err != nil {
		_ = closeLog()
		return nil, err
	}

	return &Runtime{
		Config:   cfg,
		Logger:   logger,
		Session:  sess,
		closeLog: closeLog,
	}, nil
}

// Close flushes and closes the log file.
func (r *Runtime) Close() error {
	if r.closeLog == nil {
		return nil
	}
	return r.closeLog()
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// HandleChat runs the interactive chat loop on stdin/stdout.
func HandleChat(args Args, stdin io.Reader, stdout io.Writer) (err error) {
	rt, err := Setup(args)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, rt.Close())
	}()

	var reader LineReader
	if IsTTY() {
		reader = NewLinerReader(rt.Config.HistoryPath(), commands.NewCompleter(commands.Builtins()))
	} else {
		reader = NewScannerReader(stdin, nil)
	}
	defer func() {
		if cerr := reader.Close(); cerr != nil {
			rt.Logger.Warn("failed to save input history", "error", cerr)
		}
	}()

	return RunREPL(rt.Session, reader, stdout, REPLOptions{
		AssistantName: rt.Config.UI.AssistantName,
		Prompt:        rt.Config.UI.Prompt,
		Quiet:         args.Quiet,
	})
}

// HandleConfig implements "athena config [show|path|get|keys]".
func HandleConfig(args Args, w io.Writer) error {
	cfg, err := LoadConfig(args)
	if err != nil {
		return err
	}
	SetColors(ResolveColors(cfg.UI.Color, args.NoColor, IsStdoutTTY()))

	switch args.Subcommand {
	case "", "show":
		if !args.Quiet {
			fmt.Fprintln(w, RenderConditional(TitleStyle, "athena configuration"))
			fmt.Fprintln(w, RenderSeparator(40))
		}
		fmt.Fprint(w, cfg.String())

	case "path":
		path, err := ConfigFilePath(args)
		if err != nil {
			return &ConfigError{Err: err}
		}
		fmt.Fprintf(w, "%s%s\n", RenderLabel("Config file:"), path)
		fmt.Fprintf(w, "%s%s\n", RenderLabel("Task file:"), cfg.SavePath())
		if logPath := cfg.LogPath(); logPath != "" {
			fmt.Fprintf(w, "%s%s\n", RenderLabel("Log file:"), logPath)
		}

	case "get":
		if len(args.Raw) != 1 {
			return &UsageError{Reason: "config get needs exactly one key", Example: "athena config get storage.data_dir"}
		}
		v, err := cfg.Get(args.Raw[0])
		if err != nil {
			suggestion := Suggest(args.Raw[0], config.Keys())
			return &UsageError{Reason: err.Error(), Example: suggestExample("athena config get ", suggestion, "athena config keys")}
		}
		fmt.Fprintln(w, config.FormatValue(v))

	case "keys":
		for _, k := range config.Keys() {
			fmt.Fprintln(w, k)
		}

	default:
		return &UsageError{Reason: fmt.Sprintf("unknown config subcommand %q", args.Subcommand)}
	}
	return nil
}

// HandleVersion prints version information.
func HandleVersion(w io.Writer) {
	fmt.Fprintln(w, VersionString())
}
