// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive chat loop for athena.
//
// USABILITY: Line editing, history and tab completion on a terminal;
// a plain line scanner when input is piped so scripts can drive athena.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/athena/internal/commands"
	"github.com/jeranaias/athena/internal/session"
	"github.com/jeranaias/athena/internal/util"
)

// =============================================================================
// LINE READERS
// =============================================================================

// LineReader reads one line of user input at a time. Implementations return
// io.EOF when input is exhausted or the user aborts.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// linerReader provides input history and line editing for a terminal.
type linerReader struct {
	line        *liner.State
	historyFile string
}

// NewLinerReader creates a terminal line reader. History is loaded from and
// saved to historyFile unless it is empty.
func NewLinerReader(historyFile string, completer *commands.Completer) LineReader {
	line := liner.NewLiner()
	line.SetCtrlCAborts(true)
	if completer != nil {
		line.SetCompleter(completer.Complete)
	}

	r := &linerReader{line: line, historyFile: historyFile}
	r.loadHistory()
	return r
}

func (r *linerReader) loadHistory() {
	if r.historyFile == "" {
		return
	}
	if f, err := os.Open(r.historyFile); err == nil {
		r.line.ReadHistory(f)
		f.Close()
	}
}

// ReadLine reads a line of input with the given prompt.
// Supports history navigation with arrow keys.
func (r *linerReader) ReadLine(prompt string) (string, error) {
	input, err := r.line.Prompt(prompt)
	if err != nil {
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", io.EOF
		}
		return "", err
	}

	if strings.TrimSpace(input) != "" {
		r.line.AppendHistory(input)
	}
	return input, nil
}

// Close saves history and restores the terminal.
func (r *linerReader) Close() error {
	var saveErr error
	if r.historyFile != "" {
		saveErr = util.AtomicWrite(r.historyFile, 0o600, func(w io.Writer) error {
			_, err := r.line.WriteHistory(w)
			return err
		})
	}
	if err := r.line.Close(); err != nil {
		return err
	}
	return saveErr
}

// scannerReader reads newline-terminated lines from a non-interactive source.
type scannerReader struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewScannerReader creates a line reader for piped input. The prompt is
// written to out when out is non-nil.
func NewScannerReader(in io.Reader, out io.Writer) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(in), out: out}
}

func (r *scannerReader) ReadLine(prompt string) (string, error) {
	if r.out != nil && prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSuffix(r.scanner.Text(), "\r"), nil
}

func (r *scannerReader) Close() error { return nil }

// =============================================================================
// CHAT LOOP
// =============================================================================

// REPLOptions controls how the chat loop presents itself.
type REPLOptions struct {
	AssistantName string
	Prompt        string
	Quiet         bool // skip the greeting
}

// RunREPL feeds lines from in to sess until the session ends or input runs
// out. Blank lines are ignored. Every change is saved by the session as it
// happens, so leaving on EOF or Ctrl-C loses nothing.
func RunREPL(sess *session.Session, in LineReader, out io.Writer, opts REPLOptions) error {
	name := opts.AssistantName
	if name == "" {
		name = "Athena"
	}

	if !opts.Quiet {
		fmt.Fprintln(out, RenderResponse(name, sess.Greeting()))
	}

	// Plain text: liner measures the prompt by bytes, so escape codes
	// would throw off cursor placement.
	for sess.Active() {
		input, err := in.ReadLine(opts.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		fmt.Fprintln(out, RenderResponse(name, sess.Handle(input)))
	}
	return nil
}
