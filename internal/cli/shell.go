package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/natefinch/atomic"
	"github.com/peterh/liner"
	flag "github.com/spf13/pflag"

	"github.com/grenewode/todo-queue/internal/list"
)

const shellPrompt = "tq> "

// ShellCmd returns the shell command.
func ShellCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("shell", flag.ContinueOnError),
		Usage: "shell",
		Short: "Run commands interactively",
		Long: `Read commands line by line and run them against the same list.

Lines are tq commands without the leading "tq", e.g. "ls %working".
"help" lists commands and "exit", "quit" or Ctrl-D leaves. History is
kept in history_file when it is set.`,
		Exec: func(ctx context.Context, o *IO, args []string) error {
			if len(args) > 0 {
				return ErrTooManyArgs
			}

			if s.inShell {
				return ErrShellNested
			}

			return runShell(ctx, o, s)
		},
	}
}

// lineReader is the input side of the shell.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(line string)
	Close() error
}

// newLineReader uses liner on the process's own stdin and plain line
// scanning on anything else.
func newLineReader(s *session) lineReader {
	if s.stdin == nil {
		return &scanReader{scanner: bufio.NewScanner(strings.NewReader(""))}
	}

	if s.stdin != os.Stdin {
		return &scanReader{scanner: bufio.NewScanner(s.stdin)}
	}

	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetCompleter(s.complete)

	if s.cfg.HistoryFileAbs != "" {
		if f, err := os.Open(s.cfg.HistoryFileAbs); err == nil {
			_, _ = state.ReadHistory(f)
			_ = f.Close()
		}
	}

	return &linerReader{state: state, historyPath: s.cfg.HistoryFileAbs}
}

func runShell(ctx context.Context, o *IO, s *session) error {
	r := newLineReader(s)

	sub := *s
	sub.inShell = true

	err := shellLoop(ctx, o, &sub, r)

	closeErr := r.Close()
	if closeErr != nil {
		o.Warn(fmt.Sprintf("cannot save shell history: %v", closeErr), "check history_file with 'tq print-config'")
	}

	return err
}

func shellLoop(ctx context.Context, o *IO, s *session, r lineReader) error {
	for ctx.Err() == nil {
		line, err := r.Prompt(shellPrompt)
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			return nil
		}

		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		r.AppendHistory(strings.TrimSpace(line))

		switch words[0] {
		case "exit", "quit":
			return nil
		case "help":
			printShellHelp(o)
			continue
		}

		cmd := findCommand(commands(s), words[0])
		if cmd == nil {
			o.ErrPrintln(fmt.Sprintf("error: %s: %s (try 'help')", ErrUnknownCommand, words[0]))
			continue
		}

		cmd.Run(ctx, o, words[1:])
	}

	return nil
}

func printShellHelp(o *IO) {
	o.Println("Commands:")

	for _, cmd := range commands(&session{}) {
		if cmd.Name() == "shell" {
			continue
		}

		o.Println(cmd.HelpLine())
	}

	o.Printf("  %-30s %s\n", "exit", "Leave the shell")
}

// complete offers command names for the first word and full status
// names for a trailing "%word".
func (s *session) complete(line string) []string {
	head, last := "", line
	if i := strings.LastIndexAny(line, " \t"); i >= 0 {
		head, last = line[:i+1], line[i+1:]
	}

	var candidates []string

	switch {
	case head == "":
		for _, cmd := range commands(s) {
			candidates = append(candidates, cmd.Name())
		}

		candidates = append(candidates, "help", "exit")
	case strings.HasPrefix(last, "%"):
		for _, st := range list.Statuses {
			candidates = append(candidates, "%"+st.String())
		}
	default:
		return nil
	}

	var out []string

	for _, c := range candidates {
		if strings.HasPrefix(c, strings.ToLower(last)) {
			out = append(out, head+c)
		}
	}

	return out
}

type linerReader struct {
	state       *liner.State
	historyPath string
}

func (r *linerReader) Prompt(prompt string) (string, error) {
	return r.state.Prompt(prompt)
}

func (r *linerReader) AppendHistory(line string) {
	r.state.AppendHistory(line)
}

// Close restores the terminal and saves history.
func (r *linerReader) Close() error {
	var saveErr error

	if r.historyPath != "" {
		var buf bytes.Buffer

		_, saveErr = r.state.WriteHistory(&buf)
		if saveErr == nil {
			saveErr = os.MkdirAll(filepath.Dir(r.historyPath), 0o750)
		}

		if saveErr == nil {
			saveErr = atomic.WriteFile(r.historyPath, &buf)
		}
	}

	return errors.Join(r.state.Close(), saveErr)
}

type scanReader struct {
	scanner *bufio.Scanner
}

func (r *scanReader) Prompt(string) (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return r.scanner.Text(), nil
}

func (r *scanReader) AppendHistory(string) {}

func (r *scanReader) Close() error { return nil }
