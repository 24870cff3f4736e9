// Package cli implements the tq command line: global flags, config
// loading, command dispatch and the interactive shell.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/grenewode/todo-queue/internal/app"
)

// session is the state every command of one invocation shares.
type session struct {
	cfg     app.Config
	store   *app.Store
	stdin   io.Reader
	inShell bool
}

// commands returns a fresh command table. FlagSets keep parsed values,
// so each invocation needs its own.
func commands(s *session) []*Command {
	return []*Command{
		AddCmd(s),
		LsCmd(s),
		ShowCmd(s),
		StatusCmd(s),
		TagCmd(s, true),
		TagCmd(s, false),
		RmCmd(s),
		ExplainCmd(s),
		ShellCmd(s),
		PrintConfigCmd(s),
	}
}

func findCommand(cmds []*Command, name string) *Command {
	for _, cmd := range cmds {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

type globalOptions struct {
	flags      *flag.FlagSet
	workDir    *string
	configPath *string
	listFile   *string
	help       *bool
}

func newGlobalOptions() globalOptions {
	fs := flag.NewFlagSet("tq", flag.ContinueOnError)
	fs.SetOutput(&strings.Builder{}) // discard pflag output
	fs.SetInterspersed(false)

	return globalOptions{
		flags:      fs,
		workDir:    fs.StringP("cwd", "C", "", "Run as if started in `dir`"),
		configPath: fs.StringP("config", "c", "", "Use the specified config `file`"),
		listFile:   fs.String("list", "", "Use the specified list `file`"),
		help:       fs.BoolP("help", "h", false, "Show help"),
	}
}

// Run is the main entry point. Returns exit code.
// args includes the program name. A value on sigCh cancels the running
// command.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, sigCh <-chan os.Signal) int {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if sigCh != nil {
		go func() {
			select {
			case <-sigCh:
				cancel()
			case <-ctx.Done():
			}
		}()
	}

	o := NewIO(out, errOut)
	globals := newGlobalOptions()

	if len(args) > 0 {
		args = args[1:]
	}

	err := globals.flags.Parse(args)
	if err != nil {
		o.ErrPrintln("error:", err)
		o.ErrPrintln()
		printGlobalFlags(o.ErrPrintln, globals.flags)

		return 1
	}

	if *globals.help {
		printUsage(o.Println, globals.flags)
		return 0
	}

	if globals.flags.Changed("list") && *globals.listFile == "" {
		o.ErrPrintln("error:", ErrListFlagEmpty)
		o.ErrPrintln()
		printGlobalFlags(o.ErrPrintln, globals.flags)

		return 1
	}

	rest := globals.flags.Args()
	if len(rest) == 0 {
		if globals.flags.NFlag() == 0 {
			printUsage(o.Println, globals.flags)
			return 0
		}

		o.ErrPrintln("error:", ErrNoCommand)
		o.ErrPrintln()
		printUsage(o.ErrPrintln, globals.flags)

		return 1
	}

	cfg, err := app.LoadConfig(app.LoadConfigInput{
		WorkDirOverride:  *globals.workDir,
		ConfigPath:       *globals.configPath,
		ListFileOverride: *globals.listFile,
		Env:              env,
	})
	if err != nil {
		return o.Fail(err)
	}

	s := &session{
		cfg:   cfg,
		store: app.NewStore(cfg.ListFileAbs),
		stdin: stdin,
	}

	cmd := findCommand(commands(s), rest[0])
	if cmd == nil {
		o.ErrPrintln(fmt.Sprintf("error: %s: %s", ErrUnknownCommand, rest[0]))
		o.ErrPrintln()
		printUsage(o.ErrPrintln, globals.flags)

		return 1
	}

	return cmd.Run(ctx, o, rest[1:])
}

func printGlobalFlags(emit func(...any), fs *flag.FlagSet) {
	emit("Global flags:")
	emit(strings.TrimRight(fs.FlagUsages(), "\n"))
}

func printUsage(emit func(...any), fs *flag.FlagSet) {
	emit("tq - a task list with a compact query language")
	emit()
	emit("Usage: tq [global flags] <command> [args]")
	emit()
	printGlobalFlags(emit, fs)
	emit()
	emit("Commands:")

	for _, cmd := range commands(&session{}) {
		emit(cmd.HelpLine())
	}

	emit()
	emit("Run 'tq <command> --help' for details.")
}
