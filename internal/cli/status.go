package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/grenewode/todo-queue/internal/script"
)

// StatusCmd returns the status command.
func StatusCmd(s *session) *Command {
	fs := flag.NewFlagSet("status", flag.ContinueOnError)
	narrow := fs.Bool("narrow", false, "Filter each stage's matches with the next stage")

	return &Command{
		Flags: fs,
		Usage: "status <status> <query...> [flags]",
		Short: "Set the status of items a query selects",
		Long: `Set the status of every item a query selects.

The status is waiting, queuing, working or completed, with or without a
leading '%'. Any prefix naming a single status works, e.g. "work".`,
		Query: true,
		Examples: []string{
			"status work \"#bug & %queuing\"",
			"status %completed --narrow \"#release => %working\"",
		},
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return ErrStatusRequired
			}

			word := args[0]
			if !strings.HasPrefix(word, "%") {
				word = "%" + word
			}

			status, err := script.ParseStatus(word)
			if err != nil {
				return err
			}

			q, err := queryArgs(s, args[1:], false)
			if err != nil {
				return err
			}

			n, err := s.store.SetStatus(q, *narrow, status)
			if err != nil {
				return err
			}

			warnNoMatch(o, n)
			o.Printf("Set %s to %s\n", plural(n, "item"), status)

			return nil
		},
	}
}
