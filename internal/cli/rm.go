package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// RmCmd returns the rm command.
func RmCmd(s *session) *Command {
	fs := flag.NewFlagSet("rm", flag.ContinueOnError)
	narrow := fs.Bool("narrow", false, "Filter each stage's matches with the next stage")

	return &Command{
		Flags:    fs,
		Usage:    "rm <query...> [flags]",
		Short:    "Remove items a query selects",
		Query:    true,
		Examples: []string{"rm %completed"},
		Exec: func(_ context.Context, o *IO, args []string) error {
			q, err := queryArgs(s, args, false)
			if err != nil {
				return err
			}

			n, err := s.store.Remove(q, *narrow)
			if err != nil {
				return err
			}

			warnNoMatch(o, n)
			o.Println("Removed", plural(n, "item"))

			return nil
		},
	}
}
