package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/grenewode/todo-queue/internal/query"
)

// ExplainCmd returns the explain command.
func ExplainCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("explain", flag.ContinueOnError),
		Usage: "explain [query...]",
		Short: "Show how a query parses",
		Long: `Print a query in canonical form, then each stage on its own line.

Grouping is made explicit with parentheses and statuses are spelled out
in full, so "!%work a b & c" prints as "!%working a (b & c)".`,
		Query:    true,
		Examples: []string{"explain \"!%work a b & c => #x\""},
		Exec: func(_ context.Context, o *IO, args []string) error {
			q, err := queryArgs(s, args, true)
			if err != nil {
				return err
			}

			o.Println("query:", q)

			for i, stage := range q.Stages() {
				o.Printf("stage %d: %s\n", i+1, query.StageString(stage))
			}

			return nil
		},
	}
}
