package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/grenewode/todo-queue/internal/app"
	"github.com/grenewode/todo-queue/internal/query"
)

// LsCmd returns the ls command.
func LsCmd(s *session) *Command {
	fs := flag.NewFlagSet("ls", flag.ContinueOnError)
	sortKeys := fs.String("sort", "", "Sort by comma-separated `keys` (name, status; prefix '-' for descending)")
	limit := fs.Int("limit", 0, "Show at most `n` items (0 shows all)")
	narrow := fs.Bool("narrow", false, "Filter each stage's matches with the next stage")
	unique := fs.Bool("unique", false, "Show each item once")

	return &Command{
		Flags: fs,
		Usage: "ls [query...] [flags]",
		Short: "List items a query selects",
		Long: `List the items a query selects, one per line, in selection order.

Each "=>" stage selects from the whole list and its matches follow the
previous stage's, so an item can appear more than once. With no query
the configured default_query is used.`,
		Query: true,
		Examples: []string{
			"ls %work",
			"ls \"#bug & !%completed\" --sort status,name",
			"ls \"%working => %queuing\" --limit 5",
		},
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execLs(o, s, args, *sortKeys, app.FindOptions{
				Limit:  *limit,
				Narrow: *narrow,
				Unique: *unique,
			})
		},
	}
}

func execLs(o *IO, s *session, args []string, sortKeys string, opts app.FindOptions) error {
	q, err := queryArgs(s, args, true)
	if err != nil {
		return err
	}

	opts.Sort, err = query.ParseSort(sortKeys)
	if err != nil {
		return err
	}

	rows, err := s.store.Find(q, opts)
	if err != nil {
		return err
	}

	for _, r := range rows {
		o.Println(formatRow(r))
	}

	return nil
}
