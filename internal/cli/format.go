package cli

import (
	"fmt"
	"strings"

	"github.com/grenewode/todo-queue/internal/app"
	"github.com/grenewode/todo-queue/internal/query"
	"github.com/grenewode/todo-queue/internal/script"
)

// queryArgs joins args into query text and parses it. With no args the
// configured default query is used, or ErrQueryRequired when
// useDefault is false.
func queryArgs(s *session, args []string, useDefault bool) (query.Query, error) {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		if !useDefault {
			return query.Query{}, ErrQueryRequired
		}

		text = s.cfg.DefaultQuery
	}

	return script.ParseQuery(text)
}

// formatRow renders one item as "@id [status] name #tag ...".
func formatRow(r app.Row) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %-11s %s", r.ID, "["+r.Status.String()+"]", r.Name)

	for _, tag := range r.Tags {
		b.WriteString(" #" + tag)
	}

	return b.String()
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}

	return fmt.Sprintf("%d %ss", n, word)
}

// warnNoMatch flags a mutation whose query selected nothing.
func warnNoMatch(o *IO, n int) {
	if n == 0 {
		o.Warn("query matched no items", "run 'tq ls <query>' or 'tq explain <query>' to check it")
	}
}
