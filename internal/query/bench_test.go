package query_test

import (
	"fmt"
	"testing"

	"github.com/grenewode/todo-queue/internal/interval"
	"github.com/grenewode/todo-queue/internal/list"
	"github.com/grenewode/todo-queue/internal/query"
)

func benchList(n int) *list.List {
	var l list.List

	for i := range n {
		l.Add(list.Desc{
			Name:   fmt.Sprintf("item-%d", i),
			Status: list.Statuses[i%len(list.Statuses)],
			Tags:   []string{fmt.Sprintf("t%d", i%10)},
		})
	}

	return &l
}

func BenchmarkSelect100k(b *testing.B) {
	l := benchList(100_000)
	q := query.From(query.OrOf(
		query.AndOf(query.ByTag("t3"), query.Negate(query.StatusIs(list.Completed))),
		query.ByName("item-42"),
	)).Then(query.ByStatus(interval.New(interval.Exclude(list.Waiting), interval.Include(list.Working))))

	for b.Loop() {
		_, err := q.Select(l)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNarrow100k(b *testing.B) {
	l := benchList(100_000)
	q := query.From(query.ByTag("t3")).Then(query.StatusIs(list.Working)).Then(query.ByName("item-43"))

	for b.Loop() {
		_, err := q.Narrow(l)
		if err != nil {
			b.Fatal(err)
		}
	}
}
