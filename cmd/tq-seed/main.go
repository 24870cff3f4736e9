// Package main provides tq-seed, a tool to write large list files for
// timing queries.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	flag "github.com/spf13/pflag"

	"github.com/grenewode/todo-queue/internal/list"
)

func main() {
	counts := flag.IntSlice("count", []int{1000, 100000}, "Item counts to generate, one list file each")
	baseDir := flag.String("dir", filepath.Join(os.TempDir(), "tq-bench"), "Directory to write list files to")

	flag.Parse()

	for _, count := range *counts {
		path := filepath.Join(*baseDir, strconv.Itoa(count), ".todo.json")
		start := time.Now()

		err := seedList(path, count)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error seeding %d: %v\n", count, err)
			os.Exit(1)
		}

		fmt.Printf("Created %d items in %s -> %s\n", count, time.Since(start), path)
	}
}

var tagPool = []string{"bug", "feature", "chore", "urgent", "later"}

func seedList(path string, count int) error {
	var l list.List

	for i := 1; i <= count; i++ {
		l.Add(itemDesc(i))
	}

	return list.Save(path, &l)
}

// itemDesc varies status and tags for a realistic distribution.
func itemDesc(i int) list.Desc {
	status := list.Waiting

	switch {
	case i%5 == 0:
		status = list.Completed
	case i%7 == 0:
		status = list.Working
	case i%3 == 0:
		status = list.Queuing
	}

	tags := []string{tagPool[i%len(tagPool)]}
	if i%11 == 0 {
		tags = append(tags, "urgent")
	}

	return list.Desc{
		Name:        fmt.Sprintf("item-%06d", i),
		Description: fmt.Sprintf("Description for item %d.", i),
		Status:      status,
		Tags:        tags,
	}
}
