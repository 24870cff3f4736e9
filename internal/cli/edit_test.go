package cli_test

import (
	"os"
	"strings"
	"testing"

	"github.com/grenewode/todo-queue/internal/cli"
)

func TestAddCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	id := c.MustRun("add", "buy", "milk", "#errand:", "the oat kind")
	if !strings.HasPrefix(id, "@") || len(id) != 9 {
		t.Fatalf("add should print a short ID, got %q", id)
	}

	stdout := c.MustRun("show", id)
	cli.AssertContains(t, stdout, "name: buy milk")
	cli.AssertContains(t, stdout, "status: waiting")
	cli.AssertContains(t, stdout, "tags: #errand")
	cli.AssertContains(t, stdout, "the oat kind")

	info, err := os.Stat(c.ListFile())
	if err != nil {
		t.Fatalf("list file should exist: %v", err)
	}

	if got, want := info.Mode().Perm(), os.FileMode(0o600); got != want {
		t.Errorf("list file mode=%v, want=%v", got, want)
	}
}

func TestAddCommandErrors(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	cli.AssertContains(t, c.MustFail("add"), "item text is required")
	cli.AssertContains(t, c.MustFail("add", "#only", "#tags"), "item name cannot be empty")
}

func TestShowCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	id := c.Add("first")

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{name: "missing ID", args: []string{"show"}, wantStderr: "item ID is required"},
		{name: "extra args", args: []string{"show", id, id}, wantStderr: "too many arguments"},
		{name: "invalid ID", args: []string{"show", "@xyz"}, wantStderr: "invalid item ID"},
		{name: "unknown ID", args: []string{"show", strings.Repeat("0", 32)}, wantStderr: "item not found"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cli.AssertContains(t, c.MustFail(tt.args...), tt.wantStderr)
		})
	}

	stdout := c.MustRun("show", strings.TrimPrefix(id, "@")[:4])
	cli.AssertContains(t, stdout, "name: first")
}

func TestStatusCommand(t *testing.T) {
	t.Parallel()

	c := seedList(t)

	stdout := c.MustRun("status", "%completed", "#x")
	cli.AssertContains(t, stdout, "Set 2 items to completed")

	stdout = c.MustRun("ls", "%completed")
	if got, want := strings.Join(names(stdout), ","), "b,c,d"; got != want {
		t.Errorf("completed=%q, want=%q", got, want)
	}

	stdout = c.MustRun("status", "wait", "--narrow", "%completed => b")
	cli.AssertContains(t, stdout, "Set 1 item to waiting")

	cli.AssertContains(t, c.MustFail("status"), "status is required")
	cli.AssertContains(t, c.MustFail("status", "working"), "query is required")
	cli.AssertContains(t, c.MustFail("status", "w", "a"), "ambiguous status")
	cli.AssertContains(t, c.MustFail("status", "working", "a &"), "syntax error")
}

func TestTagCommands(t *testing.T) {
	t.Parallel()

	c := seedList(t)

	stdout := c.MustRun("tag", "#urgent", "a d")
	cli.AssertContains(t, stdout, "Tagged 2 items with #urgent")

	stdout = c.MustRun("ls", "#urgent")
	if got, want := strings.Join(names(stdout), ","), "a,d"; got != want {
		t.Errorf("tagged=%q, want=%q", got, want)
	}

	stdout = c.MustRun("untag", "x", "all")
	cli.AssertContains(t, stdout, "Untagged 4 items with #x")

	stdout = c.MustRun("ls", "#x")
	if stdout != "" {
		t.Errorf("no item should carry #x, got:\n%s", stdout)
	}

	cli.AssertContains(t, c.MustFail("tag"), "tag is required")
	cli.AssertContains(t, c.MustFail("tag", "#", "a"), "invalid tag name")
	cli.AssertContains(t, c.MustFail("tag", "a:b", "a"), "invalid tag name")
	cli.AssertContains(t, c.MustFail("untag", "x"), "query is required")
}

func TestRmCommand(t *testing.T) {
	t.Parallel()

	c := seedList(t)

	stdout := c.MustRun("rm", "#x", "=>", "#y")
	cli.AssertContains(t, stdout, "Removed 2 items")

	stdout = c.MustRun("ls")
	if got, want := strings.Join(names(stdout), ","), "a,d"; got != want {
		t.Errorf("remaining=%q, want=%q", got, want)
	}

	cli.AssertContains(t, c.MustFail("rm"), "query is required")
}

func TestMutationWithoutMatchWarns(t *testing.T) {
	t.Parallel()

	c := seedList(t)
	before := c.ReadList()

	stdout, stderr, exitCode := c.Run("rm", "nothing-here")

	if got, want := exitCode, 1; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	cli.AssertContains(t, stdout, "Removed 0 items")
	cli.AssertContains(t, stderr, "warning: query matched no items")

	if after := c.ReadList(); after != before {
		t.Errorf("list file changed:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestMutationErrorLeavesList(t *testing.T) {
	t.Parallel()

	c := seedList(t)
	before := c.ReadList()

	stderr := c.MustFail("rm", "a => *2")
	cli.AssertContains(t, stderr, "not implemented")

	if after := c.ReadList(); after != before {
		t.Errorf("list file changed:\nbefore:\n%s\nafter:\n%s", before, after)
	}
}

func TestExplainCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout := c.MustRun("explain", "!%work", "a", "b", "&", "c", "=>", "%queued => #tag")

	cli.AssertContains(t, stdout, "query: !%working a (b & c) => %queuing => #tag")
	cli.AssertContains(t, stdout, "stage 1: !%working a (b & c)")
	cli.AssertContains(t, stdout, "stage 2: %queuing")
	cli.AssertContains(t, stdout, "stage 3: #tag")

	stdout = c.MustRun("explain")
	cli.AssertContains(t, stdout, "query: all")

	stdout = c.MustRun("explain", "(%Waiting...%Completed]")
	cli.AssertContains(t, stdout, "query: (%waiting...%completed]")

	stdout = c.MustRun("explain", "(all)", "=>", "*urgent")
	cli.AssertContains(t, stdout, "query: (all) => *urgent")
	cli.AssertContains(t, stdout, "stage 1: (all)")

	cli.AssertContains(t, c.MustFail("explain", "a =>"), "syntax error")
	cli.AssertContains(t, c.MustFail("explain", "%wombat"), "unknown status")
}
