package cli_test

import (
	"strings"
	"testing"

	"github.com/grenewode/todo-queue/internal/cli"
)

func TestShellCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	script := strings.Join([]string{
		"add first #x",
		"",
		"add second",
		"status working #x",
		"ls %working",
		"bogus",
		"ls (a",
		"help",
		"shell",
		"exit",
		"add never",
	}, "\n")

	stdout, stderr, exitCode := c.RunWithInput(strings.NewReader(script), "shell")

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d\nstderr:\n%s", got, want, stderr)
	}

	cli.AssertContains(t, stdout, "Set 1 item to working")
	cli.AssertContains(t, stdout, "[working]   first #x")
	cli.AssertContains(t, stdout, "Commands:")
	cli.AssertContains(t, stdout, "Leave the shell")

	cli.AssertContains(t, stderr, "unknown command: bogus")
	cli.AssertContains(t, stderr, "syntax error")
	cli.AssertContains(t, stderr, "already in a shell")

	lsOut := c.MustRun("ls")
	cli.AssertContains(t, lsOut, "first")
	cli.AssertContains(t, lsOut, "second")
	cli.AssertNotContains(t, lsOut, "never")
}

func TestShellEndsAtEOF(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stdout, _, exitCode := c.RunWithInput(strings.NewReader("add only"), "shell")

	if got, want := exitCode, 0; got != want {
		t.Errorf("exitCode=%d, want=%d", got, want)
	}

	if !strings.HasPrefix(strings.TrimSpace(stdout), "@") {
		t.Errorf("stdout should hold the new ID, got %q", stdout)
	}

	cli.AssertContains(t, c.MustFail("shell", "extra"), "too many arguments")
}

func TestShellWithoutInput(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	if got := c.MustRun("shell"); got != "" {
		t.Errorf("stdout=%q, want empty", got)
	}
}
