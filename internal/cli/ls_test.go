package cli_test

import (
	"strings"
	"testing"

	"github.com/grenewode/todo-queue/internal/cli"
)

// seedList adds a small list:
//
//	a: waiting
//	b: working, #x
//	c: queuing, #x #y
//	d: completed
func seedList(t *testing.T) *cli.CLI {
	t.Helper()

	c := cli.NewCLI(t)

	c.Add("a")
	c.Add("b #x")
	c.Add("c #x #y: the third one")
	c.Add("d")

	c.MustRun("status", "working", "b")
	c.MustRun("status", "%q", "c")
	c.MustRun("status", "Completed", "d")

	return c
}

// names returns the item name of each ls line, in order.
func names(stdout string) []string {
	var out []string

	for line := range strings.SplitSeq(strings.TrimSpace(stdout), "\n") {
		fields := strings.Fields(line)
		if len(fields) >= 3 {
			out = append(out, fields[2])
		}
	}

	return out
}

func TestLsCommand(t *testing.T) {
	t.Parallel()

	c := seedList(t)

	for _, tt := range []struct {
		name string
		args []string
		want []string
	}{
		{name: "default query lists everything", args: nil, want: []string{"a", "b", "c", "d"}},
		{name: "name", args: []string{"c"}, want: []string{"c"}},
		{name: "or by juxtaposition", args: []string{"a", "d"}, want: []string{"a", "d"}},
		{name: "tag", args: []string{"#x"}, want: []string{"b", "c"}},
		{name: "and", args: []string{"#x & %work"}, want: []string{"b"}},
		{name: "not", args: []string{"!#x"}, want: []string{"a", "d"}},
		{name: "status prefix", args: []string{"%queued"}, want: []string{"c"}},
		{name: "status range", args: []string{"(%waiting...%working]"}, want: []string{"b", "c"}},
		{name: "open range", args: []string{"[%working...]"}, want: []string{"b", "d"}},
		{name: "stages concatenate", args: []string{"#x", "=>", "#y"}, want: []string{"b", "c", "c"}},
		{name: "stages unique", args: []string{"--unique", "#x => #y"}, want: []string{"b", "c"}},
		{name: "stages narrow", args: []string{"--narrow", "#x => %work"}, want: []string{"b"}},
		{name: "sort", args: []string{"--sort=-status"}, want: []string{"d", "b", "c", "a"}},
		{name: "sort by two keys", args: []string{"--sort", "status,name", "all"}, want: []string{"a", "c", "b", "d"}},
		{name: "limit", args: []string{"--limit", "2", "--sort", "-name"}, want: []string{"d", "c"}},
		{name: "no match", args: []string{"zzz"}, want: nil},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stdout := c.MustRun(append([]string{"ls"}, tt.args...)...)

			if got, want := strings.Join(names(stdout), ","), strings.Join(tt.want, ","); got != want {
				t.Errorf("names=%q, want=%q\nstdout:\n%s", got, want, stdout)
			}
		})
	}
}

func TestLsLineFormat(t *testing.T) {
	t.Parallel()

	c := seedList(t)

	stdout := c.MustRun("ls", "c")

	if !strings.HasPrefix(stdout, "@") {
		t.Errorf("line should start with the item ID, got %q", stdout)
	}

	cli.AssertContains(t, stdout, "[queuing]")
	cli.AssertContains(t, stdout, "c #x #y")
	cli.AssertNotContains(t, stdout, "the third one")
}

func TestLsErrors(t *testing.T) {
	t.Parallel()

	c := seedList(t)

	for _, tt := range []struct {
		name       string
		args       []string
		wantStderr []string
	}{
		{
			name:       "unbalanced paren shows caret",
			args:       []string{"(a", "b"},
			wantStderr: []string{"syntax error at column 5", "(a b\n      ^"},
		},
		{
			name:       "ambiguous status",
			args:       []string{"%w"},
			wantStderr: []string{"ambiguous status"},
		},
		{
			name:       "unknown status",
			args:       []string{"%done"},
			wantStderr: []string{"unknown status"},
		},
		{
			name:       "missing ellipsis",
			args:       []string{"[%waiting %working]"},
			wantStderr: []string{"expected '...'"},
		},
		{
			name:       "priority does not evaluate",
			args:       []string{"*1"},
			wantStderr: []string{"not implemented"},
		},
		{
			name:       "unknown sort key",
			args:       []string{"--sort", "size"},
			wantStderr: []string{"unknown sort key"},
		},
		{
			name:       "negative limit",
			args:       []string{"--limit", "-1"},
			wantStderr: []string{"limit must be non-negative"},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			stderr := c.MustFail(append([]string{"ls"}, tt.args...)...)

			for _, want := range tt.wantStderr {
				cli.AssertContains(t, stderr, want)
			}
		})
	}
}
