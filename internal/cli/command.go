package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	flag "github.com/spf13/pflag"
)

// Command is one tq subcommand.
type Command struct {
	// Flags holds the command's own flags. Global flags are parsed
	// before the command name and never reach it.
	Flags *flag.FlagSet

	// Usage follows "tq" in help: the command name, then its arguments,
	// e.g. "status <status> <query...> [flags]".
	Usage string

	// Short is the one-line summary in the command list.
	Short string

	// Long is the full help text. Short is used when empty.
	Long string

	// Query marks commands whose arguments are a query. Their help ends
	// with a summary of the query language.
	Query bool

	// Examples are command lines shown under "Examples:", without "tq".
	Examples []string

	// Exec runs the command with the arguments left after flag parsing.
	Exec func(ctx context.Context, o *IO, args []string) error
}

const querySyntaxHelp = `Query syntax:
  name            item named exactly "name"
  #tag            items tagged "tag"
  %stat           items with the status best matching "stat"
  [%a...%b)       status range; "[" "]" include an edge, "(" ")" exclude it
  a b             a or b
  a & b           a and b (binds tighter than or)
  !a              not a
  (a b) & c       grouping
  q1 => q2        run each stage, list results stage by stage
  all             every item (only as a whole stage)`

// Name returns the command name (first word of Usage).
func (c *Command) Name() string {
	name, _, _ := strings.Cut(c.Usage, " ")
	return name
}

// HelpLine returns the command's line in the global command list.
func (c *Command) HelpLine() string {
	return fmt.Sprintf("  %-30s %s", c.Usage, c.Short)
}

// PrintHelp prints "tq <cmd> --help".
func (c *Command) PrintHelp(o *IO) {
	o.Println("Usage: tq", c.Usage)
	o.Println()

	desc := c.Long
	if desc == "" {
		desc = c.Short
	}

	o.Println(desc)

	if c.Flags != nil && c.Flags.HasFlags() {
		var buf strings.Builder
		c.Flags.SetOutput(&buf)
		c.Flags.PrintDefaults()

		o.Println()
		o.Println("Flags:")
		o.Printf("%s", buf.String())
	}

	if len(c.Examples) > 0 {
		o.Println()
		o.Println("Examples:")

		for _, ex := range c.Examples {
			o.Println("  tq " + ex)
		}
	}

	if c.Query {
		o.Println()
		o.Printf("%s\n", querySyntaxHelp)
	}
}

// Run parses flags and executes the command, returning the exit code.
// Errors and warnings are written through o so their order is fixed.
func (c *Command) Run(ctx context.Context, o *IO, args []string) int {
	c.Flags.SetOutput(&strings.Builder{})

	err := c.Flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		c.PrintHelp(o)
		return o.Finish()
	}

	if err != nil {
		code := o.Fail(err)
		o.ErrPrintln()
		o.ErrPrintln("Run 'tq " + c.Name() + " --help' for usage.")

		return code
	}

	err = c.Exec(ctx, o, c.Flags.Args())
	if err != nil {
		return o.Fail(err)
	}

	return o.Finish()
}
