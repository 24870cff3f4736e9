package cli

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	flag "github.com/spf13/pflag"
)

// TagCmd returns the tag command, or untag when set is false.
func TagCmd(s *session, set bool) *Command {
	name, short, verb := "tag", "Add a tag to items a query selects", "Tagged"
	if !set {
		name, short, verb = "untag", "Remove a tag from items a query selects", "Untagged"
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	narrow := fs.Bool("narrow", false, "Filter each stage's matches with the next stage")

	return &Command{
		Flags:    fs,
		Usage:    name + " <tag> <query...> [flags]",
		Short:    short,
		Query:    true,
		Examples: []string{name + " urgent \"[%queuing...%working]\""},
		Exec: func(_ context.Context, o *IO, args []string) error {
			if len(args) == 0 {
				return ErrTagRequired
			}

			tag, err := tagArg(args[0])
			if err != nil {
				return err
			}

			q, err := queryArgs(s, args[1:], false)
			if err != nil {
				return err
			}

			n, err := s.store.SetTag(q, *narrow, tag, set)
			if err != nil {
				return err
			}

			warnNoMatch(o, n)
			o.Printf("%s %s with #%s\n", verb, plural(n, "item"), tag)

			return nil
		},
	}
}

// tagArg accepts "tag" or "#tag". Tags cannot hold whitespace or ':'
// since item text could not express them.
func tagArg(arg string) (string, error) {
	tag := strings.TrimPrefix(arg, "#")
	if tag == "" || strings.ContainsFunc(tag, func(r rune) bool { return unicode.IsSpace(r) || r == ':' }) {
		return "", fmt.Errorf("%w: %q", ErrInvalidTagName, arg)
	}

	return tag, nil
}
