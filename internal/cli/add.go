package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"
)

// AddCmd returns the add command.
func AddCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("add", flag.ContinueOnError),
		Usage: "add <text...>",
		Short: "Add an item",
		Long: `Add an item with status waiting and print its ID.

The text is "name #tag ...: description". Each #tag becomes a tag and
is removed from the name; everything after the first ':' is the
description.`,
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execAdd(o, s, args)
		},
	}
}

func execAdd(o *IO, s *session, args []string) error {
	text := strings.Join(args, " ")
	if strings.TrimSpace(text) == "" {
		return ErrTextRequired
	}

	id, err := s.store.Add(text)
	if err != nil {
		return err
	}

	o.Println(id.String())

	return nil
}
