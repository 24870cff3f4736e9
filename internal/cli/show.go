package cli

import (
	"context"
	"strings"

	flag "github.com/spf13/pflag"
)

// ShowCmd returns the show command.
func ShowCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("show", flag.ContinueOnError),
		Usage: "show <id>",
		Short: "Show item details",
		Long:  "Display one item in full. The ID may be any unique prefix, with or without the leading '@'.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			return execShow(o, s, args)
		},
	}
}

func execShow(o *IO, s *session, args []string) error {
	switch {
	case len(args) == 0:
		return ErrIDRequired
	case len(args) > 1:
		return ErrTooManyArgs
	}

	r, err := s.store.Show(args[0])
	if err != nil {
		return err
	}

	tags := make([]string, len(r.Tags))
	for i, tag := range r.Tags {
		tags[i] = "#" + tag
	}

	o.Println("id:", r.ID.Full())
	o.Println("name:", r.Name)
	o.Println("status:", r.Status)
	o.Println("tags:", strings.Join(tags, " "))

	if r.Description != "" {
		o.Println()
		o.Println(r.Description)
	}

	return nil
}
