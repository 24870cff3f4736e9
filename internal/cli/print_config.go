package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

// PrintConfigCmd returns the print-config command.
func PrintConfigCmd(s *session) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Show resolved configuration",
		Long: `Print the effective settings as key=value lines, then the config
files they were read from. Paths are absolute; an unset history file
prints as "(disabled)".`,
		Exec: func(_ context.Context, o *IO, _ []string) error {
			for _, kv := range configLines(s) {
				o.Println(kv[0] + "=" + kv[1])
			}

			o.Println()
			o.Println("# sources")

			sources := sourceLines(s)
			if len(sources) == 0 {
				o.Println("(defaults only)")
			}

			for _, kv := range sources {
				o.Println(kv[0] + "=" + kv[1])
			}

			return nil
		},
	}
}

func configLines(s *session) [][2]string {
	history := s.cfg.HistoryFileAbs
	if history == "" {
		history = "(disabled)"
	}

	return [][2]string{
		{"effective_cwd", s.cfg.EffectiveCwd},
		{"list_file", s.cfg.ListFileAbs},
		{"history_file", history},
		{"default_query", s.cfg.DefaultQuery},
	}
}

func sourceLines(s *session) [][2]string {
	var out [][2]string

	if s.cfg.Sources.Global != "" {
		out = append(out, [2]string{"global_config", s.cfg.Sources.Global})
	}

	if s.cfg.Sources.Project != "" {
		out = append(out, [2]string{"project_config", s.cfg.Sources.Project})
	}

	return out
}
