package commands

import (
	"log/slog"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/conradludgate/interim/internal/cli/config"
)

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	var allBackends bool

	cmd := &cobra.Command{
		Use:   "parse <expression>...",
		Short: "Parse a date expression and print the resolved instant",
		Long: `Parse an informal English date expression and resolve it against the base
instant (now, unless --base is given) using the configured calendar backend.`,
		Example: `  # Resolve against the system clock
  interim parse next friday 8pm

  # US month-first slash dates
  interim parse --dialect us 9/11

  # Reproducible output from a fixed base
  interim parse --base 2018-03-21T11:00:00+02:00 2 days ago

  # Compare the calendar backends side by side
  interim parse --all-backends 1 day 2 hours ago`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ConfigFrom(cmd)
			if err != nil {
				return err
			}
			logger := LoggerFrom(cmd)
			input := strings.Join(args, " ")
			if allBackends {
				return parseAllBackends(cmd, cfg, input, logger)
			}
			out, err := resolveInput(cfg, cfg.Backend, input, logger)
			if err != nil {
				return err
			}
			cmd.Println(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&allBackends, "all-backends", false, "Resolve with every backend and print a comparison table")
	return cmd
}

func parseAllBackends(cmd *cobra.Command, cfg *config.Config, input string, logger *slog.Logger) error {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"Backend", "Result"})
	for _, backend := range config.Backends {
		out, err := resolveInput(cfg, backend, input, logger)
		if err != nil {
			out = "error: " + err.Error()
		}
		t.AppendRow(table.Row{backend, out})
	}
	t.Render()
	return nil
}
