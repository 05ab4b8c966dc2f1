package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/conradludgate/interim"
	"github.com/conradludgate/interim/pkg/core"
)

// NewDurationCommand creates the duration command.
func NewDurationCommand() *cobra.Command {
	var asSeconds bool

	cmd := &cobra.Command{
		Use:   "duration <expression>...",
		Short: "Parse a duration expression",
		Long: `Parse a purely relative expression such as "2 hours" or "3 weeks ago"
and print it as a single interval. Absolute dates and times of day are
rejected, as are expressions mixing calendar grains.`,
		Example: `  interim duration 2 hours
  interim duration 1 hour 30 minutes
  interim duration --seconds 3 weeks`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			iv, err := interim.ParseDuration(strings.Join(args, " "))
			if err != nil {
				return err
			}
			if asSeconds {
				switch iv.Kind {
				case core.IntervalSeconds:
					cmd.Printf("%d\n", iv.Amount)
				case core.IntervalDays:
					cmd.Printf("%d\n", iv.Amount*86400)
				default:
					return &core.DateError{Kind: core.ErrMixedInterval}
				}
				return nil
			}
			cmd.Println(iv.String())
			return nil
		},
	}

	cmd.Flags().BoolVar(&asSeconds, "seconds", false, "Print the total in seconds (months have no fixed length and are rejected)")
	return cmd
}
