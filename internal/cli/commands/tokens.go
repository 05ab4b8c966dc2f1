package commands

import (
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/conradludgate/interim/pkg/parser"
	"github.com/conradludgate/interim/pkg/token"
)

// NewTokensCommand creates the tokens command.
func NewTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <expression>...",
		Short: "Print the token stream for an expression",
		Long: `Tokenize an expression without parsing it. Useful for seeing how an
input splits into words, numbers and punctuation before the grammar runs.`,
		Example: `  interim tokens 2018-04-01 12:34
  interim tokens next friday 8pm`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			toks := parser.Tokenize(strings.Join(args, " "))

			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"Span", "Type", "Literal"})
			for _, tok := range toks {
				if tok.Type == token.EOF {
					continue
				}
				t.AppendRow(table.Row{tok.Span().String(), tok.Type.String(), tok.Literal})
			}
			t.Render()
			return nil
		},
	}
}
