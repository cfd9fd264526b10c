package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"allurelint.dev/pkg/allurelint/internal/domain"
	m "allurelint.dev/pkg/allurelint/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [files...]",
		Short: "Browse diagnostics in a terminal viewer",
		Long: `Check the given files and browse the diagnostics in a scrollable terminal
viewer. With --report the saved report is shown instead and no file is read.
Short lists, and output that is not a terminal, are printed directly.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := viewWorkflow.View(cmd.Context(), domain.ViewArgs{
				Paths:   parsePaths(args),
				Report:  m.Path(viper.GetString(reportConfigKey)),
				Summary: true,
			})

			return err
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
