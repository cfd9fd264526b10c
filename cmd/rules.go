package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "allurelint.dev/pkg/allurelint/internal/model"
)

// rulesCmd represents the rules command.
var rulesCmd = newRulesCmd()

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the diagnostic codes",
		Long:  "Print every diagnostic code allurelint can report together with its meaning.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			renderRulesTable(cmd.OutOrStdout(), m.Codes())
		},
	}
}

func renderRulesTable(w io.Writer, codes []m.Code) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Code", "Description"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, code := range codes {
		table.Append([]string{code.String(), code.Description()})
	}

	table.Render()
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
