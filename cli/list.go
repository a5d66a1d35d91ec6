package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the tool catalog as plain text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer a.close()

			out := cmd.OutOrStdout()
			for _, t := range a.catalog.All() {
				fmt.Fprintf(out, "%-18s │ %-12s │ %-22s │ %s\n", t.ID, t.Category, t.Name, t.Command)
			}
			return nil
		},
	}
}
