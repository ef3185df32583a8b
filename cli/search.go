package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) newSearchCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "search TERM",
		Short: "Fuzzy-search NEOs by name or designation",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := a.loadDatabase()
			if err != nil {
				return err
			}

			matches := database.SearchNEOs(strings.Join(args, " "), limit)
			out := cmd.OutOrStdout()
			if len(matches) == 0 {
				fmt.Fprintln(out, "No matching NEOs exist in the database.")
				return nil
			}
			for _, neo := range matches {
				fmt.Fprintln(out, neo.Fullname())
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 10, "maximum number of matches (0 for all)")
	return cmd
}
