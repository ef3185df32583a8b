package cli

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/jonathanmnovak/neo-capstone/model"
)

func (a *app) newInspectCommand() *cobra.Command {
	var (
		pdes    string
		name    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show one near-Earth object by designation or name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := a.loadDatabase()
			if err != nil {
				return err
			}

			var (
				neo *model.NearEarthObject
				ok  bool
			)
			if pdes != "" {
				neo, ok = database.GetNEOByDesignation(pdes)
			} else {
				neo, ok = database.GetNEOByName(name)
			}
			if !ok {
				fmt.Fprintln(cmd.ErrOrStderr(), "No matching NEOs exist in the database.")
				return errors.WithStack(model.ErrNEONotFound)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, neo)
			if verbose {
				for _, approach := range neo.Approaches() {
					fmt.Fprintf(out, "- %s\n", approach)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pdes, "pdes", "p", "", "primary designation of the NEO")
	cmd.Flags().StringVarP(&name, "name", "n", "", "IAU name of the NEO")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the NEO's close approaches")
	cmd.MarkFlagsMutuallyExclusive("pdes", "name")
	cmd.MarkFlagsOneRequired("pdes", "name")
	return cmd
}
