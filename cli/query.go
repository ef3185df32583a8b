package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathanmnovak/neo-capstone/filters"
	"github.com/jonathanmnovak/neo-capstone/model"
	"github.com/jonathanmnovak/neo-capstone/writer"
)

// queryFlags lists the filter parameters exposed as flags, with the flag
// name derived by replacing underscores with hyphens.
var queryFlags = []struct {
	param string
	usage string
}{
	{filters.ParamDate, "only approaches on this date (YYYY-MM-DD)"},
	{filters.ParamStartDate, "only approaches on or after this date"},
	{filters.ParamEndDate, "only approaches on or before this date"},
	{filters.ParamMinDistance, "minimum approach distance in au"},
	{filters.ParamMaxDistance, "maximum approach distance in au"},
	{filters.ParamMinVelocity, "minimum relative velocity in km/s"},
	{filters.ParamMaxVelocity, "maximum relative velocity in km/s"},
	{filters.ParamMinDiameter, "minimum NEO diameter in km"},
	{filters.ParamMaxDiameter, "maximum NEO diameter in km"},
	{filters.ParamHazardous, "only (non-)hazardous NEOs: true or false"},
}

func flagName(param string) string {
	return strings.ReplaceAll(param, "_", "-")
}

func (a *app) newQueryCommand() *cobra.Command {
	var (
		limit   string
		outfile string
	)

	cmd := &cobra.Command{
		Use:   "query",
		Short: "List close approaches matching all given filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := filters.ParseOptions(func(param string) string {
				v, _ := cmd.Flags().GetString(flagName(param))
				return v
			})
			if err != nil {
				return err
			}
			n, err := model.NewLimit(limit)
			if err != nil {
				return err
			}

			database, err := a.loadDatabase()
			if err != nil {
				return err
			}

			results := filters.Limit(database.Query(filters.Create(opts)...), n.Int())

			if outfile != "" {
				if err := writer.Write(cmd.Context(), outfile, results); err != nil {
					return err
				}
				a.logger.Infow("Wrote results", "path", outfile)
				return nil
			}

			out := cmd.OutOrStdout()
			count := 0
			for approach := range results {
				fmt.Fprintln(out, approach)
				count++
			}
			a.logger.Debugw("Query finished", "results", count)
			return nil
		},
	}

	for _, f := range queryFlags {
		cmd.Flags().String(flagName(f.param), "", f.usage)
	}
	cmd.Flags().StringVarP(&limit, "limit", "l", "", "maximum number of results (default unlimited)")
	cmd.Flags().StringVarP(&outfile, "outfile", "o", "", "write results to a .csv, .json, .xlsx, .db or .sqlite file")
	return cmd
}
