package cli

import (
	"github.com/spf13/cobra"

	"github.com/jonathanmnovak/neo-capstone/api"
)

func (a *app) newServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the database over a read-only HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			database, err := a.loadDatabase()
			if err != nil {
				return err
			}
			if a.config.APIKey == "" {
				a.logger.Warnw("No API key configured; /api/ endpoints will reject every request")
			}

			server := api.NewServer(database, a.config, api.WithLogger(a.logger))
			return server.Run(":" + a.config.Port)
		},
	}

	flags := cmd.Flags()
	flags.String("port", "", "HTTP listen port")
	flags.String("api-key", "", "key required in the X-API-Key header")
	flags.Float64("rate-limit", 0, "requests per second across all clients (0 disables)")
	flags.Int("rate-burst", 0, "burst size for the rate limit")

	_ = a.viper.BindPFlag("port", flags.Lookup("port"))
	_ = a.viper.BindPFlag("api_key", flags.Lookup("api-key"))
	_ = a.viper.BindPFlag("rate_limit", flags.Lookup("rate-limit"))
	_ = a.viper.BindPFlag("rate_burst", flags.Lookup("rate-burst"))
	return cmd
}
