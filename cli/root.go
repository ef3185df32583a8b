// Package cli implements the neo command tree.
package cli

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/jonathanmnovak/neo-capstone/config"
	"github.com/jonathanmnovak/neo-capstone/extract"
	"github.com/jonathanmnovak/neo-capstone/logger"
	"github.com/jonathanmnovak/neo-capstone/store"
)

// app carries the state shared by all subcommands. It is filled in by the
// root command's PersistentPreRunE.
type app struct {
	viper      *viper.Viper
	configPath string
	config     *config.Config
	logger     *zap.SugaredLogger
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{
		viper:  config.NewViper(),
		logger: logger.Nop(),
	}

	root := &cobra.Command{
		Use:   "neo",
		Short: "Explore near-Earth objects and their close approaches",
		Long: `neo loads a near-Earth object catalog (CSV) and a close-approach feed
(JSON), links them in memory, and answers lookups and filtered queries.

Examples:
  neo inspect --name Eros --verbose
  neo query --date 2020-01-01 --max-distance 0.1 --limit 5
  neo query --hazardous true --outfile results.csv
  neo search apoph
  neo serve --port 8080`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.String("neofile", "", "path to the near-Earth object CSV file")
	flags.String("cadfile", "", "path to the close-approach JSON file")
	flags.StringVar(&a.configPath, "config", "", "path to a YAML config file")
	flags.Bool("log-json", false, "write logs as JSON")
	flags.Bool("debug", false, "enable debug logging")

	// Flags take precedence over the environment and the config file
	_ = a.viper.BindPFlag("neofile", flags.Lookup("neofile"))
	_ = a.viper.BindPFlag("cadfile", flags.Lookup("cadfile"))
	_ = a.viper.BindPFlag("log_json", flags.Lookup("log-json"))
	_ = a.viper.BindPFlag("debug", flags.Lookup("debug"))

	root.AddCommand(
		a.newInspectCommand(),
		a.newQueryCommand(),
		a.newSearchCommand(),
		a.newServeCommand(),
	)
	return root
}

// Execute runs the command tree and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.viper, a.configPath)
	if err != nil {
		return err
	}
	a.config = cfg

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return errors.Wrap(err, "initialize logger")
	}
	a.logger = log
	return nil
}

// loadDatabase reads both input files and builds the linked database.
func (a *app) loadDatabase() (*store.Database, error) {
	neos, err := extract.LoadNEOs(a.config.NEOFile)
	if err != nil {
		return nil, err
	}
	approaches, err := extract.LoadApproaches(a.config.CADFile)
	if err != nil {
		return nil, err
	}
	return store.NewDatabase(neos, approaches, store.WithLogger(a.logger)), nil
}
