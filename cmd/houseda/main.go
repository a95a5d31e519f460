// Command houseda runs the housing-sales exploratory analysis pipeline.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/DimaChesnokov/ConnectPostgreSQL/config"
	"github.com/DimaChesnokov/ConnectPostgreSQL/pipeline"
	"github.com/DimaChesnokov/ConnectPostgreSQL/pkg/log"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "houseda",
	Short: "Exploratory analysis of the Nashville housing sales table",
	Long: `houseda connects to a PostgreSQL housing database, profiles the
numeric and categorical columns of a bounded sample, encodes categorical
columns, runs the fixed hypothesis tests and prints the correlation table
with a heatmap artifact.`,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full analysis pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		log.SetupLogger(cfg.LogLevel)
		return pipeline.Run(cmd.Context(), cfg, os.Stdout)
	},
}

var configInitCmd = &cobra.Command{
	Use:   "config-init [path]",
	Short: "Write the default configuration to a YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "houseda.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		cfg, err := config.Load("")
		if err != nil {
			return err
		}
		if err := config.Save(cfg, path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./houseda.yaml)")
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(configInitCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
