package main

import (
	"os"

	"github.com/YuminosukeSato/mdlp/pkg/log"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	logLevel string
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "mdlp",
		Short: "mdlp discretizes continuous features using class labels",
		Long: `A tool to learn MDLP cut points from labelled CSV data, inspect them,
and apply them to new data`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.SetupLogger(config.logLevel)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&(config.logLevel), "log-level", "l", "warn", "log level: debug, info, warn or error")
	rootCmd.AddCommand(versionCmd(), fitCmd(), transformCmd(), cutsCmd())
	return rootCmd
}
