package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func cutsCmd() *cobra.Command {
	var modelInput string
	cmd := &cobra.Command{
		Use:   "cuts",
		Short: "Print the cut points of a fitted discretizer as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			if modelInput == "" {
				return fmt.Errorf("required model flag was not set")
			}
			sm, err := loadModel(modelInput)
			if err != nil {
				return err
			}
			cf, err := newCutFile(sm)
			if err != nil {
				return err
			}
			return writeCutFile(cmd.OutOrStdout(), cf)
		},
	}
	cmd.Flags().StringVarP(&modelInput, "model", "m", "", "path to a discretizer written by fit (required)")
	return cmd
}
