package main

import (
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

type transformCmdConfig struct {
	input      string
	modelInput string
	output     string
}

func transformCmd() *cobra.Command {
	config := &transformCmdConfig{}
	cmd := &cobra.Command{
		Use:   "transform",
		Short: "Replace feature values with bin indices",
		Long: `Apply a fitted discretizer to a CSV file with the same feature columns.
The class column is optional and copied through when present`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if config.modelInput == "" {
				return fmt.Errorf("required model flag was not set")
			}
			return config.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&(config.input), "input", "i", "", "path to an input CSV file (defaults to STDIN)")
	cmd.Flags().StringVarP(&(config.modelInput), "model", "m", "", "path to a discretizer written by fit (required)")
	cmd.Flags().StringVarP(&(config.output), "output", "o", "", "path to write the binned CSV to (defaults to STDOUT)")
	return cmd
}

func (tcc *transformCmdConfig) run(cmd *cobra.Command) error {
	sm, err := loadModel(tcc.modelInput)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if tcc.input != "" {
		f, err := os.Open(tcc.input)
		if err != nil {
			return fmt.Errorf("reading input set from %s: %v", tcc.input, err)
		}
		defer f.Close()
		in = f
	}
	ds, err := readCSV(in, sm.Label)
	if err != nil {
		return err
	}
	if !slices.Equal(ds.features, sm.Features) {
		return fmt.Errorf("input columns %v do not match the fitted columns %v", ds.features, sm.Features)
	}

	binned, err := sm.Discretizer.Transform(ds.X)
	if err != nil {
		return err
	}

	var out io.Writer = cmd.OutOrStdout()
	if tcc.output != "" {
		f, err := os.Create(tcc.output)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}
	header := slices.Clone(ds.features)
	if ds.labels != nil {
		header = append(header, sm.Label)
	}
	return writeCSV(out, header, binned, ds.labels)
}
