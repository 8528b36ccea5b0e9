package main

import (
	"fmt"
	"io"
	"os"

	"github.com/YuminosukeSato/mdlp/core/model"
	"github.com/YuminosukeSato/mdlp/pkg/log"
	"github.com/YuminosukeSato/mdlp/preprocessing"
	"github.com/spf13/cobra"
)

type fitCmdConfig struct {
	input           string
	labelColumn     string
	columns         []string
	modelOutput     string
	cutsOutput      string
	minIntervalSize int
	minDepth        int
	criterion       string
	cutPlacement    string
	missing         string
	jobs            int
}

func fitCmd() *cobra.Command {
	config := &fitCmdConfig{}
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Learn cut points from a labelled CSV file",
		Long: `Learn MDLP cut points for the numeric columns of a CSV file using the
class column, and save the fitted discretizer`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			return config.run(cmd)
		},
	}
	cmd.Flags().StringVarP(&(config.input), "input", "i", "", "path to an input CSV file with a header row (defaults to STDIN)")
	cmd.Flags().StringVarP(&(config.labelColumn), "label", "y", "", "name of the class column (required)")
	cmd.Flags().StringSliceVarP(&(config.columns), "columns", "c", nil, "columns to discretize (defaults to every feature column)")
	cmd.Flags().StringVarP(&(config.modelOutput), "model", "m", "", "path to write the fitted discretizer to (required)")
	cmd.Flags().StringVarP(&(config.cutsOutput), "cuts", "o", "", "path to write the cut points to as YAML")
	cmd.Flags().IntVar(&(config.minIntervalSize), "min-interval-size", 2, "minimum number of samples in an interval to attempt a split")
	cmd.Flags().IntVar(&(config.minDepth), "min-depth", 0, "split without the MDL test above this recursion depth")
	cmd.Flags().StringVar(&(config.criterion), "criterion", "fayyad_irani", "stopping criterion: fayyad_irani or kononenko")
	cmd.Flags().StringVar(&(config.cutPlacement), "cut-placement", "left_value", "cut position: left_value or midpoint")
	cmd.Flags().StringVar(&(config.missing), "missing", "error", "missing value policy: error or dedicated_bin")
	cmd.Flags().IntVarP(&(config.jobs), "jobs", "j", 0, "features fitted concurrently (defaults to the number of CPUs)")
	return cmd
}

func (fcc *fitCmdConfig) Validate() error {
	if fcc.labelColumn == "" {
		return fmt.Errorf("required label flag was not set")
	}
	if fcc.modelOutput == "" {
		return fmt.Errorf("required model flag was not set")
	}
	return nil
}

func (fcc *fitCmdConfig) options() ([]preprocessing.Option, error) {
	criterion, err := preprocessing.ParseCriterion(fcc.criterion)
	if err != nil {
		return nil, err
	}
	placement, err := preprocessing.ParseCutPlacement(fcc.cutPlacement)
	if err != nil {
		return nil, err
	}
	missing, err := preprocessing.ParseMissingValuePolicy(fcc.missing)
	if err != nil {
		return nil, err
	}
	return []preprocessing.Option{
		preprocessing.WithMinIntervalSize(fcc.minIntervalSize),
		preprocessing.WithMinDepth(fcc.minDepth),
		preprocessing.WithCriterion(criterion),
		preprocessing.WithCutPlacement(placement),
		preprocessing.WithMissingValuePolicy(missing),
		preprocessing.WithNJobs(fcc.jobs),
	}, nil
}

func (fcc *fitCmdConfig) run(cmd *cobra.Command) error {
	logger := log.GetLoggerWithName("cmd.fit")
	opts, err := fcc.options()
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if fcc.input != "" {
		f, err := os.Open(fcc.input)
		if err != nil {
			return fmt.Errorf("reading training set from %s: %v", fcc.input, err)
		}
		defer f.Close()
		in = f
	}
	ds, err := readCSV(in, fcc.labelColumn)
	if err != nil {
		return err
	}
	if ds.labels == nil {
		return fmt.Errorf("input has no column named %q", fcc.labelColumn)
	}
	if len(fcc.columns) > 0 {
		cols, err := columnIndices(ds.features, fcc.columns)
		if err != nil {
			return err
		}
		opts = append(opts, preprocessing.WithContinuousColumns(cols...))
	}

	y, classes := encodeClasses(ds.labels)
	d := preprocessing.NewMDLPDiscretizer(opts...)
	logger.Info("Fitting discretizer",
		log.SamplesKey, len(ds.labels),
		log.FeaturesKey, len(ds.features),
		log.ClassesKey, len(classes))
	if err := d.FitContext(cmd.Context(), ds.X, y); err != nil {
		return err
	}

	sm := &savedModel{
		Features:    ds.features,
		Label:       fcc.labelColumn,
		Classes:     classes,
		Discretizer: d,
	}
	if err := model.SaveModel(sm, fcc.modelOutput); err != nil {
		return err
	}
	logger.Info("Model saved", "path", fcc.modelOutput)

	if fcc.cutsOutput == "" {
		return nil
	}
	cf, err := newCutFile(sm)
	if err != nil {
		return err
	}
	f, err := os.Create(fcc.cutsOutput)
	if err != nil {
		return err
	}
	defer f.Close()
	return writeCutFile(f, cf)
}
