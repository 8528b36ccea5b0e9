package main

import (
	"fmt"
	"io"
	"math"

	"github.com/YuminosukeSato/mdlp/core/model"
	"github.com/YuminosukeSato/mdlp/pkg/errors"
	"github.com/YuminosukeSato/mdlp/preprocessing"
	yaml "gopkg.in/yaml.v2"
)

// savedModel is what fit writes to disk: the discretizer together with the
// CSV schema it was fitted on.
type savedModel struct {
	Features    []string
	Label       string
	Classes     []string
	Discretizer *preprocessing.MDLPDiscretizer
}

func loadModel(path string) (*savedModel, error) {
	sm := &savedModel{}
	if err := model.LoadModel(sm, path); err != nil {
		return nil, err
	}
	if sm.Discretizer == nil || !sm.Discretizer.IsFitted() {
		return nil, errors.Newf("%s does not hold a fitted discretizer", path)
	}
	return sm, nil
}

// cutFile is the human-readable YAML export of a fitted model.
type cutFile struct {
	Criterion string        `yaml:"criterion"`
	Label     string        `yaml:"label"`
	Classes   []string      `yaml:"classes"`
	Features  []featureCuts `yaml:"features"`
}

type featureCuts struct {
	Name      string    `yaml:"name"`
	Cuts      []float64 `yaml:"cuts"`
	Intervals []string  `yaml:"intervals"`
}

func newCutFile(sm *savedModel) (*cutFile, error) {
	d := sm.Discretizer
	cf := &cutFile{
		Criterion: d.Criterion.String(),
		Label:     sm.Label,
		Classes:   sm.Classes,
	}
	for _, j := range d.Columns {
		cuts, err := d.CutPoints(j)
		if err != nil {
			return nil, err
		}
		intervals, err := d.Intervals(j)
		if err != nil {
			return nil, err
		}
		fc := featureCuts{Name: sm.Features[j], Cuts: cuts}
		for _, iv := range intervals {
			fc.Intervals = append(fc.Intervals, fmt.Sprintf("(%s, %s]", bound(iv.Lo), bound(iv.Hi)))
		}
		cf.Features = append(cf.Features, fc)
	}
	return cf, nil
}

func bound(v float64) string {
	switch {
	case math.IsInf(v, -1):
		return "-inf"
	case math.IsInf(v, 1):
		return "inf"
	default:
		return fmt.Sprintf("%g", v)
	}
}

func writeCutFile(w io.Writer, cf *cutFile) error {
	out, err := yaml.Marshal(cf)
	if err != nil {
		return errors.Wrap(err, "encoding cut points as YAML")
	}
	_, err = w.Write(out)
	return errors.Wrap(err, "writing cut points")
}
