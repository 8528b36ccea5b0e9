package main

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v2"
)

const trainingCSV = `x,noise,class
1,0.5,a
2,0.5,a
3,0.5,a
4,0.5,a
5,0.5,b
6,0.5,b
7,0.5,b
8,0.5,b
`

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := cliParser()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestFitTransformCuts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "train.csv")
	modelPath := filepath.Join(dir, "mdlp.gob")
	cutsPath := filepath.Join(dir, "cuts.yaml")
	require.NoError(t, os.WriteFile(input, []byte(trainingCSV), 0o644))

	_, err := execute(t, "", "fit", "-i", input, "-y", "class", "-m", modelPath, "-o", cutsPath)
	require.NoError(t, err)

	raw, err := os.ReadFile(cutsPath)
	require.NoError(t, err)
	var cf cutFile
	require.NoError(t, yaml.Unmarshal(raw, &cf))
	assert.Equal(t, "fayyad_irani", cf.Criterion)
	assert.Equal(t, "class", cf.Label)
	assert.Equal(t, []string{"a", "b"}, cf.Classes)
	require.Len(t, cf.Features, 2)
	assert.Equal(t, "x", cf.Features[0].Name)
	assert.Equal(t, []float64{4}, cf.Features[0].Cuts)
	assert.Equal(t, []string{"(-inf, 4]", "(4, inf]"}, cf.Features[0].Intervals)
	assert.Empty(t, cf.Features[1].Cuts)

	out, err := execute(t, "", "cuts", "-m", modelPath)
	require.NoError(t, err)
	assert.Equal(t, string(raw), out)

	out, err = execute(t, "x,noise\n3.5,0.5\n4.5,9\n", "transform", "-m", modelPath)
	require.NoError(t, err)
	assert.Equal(t, "x,noise\n0,0\n1,0\n", out)

	out, err = execute(t, trainingCSV, "transform", "-m", modelPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	assert.Equal(t, "x,noise,class", lines[0])
	assert.Equal(t, "0,0,a", lines[4])
	assert.Equal(t, "1,0,b", lines[5])
}

func TestFitFromStdinWithColumns(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "mdlp.gob")
	_, err := execute(t, trainingCSV, "fit", "-y", "class", "-m", modelPath, "-c", "x", "--cut-placement", "midpoint")
	require.NoError(t, err)

	out, err := execute(t, "", "cuts", "-m", modelPath)
	require.NoError(t, err)
	var cf cutFile
	require.NoError(t, yaml.Unmarshal([]byte(out), &cf))
	require.Len(t, cf.Features, 1)
	assert.Equal(t, []float64{4.5}, cf.Features[0].Cuts)

	out, err = execute(t, "x,noise\n5,0.25\n", "transform", "-m", modelPath)
	require.NoError(t, err)
	assert.Equal(t, "x,noise\n1,0.25\n", out)
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "mdlp.gob")

	tests := []struct {
		name  string
		stdin string
		args  []string
	}{
		{name: "fit without label", args: []string{"fit", "-m", modelPath}},
		{name: "fit without model", args: []string{"fit", "-y", "class"}},
		{name: "unknown label column", stdin: trainingCSV, args: []string{"fit", "-y", "target", "-m", modelPath}},
		{name: "unknown discretized column", stdin: trainingCSV, args: []string{"fit", "-y", "class", "-m", modelPath, "-c", "z"}},
		{name: "bad criterion", stdin: trainingCSV, args: []string{"fit", "-y", "class", "-m", modelPath, "--criterion", "gini"}},
		{name: "missing value under error policy", stdin: "x,class\n1,a\nNA,b\n", args: []string{"fit", "-y", "class", "-m", modelPath}},
		{name: "transform without model", args: []string{"transform"}},
		{name: "transform with missing model file", args: []string{"transform", "-m", filepath.Join(dir, "absent.gob")}},
		{name: "cuts without model", args: []string{"cuts"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.stdin, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestTransformRejectsOtherColumns(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "mdlp.gob")
	_, err := execute(t, trainingCSV, "fit", "-y", "class", "-m", modelPath)
	require.NoError(t, err)

	_, err = execute(t, "noise,x\n0.5,1\n", "transform", "-m", modelPath)
	assert.ErrorContains(t, err, "do not match")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "mdlp v0.1.0\n", out)
}

func TestReadCSV(t *testing.T) {
	ds, err := readCSV(strings.NewReader("a,label,b\n1,x,NA\n?,y,2.5\n"), "label")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ds.features)
	assert.Equal(t, []string{"x", "y"}, ds.labels)
	assert.Equal(t, 1.0, ds.X.At(0, 0))
	assert.True(t, math.IsNaN(ds.X.At(0, 1)))
	assert.True(t, math.IsNaN(ds.X.At(1, 0)))
	assert.Equal(t, 2.5, ds.X.At(1, 1))

	ds, err = readCSV(strings.NewReader("a\n1\n"), "label")
	require.NoError(t, err)
	assert.Nil(t, ds.labels)

	_, err = readCSV(strings.NewReader("a,label\nfoo,x\n"), "label")
	assert.ErrorContains(t, err, `column "a"`)

	_, err = readCSV(strings.NewReader("a,label\n"), "label")
	assert.Error(t, err)

	_, err = readCSV(strings.NewReader("label\nx\n"), "label")
	assert.Error(t, err)
}

func TestEncodeClasses(t *testing.T) {
	y, classes := encodeClasses([]string{"setosa", "virginica", "setosa", "versicolor"})
	assert.Equal(t, []string{"setosa", "versicolor", "virginica"}, classes)
	assert.Equal(t, []float64{0, 2, 0, 1}, y.RawVector().Data)
}
