package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfdim/core"
)

const sampleJob = `
styles:
  - name: ISO
    precision: 2
    arrow_size: 2.5
    text_gap: 0.625
dimensions:
  - circle: {center: [0, 0, 0], radius: 5}
    rotation: 90
    offset: 8
    style: ISO
  - arc: {center: [1, 1, 2], radius: 3, start: 0, end: 180}
    rotation: 0
    offset: 4
    layer: Holes
  - center: [0, 0]
    reference: [5, 0]
    offset: 0
    position: [0, 10]
    text: "<> THRU"
`

func TestLoadJob(t *testing.T) {
	job, err := LoadJob(strings.NewReader(sampleJob))
	require.NoError(t, err)
	require.Len(t, job.Styles, 1)
	require.Len(t, job.Dimensions, 3)
	require.NotNil(t, job.Dimensions[1].Arc)
	assert.Equal(t, 3.0, job.Dimensions[1].Arc.Radius)
	assert.Equal(t, 180.0, job.Dimensions[1].Arc.End)
}

func TestJobRun(t *testing.T) {
	job, err := LoadJob(strings.NewReader(sampleJob))
	require.NoError(t, err)

	doc, dims, err := job.Run()
	require.NoError(t, err)
	require.Len(t, dims, 3)
	assert.Len(t, doc.Blocks, 3)

	iso, ok := doc.DimStyle("iso")
	require.True(t, ok)
	assert.Same(t, iso, dims[0].Style())
	assert.Equal(t, 2, iso.Precision)
	assert.True(t, dims[0].ReferencePoint().Equal(core.NewVector2(0, 5), 1e-9))

	assert.Equal(t, 2.0, dims[1].Elevation)
	assert.Equal(t, "Holes", dims[1].LayerName())
	assert.InDelta(t, 6, dims[1].Measurement(), 1e-12)

	assert.True(t, dims[2].ReferencePoint().Equal(core.NewVector2(0, 5), 1e-9))
	assert.Equal(t, 10.0, dims[2].Offset())

	row := Row(2, dims[2])
	assert.True(t, strings.HasPrefix(row, "3,"+dims[2].Handle+",*D2,10.000000,10,%%c10.0000 THRU,"), row)
}

func TestJobRun_Errors(t *testing.T) {
	cases := map[string]string{
		"unknown style":   "dimensions:\n  - {center: [0, 0], reference: [1, 0], style: NONE}\n",
		"negative offset": "dimensions:\n  - {circle: {radius: 1}, offset: -1}\n",
		"zero radius":     "dimensions:\n  - {circle: {radius: 0}}\n",
		"bad coordinates": "dimensions:\n  - {center: [0], reference: [1, 0]}\n",
		"zero normal":     "dimensions:\n  - {arc: {radius: 1, normal: [0, 0, 0]}}\n",
		"bad precision":   "styles:\n  - {name: X, precision: 12}\n",
		"bad layer name":  "dimensions:\n  - {center: [0, 0], reference: [1, 0], layer: \"a|b\"}\n",
		"bad position":    "dimensions:\n  - {center: [0, 0], reference: [1, 0], position: [1, 2, 3]}\n",
	}

	for name, src := range cases {
		job, err := LoadJob(strings.NewReader(src))
		require.NoError(t, err, name)
		_, _, err = job.Run()
		assert.Error(t, err, name)
	}
}

func TestRun_WritesCSV(t *testing.T) {
	dir := t.TempDir()
	jobPath := filepath.Join(dir, "holes.yaml")
	require.NoError(t, os.WriteFile(jobPath, []byte(sampleJob), 0644))

	outFile = ""
	require.NoError(t, run(rootCmd, []string{jobPath}))

	data, err := os.ReadFile(filepath.Join(dir, "holes.csv"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, strings.TrimSpace(header), lines[0])
}
