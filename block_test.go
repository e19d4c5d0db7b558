package dxf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/entities"
	"github.com/zooyer/dxfdim/tables"
)

func newCircleDim(t *testing.T, radius, rotation, offset float64) *entities.DiametricDimension {
	t.Helper()
	circle, err := entities.NewCircle(core.Vector3Zero, radius)
	require.NoError(t, err)
	d, err := entities.NewDiametricDimensionFromCircle(circle, rotation, offset, tables.DefaultDimensionStyle())
	require.NoError(t, err)
	return d
}

func collect(block *entities.Block) (lines []*entities.Line, texts []*entities.Text) {
	for _, e := range block.Entities {
		switch v := e.(type) {
		case *entities.Line:
			lines = append(lines, v)
		case *entities.Text:
			texts = append(texts, v)
		}
	}
	return
}

func TestBuildDimensionBlock_Outside(t *testing.T) {
	d := newCircleDim(t, 5, 0, 8)

	block, err := d.BuildBlock("*D0")
	require.NoError(t, err)
	assert.Equal(t, "*D0", block.Name)

	lines, texts := collect(block)
	require.Len(t, lines, 4)
	require.Len(t, texts, 1)

	assert.True(t, lines[0].Start.Equal(core.NewVector3(-5, 0, 0), 1e-9))
	assert.True(t, lines[0].End.Equal(core.NewVector3(5, 0, 0), 1e-9))
	assert.True(t, lines[1].End.Equal(core.NewVector3(8, 0, 0), 1e-9))

	assert.Equal(t, "%%c10.0000", texts[0].Value)
	assert.True(t, texts[0].Location.Equal(core.NewVector3(8, 0, 0), 1e-9))
	assert.Equal(t, entities.BottomCenter, texts[0].AttachmentPoint)
	for _, e := range block.Entities {
		assert.Equal(t, core.Vector3UnitZ, e.Base().Normal())
	}
}

func TestBuildDimensionBlock_Inside(t *testing.T) {
	d := newCircleDim(t, 5, 90, 3)

	block, err := BuildDimensionBlock(d, "*D1")
	require.NoError(t, err)

	lines, texts := collect(block)
	assert.Len(t, lines, 3)
	require.Len(t, texts, 1)
	assert.InDelta(t, 3, texts[0].Location.Y, 1e-9)
	assert.InDelta(t, 90, texts[0].Rotation, 1e-9)
}

func TestBuildDimensionBlock_ZeroOffset(t *testing.T) {
	d := newCircleDim(t, 5, 0, 0)

	block, err := BuildDimensionBlock(d, "*D2")
	require.NoError(t, err)

	lines, texts := collect(block)
	assert.Len(t, lines, 1)
	require.Len(t, texts, 1)
	assert.Equal(t, core.Vector3Zero, texts[0].Location)
}

func TestBuildDimensionBlock_OffsetOnCircle(t *testing.T) {
	d := newCircleDim(t, 5, 0, 5)
	style := d.Style()

	expected := 5 + (2*style.ArrowSize+style.TextGap)*style.Scale
	assert.InDelta(t, expected, TextOffset(d), 1e-12)

	block, err := BuildDimensionBlock(d, "*D3")
	require.NoError(t, err)
	_, texts := collect(block)
	require.Len(t, texts, 1)
	assert.InDelta(t, expected, texts[0].Location.X, 1e-9)
}

func TestBuildDimensionBlock_Elevation(t *testing.T) {
	circle, err := entities.NewCircle(core.NewVector3(0, 0, 4), 1)
	require.NoError(t, err)
	d, err := entities.NewDiametricDimensionFromCircle(circle, 0, 2, tables.DefaultDimensionStyle())
	require.NoError(t, err)

	block, err := BuildDimensionBlock(d, "*D4")
	require.NoError(t, err)
	for _, e := range block.Entities {
		box := e.BBox()
		assert.Equal(t, 4.0, box.Min.Z)
		assert.Equal(t, 4.0, box.Max.Z)
	}
}

type fakeDimension struct {
	*entities.DiametricDimension
}

func (fakeDimension) DimensionType() entities.DimensionType { return entities.DimensionLinear }

func TestBuildDimensionBlock_Unsupported(t *testing.T) {
	_, err := BuildDimensionBlock(fakeDimension{entities.NewDiametricDimension()}, "*D5")
	assert.ErrorIs(t, err, ErrUnsupportedDimension)
}

func TestTextAngle(t *testing.T) {
	for in, expected := range map[float64]float64{0: 0, 90: 90, 135: -45, 180: 0, 270: 90, 300: -60} {
		assert.InDelta(t, expected, textAngle(in), 1e-9, "angle %v", in)
	}
}
