package entities

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zooyer/dxfdim/core"
)

func TestBaseEntitySetters(t *testing.T) {
	l := NewLine(core.Vector3Zero, core.NewVector3(3, 4, 0))
	assert.Equal(t, 5.0, l.Length())

	assert.ErrorIs(t, l.SetLayer(nil), core.ErrNilArgument)
	assert.ErrorIs(t, l.SetLinetype(nil), core.ErrNilArgument)
	assert.ErrorIs(t, l.SetColor(nil), core.ErrNilArgument)
	assert.ErrorIs(t, l.SetTransparency(nil), core.ErrNilArgument)
	assert.Equal(t, "0", l.LayerName())

	assert.ErrorIs(t, l.SetLinetypeScale(0), core.ErrOutOfRange)
	assert.Equal(t, 1.0, l.LinetypeScale())

	assert.ErrorIs(t, l.SetNormal(core.Vector3Zero), core.ErrOutOfRange)
	assert.Equal(t, core.Vector3UnitZ, l.Normal())
	require.NoError(t, l.SetNormal(core.NewVector3(0, 0, -4)))
	assert.Equal(t, core.NewVector3(0, 0, -1), l.Normal())
}

func TestCircle(t *testing.T) {
	_, err := NewCircle(core.Vector3Zero, 0)
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	c, err := NewCircle(core.NewVector3(1, 1, 0), 2)
	require.NoError(t, err)
	assert.ErrorIs(t, c.SetRadius(-1), core.ErrOutOfRange)
	assert.Equal(t, 2.0, c.Radius())

	box := c.BBox()
	assert.InDelta(t, -1, box.Min.X, 1e-12)
	assert.InDelta(t, 3, box.Max.Y, 1e-12)
	assert.InDelta(t, 0, box.Max.Z, 1e-12)

	cp := c.Clone().(*Circle)
	assert.Equal(t, c.Center(), cp.Center())
	assert.Equal(t, c.Radius(), cp.Radius())
	assert.NotSame(t, c.Layer(), cp.Layer())
}

func TestCircleBBox_Tilted(t *testing.T) {
	c, err := NewCircle(core.Vector3Zero, 1)
	require.NoError(t, err)
	require.NoError(t, c.SetNormal(core.Vector3UnitX))

	box := c.BBox()
	assert.InDelta(t, 0, box.Max.X, 1e-12)
	assert.InDelta(t, 1, box.Max.Y, 1e-12)
	assert.InDelta(t, 1, box.Max.Z, 1e-12)
}

func TestArc(t *testing.T) {
	a, err := NewArc(core.Vector3Zero, 1, -90, 90)
	require.NoError(t, err)
	assert.Equal(t, "ARC", a.Type())
	assert.Equal(t, 270.0, a.StartAngle())
	assert.Equal(t, 90.0, a.EndAngle())
	assert.Equal(t, 180.0, a.Sweep())

	a.SetEndAngle(270)
	assert.Equal(t, 360.0, a.Sweep())

	cp := a.Clone().(*Arc)
	assert.Equal(t, a.StartAngle(), cp.StartAngle())
	assert.Equal(t, "ARC", cp.Type())

	_, err = NewArc(core.Vector3Zero, -1, 0, 90)
	assert.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestXDataDictionary(t *testing.T) {
	_, err := NewXData("")
	assert.ErrorIs(t, err, core.ErrOutOfRange)

	d := NewXDataDictionary()
	assert.ErrorIs(t, d.Add(nil), core.ErrNilArgument)

	b, _ := NewXData("Beta")
	b.Add(XDataIntCode, "7")
	a, _ := NewXData("alpha")
	a.Add(XDataStringCode, "x")
	require.NoError(t, d.Add(b))
	require.NoError(t, d.Add(a))

	more, _ := NewXData("BETA")
	more.Add(XDataRealCode, "2.5")
	require.NoError(t, d.Add(more))

	assert.Equal(t, 2, d.Len())
	values := d.Values()
	require.Len(t, values, 2)
	assert.Equal(t, "alpha", values[0].AppID)
	assert.Equal(t, "Beta", values[1].AppID)
	require.Len(t, values[1].Records, 2)
	assert.Equal(t, 7, values[1].Records[0].AsInt())
	assert.Equal(t, 2.5, values[1].Records[1].AsFloat())

	assert.True(t, d.Remove("ALPHA"))
	assert.False(t, d.Remove("alpha"))
	_, ok := d.Get("alpha")
	assert.False(t, ok)
}

func TestBlockBBox(t *testing.T) {
	assert.Equal(t, core.BBox{}, (&Block{}).BBox())

	b := &Block{Entities: []Entity{
		NewLine(core.NewVector3(-1, 0, 0), core.NewVector3(1, 0, 0)),
		NewText("x", core.NewVector3(0, 3, 0), 1),
	}}
	box := b.BBox()
	assert.Equal(t, core.NewVector3(-1, 0, 0), box.Min)
	assert.Equal(t, core.NewVector3(1, 3, 0), box.Max)
}

func TestDimensionBase(t *testing.T) {
	d := NewDiametricDimension()
	assert.ErrorIs(t, d.SetStyle(nil), core.ErrNilArgument)
	assert.NotNil(t, d.Style())

	assert.ErrorIs(t, d.SetLineSpacingFactor(0.1), core.ErrOutOfRange)
	assert.ErrorIs(t, d.SetLineSpacingFactor(math.NaN()), core.ErrOutOfRange)
	assert.Equal(t, 1.0, d.LineSpacingFactor())

	assert.Equal(t, "Diameter", d.DimensionType().String())
	assert.True(t, MiddleCenter.Valid())
	assert.False(t, AttachmentPoint(0).Valid())
}
