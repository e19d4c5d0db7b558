package dxf

import (
	"errors"
	"fmt"
	"math"

	"github.com/zooyer/golib/xmath"

	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/entities"
	"github.com/zooyer/dxfdim/utils"
)

var ErrUnsupportedDimension = errors.New("unsupported dimension type")

// offsetTolerance 偏移与半径相差在此范围内视为文字压在圆上
const offsetTolerance = 1e-6

func init() {
	entities.DefaultBlockBuilder = BuildDimensionBlock
}

// BuildDimensionBlock 默认的标注块生成函数
func BuildDimensionBlock(dim entities.Dimension, name string) (*entities.Block, error) {
	switch d := dim.(type) {
	case *entities.DiametricDimension:
		return buildDiametricBlock(d, name), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedDimension, dim.DimensionType())
}

// TextOffset 实际放置文字的偏移：接近半径时外推 2*DIMASZ+DIMGAP，再乘 DIMSCALE
func TextOffset(d *entities.DiametricDimension) float64 {
	style := d.Style()
	offset, radius := d.Offset(), d.Radius()
	if offset > 0 && xmath.Equal(offset, radius, offsetTolerance) {
		offset = radius + (2*style.ArrowSize+style.TextGap)*style.Scale
	}
	return offset
}

func buildDiametricBlock(d *entities.DiametricDimension, name string) *entities.Block {
	var (
		style    = d.Style()
		scale    = style.Scale
		center   = d.CenterPoint()
		radius   = d.Radius()
		rotation = d.Rotation()
		offset   = TextOffset(d)
		block    = &entities.Block{Name: name}
	)

	at := func(p core.Vector2) core.Vector3 {
		return core.Vector3{X: p.X, Y: p.Y, Z: d.Elevation}
	}
	add := func(e entities.Entity) {
		base := e.Base()
		_ = base.SetNormal(d.Normal())
		_ = base.SetLayer(d.Layer())
		if style.DimLineColor != nil {
			_ = base.SetColor(style.DimLineColor.Clone())
		}
		if style.DimLineLinetype != nil {
			_ = base.SetLinetype(style.DimLineLinetype.Clone())
		}
		block.Entities = append(block.Entities, e)
	}

	// 1. 标注线贯穿整个直径
	add(entities.NewLine(at(d.OppositePoint()), at(d.ReferencePoint())))

	// 2. 文字在圆外时，从参考点延长到文字处
	if offset > radius {
		add(entities.NewLine(at(d.ReferencePoint()), at(core.Polar(center, offset, rotation))))
	}

	// 3. 偏移为 0 时文字居中，不画圆心标记
	if mark := style.CenterMarkSize * scale; offset > 0 && mark > 0 {
		add(entities.NewLine(at(center.Add(core.Vector2{X: -mark})), at(center.Add(core.Vector2{X: mark}))))
		add(entities.NewLine(at(center.Add(core.Vector2{Y: -mark})), at(center.Add(core.Vector2{Y: mark}))))
	}

	// 4. 文字
	text := entities.NewText(utils.FormatMeasurement(d), at(core.Polar(center, offset, rotation)), style.TextHeight*scale)
	text.Rotation = textAngle(rotation * core.RadToDeg)
	text.AttachmentPoint = d.AttachmentPoint
	add(text)
	if style.TextColor != nil {
		_ = text.SetColor(style.TextColor.Clone())
	}

	return block
}

// textAngle 让文字始终朝上可读，角度范围 (-90, 90]
func textAngle(deg float64) float64 {
	deg = math.Round(core.NormalizeAngle(deg)*1e9) / 1e9
	switch {
	case deg > 270:
		deg -= 360
	case deg > 90:
		deg -= 180
	}
	return deg
}
