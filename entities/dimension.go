package entities

import (
	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/tables"
)

// DimensionType 对应组码 70 的低 3 位
type DimensionType int

const (
	DimensionLinear DimensionType = iota
	DimensionAligned
	DimensionAngular
	DimensionDiameter
	DimensionRadius
	DimensionAngular3Point
	DimensionOrdinate
)

func (t DimensionType) String() string {
	switch t {
	case DimensionLinear:
		return "Linear"
	case DimensionAligned:
		return "Aligned"
	case DimensionAngular:
		return "Angular"
	case DimensionDiameter:
		return "Diameter"
	case DimensionRadius:
		return "Radius"
	case DimensionAngular3Point:
		return "Angular3Point"
	case DimensionOrdinate:
		return "Ordinate"
	}
	return "Unknown"
}

// LineSpacingStyle 多行文字行距样式
type LineSpacingStyle int

const (
	LineSpacingAtLeast LineSpacingStyle = iota + 1
	LineSpacingExact
)

const (
	MinLineSpacingFactor = 0.25
	MaxLineSpacingFactor = 4.0
)

// Dimension 所有标注类型的公共接口
type Dimension interface {
	Entity
	DimensionType() DimensionType
	Measurement() float64
	BuildBlock(name string) (*Block, error)
	Dimension() *DimensionBase
}

// DimensionBase 标注的公共属性
type DimensionBase struct {
	BaseEntity
	AttachmentPoint   AttachmentPoint
	LineSpacingStyle  LineSpacingStyle
	UserText          string  // 组码 1，空串或含 "<>" 时显示测量值
	Elevation         float64 // OCS 平面在世界坐标中的高度
	dimType           DimensionType
	style             *tables.DimensionStyle
	lineSpacingFactor float64
	block             *Block
}

func newDimensionBase(dimType DimensionType) DimensionBase {
	return DimensionBase{
		BaseEntity:        newBaseEntity("DIMENSION"),
		AttachmentPoint:   BottomCenter,
		LineSpacingStyle:  LineSpacingAtLeast,
		dimType:           dimType,
		style:             tables.DefaultDimensionStyle(),
		lineSpacingFactor: 1.0,
	}
}

func (d *DimensionBase) Dimension() *DimensionBase { return d }

func (d *DimensionBase) DimensionType() DimensionType { return d.dimType }

func (d *DimensionBase) Style() *tables.DimensionStyle { return d.style }

func (d *DimensionBase) SetStyle(style *tables.DimensionStyle) error {
	if style == nil {
		return core.NilArgument("style")
	}
	d.style = style
	return nil
}

func (d *DimensionBase) LineSpacingFactor() float64 { return d.lineSpacingFactor }

func (d *DimensionBase) SetLineSpacingFactor(factor float64) error {
	if !(factor >= MinLineSpacingFactor && factor <= MaxLineSpacingFactor) {
		return core.OutOfRange("lineSpacingFactor", factor, "must be between 0.25 and 4.0")
	}
	d.lineSpacingFactor = factor
	return nil
}

// Block 最近一次 BuildBlock 生成的块
func (d *DimensionBase) Block() *Block { return d.block }

func (d *DimensionBase) cloneDimension() DimensionBase {
	cp := *d
	cp.BaseEntity = d.cloneBase()
	cp.style = d.style.Clone()
	cp.block = nil
	return cp
}
