package entities

import (
	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/tables"
)

// DiametricDimension 直径标注。圆心和参考点位于 OCS，二者距离即半径
type DiametricDimension struct {
	DimensionBase
	center   core.Vector2
	refPoint core.Vector2
	offset   float64
	builder  BlockBuilder
}

func init() {
	Register("DIMENSION", func() Entity { return NewDiametricDimension() })
}

type options struct {
	transform core.TransformFunc
	builder   BlockBuilder
}

// Option 构造直径标注时的可选项
type Option func(*options)

// WithTransform 替换世界坐标到 OCS 的变换，默认 core.Transform
func WithTransform(transform core.TransformFunc) Option {
	return func(o *options) {
		if transform != nil {
			o.transform = transform
		}
	}
}

// WithBlockBuilder 指定生成显示块的函数，默认 DefaultBlockBuilder
func WithBlockBuilder(builder BlockBuilder) Option {
	return func(o *options) { o.builder = builder }
}

func newOptions(opts []Option) *options {
	o := &options{transform: core.Transform}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// NewDiametricDimension 圆心为原点、参考点为 X 单位点、偏移为 0 的默认标注
func NewDiametricDimension(opts ...Option) *DiametricDimension {
	d, _ := newDiametric(core.Vector2Zero, core.Vector2UnitX, 0, tables.DefaultDimensionStyle(), newOptions(opts))
	return d
}

// NewDiametricDimensionFromCircle 测量圆，rotation 为标注线角度(度)，offset 为参考点到文字的距离
func NewDiametricDimensionFromCircle(circle *Circle, rotation, offset float64, style *tables.DimensionStyle, opts ...Option) (*DiametricDimension, error) {
	if circle == nil {
		return nil, core.NilArgument("circle")
	}
	return newDiametricFrom(circle, rotation, offset, style, newOptions(opts))
}

// NewDiametricDimensionFromArc 同 NewDiametricDimensionFromCircle，起止角不参与计算
func NewDiametricDimensionFromArc(arc *Arc, rotation, offset float64, style *tables.DimensionStyle, opts ...Option) (*DiametricDimension, error) {
	if arc == nil {
		return nil, core.NilArgument("arc")
	}
	return newDiametricFrom(arc, rotation, offset, style, newOptions(opts))
}

// NewDiametricDimensionFromPoints 圆心和参考点直接取 OCS 坐标，不做变换
func NewDiametricDimensionFromPoints(center, referencePoint core.Vector2, offset float64, style *tables.DimensionStyle, opts ...Option) (*DiametricDimension, error) {
	return newDiametric(center, referencePoint, offset, style, newOptions(opts))
}

func newDiametricFrom(src Circular, rotation, offset float64, style *tables.DimensionStyle, o *options) (*DiametricDimension, error) {
	ocs := o.transform(src.Center(), src.Normal(), core.World, core.Object)
	center := ocs.XY()
	refPoint := core.Polar(center, src.Radius(), rotation*core.DegToRad)

	d, err := newDiametric(center, refPoint, offset, style, o)
	if err != nil {
		return nil, err
	}
	if err = d.SetNormal(src.Normal()); err != nil {
		return nil, err
	}
	d.Elevation = ocs.Z
	return d, nil
}

// newDiametric 所有构造方式最终都经过这里校验
func newDiametric(center, refPoint core.Vector2, offset float64, style *tables.DimensionStyle, o *options) (*DiametricDimension, error) {
	if !(offset >= 0) {
		return nil, core.OutOfRange("offset", offset, "the offset value cannot be negative")
	}
	if style == nil {
		return nil, core.NilArgument("style")
	}

	d := &DiametricDimension{
		DimensionBase: newDimensionBase(DimensionDiameter),
		center:        center,
		refPoint:      refPoint,
		offset:        offset,
		builder:       o.builder,
	}
	d.style = style
	return d, nil
}

// CenterPoint 圆心(OCS)
func (d *DiametricDimension) CenterPoint() core.Vector2 { return d.center }

func (d *DiametricDimension) SetCenterPoint(center core.Vector2) { d.center = center }

// ReferencePoint 圆或圆弧上的点(OCS)
func (d *DiametricDimension) ReferencePoint() core.Vector2 { return d.refPoint }

func (d *DiametricDimension) SetReferencePoint(refPoint core.Vector2) { d.refPoint = refPoint }

// Offset 圆心到标注文字的距离
func (d *DiametricDimension) Offset() float64 { return d.offset }

// SetOffset 为 0 时文字位于圆心；接近半径时由块生成按 2*DIMASZ+DIMGAP*DIMSCALE 外推
func (d *DiametricDimension) SetOffset(offset float64) error {
	if !(offset >= 0) {
		return core.OutOfRange("offset", offset, "the offset value cannot be negative")
	}
	d.offset = offset
	return nil
}

// Radius 由圆心和参考点推导，不单独保存
func (d *DiametricDimension) Radius() float64 {
	return core.Distance(d.center, d.refPoint)
}

// Measurement 实际测量值，即直径
func (d *DiametricDimension) Measurement() float64 {
	return 2 * core.Distance(d.center, d.refPoint)
}

// Rotation 标注线角度(弧度)，参考点与圆心重合时为 0
func (d *DiametricDimension) Rotation() float64 {
	return core.Angle(d.center, d.refPoint)
}

// SetDimensionLinePosition 根据标注线上的一点重新计算参考点和偏移，半径保持不变
func (d *DiametricDimension) SetDimensionLinePosition(point core.Vector2) {
	radius := core.Distance(d.center, d.refPoint)
	rotation := core.Angle(d.center, point)
	d.refPoint = core.Polar(d.center, radius, rotation)
	d.offset = core.Distance(d.center, point)
}

// OppositePoint 直径另一端的点
func (d *DiametricDimension) OppositePoint() core.Vector2 {
	return d.center.Mul(2).Sub(d.refPoint)
}

// TextPoint 文字位置，沿标注线方向距圆心 offset
func (d *DiametricDimension) TextPoint() core.Vector2 {
	return core.Polar(d.center, d.offset, d.Rotation())
}

// BBox OCS 内直径两端和文字位置的包围盒，Z 为高程
func (d *DiametricDimension) BBox() core.BBox {
	var points []core.Vector3
	for _, p := range []core.Vector2{d.refPoint, d.OppositePoint(), d.TextPoint()} {
		points = append(points, core.Vector3{X: p.X, Y: p.Y, Z: d.Elevation})
	}
	return core.NewBBox(points...)
}

// BuildBlock 生成显示标注的块，并记录为当前块
func (d *DiametricDimension) BuildBlock(name string) (*Block, error) {
	builder := d.builder
	if builder == nil {
		builder = DefaultBlockBuilder
	}
	if builder == nil {
		return nil, ErrNoBlockBuilder
	}

	block, err := builder(d, name)
	if err != nil {
		return nil, err
	}
	d.block = block
	return block, nil
}

// Clone 几何字段按值复制，共享子对象与扩展数据深拷贝
func (d *DiametricDimension) Clone() Entity {
	return &DiametricDimension{
		DimensionBase: d.cloneDimension(),
		center:        d.center,
		refPoint:      d.refPoint,
		offset:        d.offset,
		builder:       d.builder,
	}
}
