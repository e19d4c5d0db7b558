package entities

import (
	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/tables"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Type() string
	LayerName() string
	BBox() core.BBox
	Clone() Entity
	Base() *BaseEntity
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Color, Handle）
type BaseEntity struct {
	TypeName      string
	Handle        string
	Lineweight    core.Lineweight
	IsVisible     bool
	XData         *XDataDictionary
	layer         *tables.Layer
	linetype      *tables.Linetype
	color         *core.AciColor
	transparency  *core.Transparency
	linetypeScale float64
	normal        core.Vector3
}

func newBaseEntity(typeName string) BaseEntity {
	return BaseEntity{
		TypeName:      typeName,
		Lineweight:    core.LineweightByLayer,
		IsVisible:     true,
		XData:         NewXDataDictionary(),
		layer:         tables.DefaultLayer(),
		linetype:      tables.ByLayerLinetype(),
		color:         core.ByLayerColor(),
		transparency:  core.ByLayerTransparency(),
		linetypeScale: 1.0,
		normal:        core.Vector3UnitZ,
	}
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Base() *BaseEntity { return b }

func (b *BaseEntity) LayerName() string {
	if b.layer == nil {
		return ""
	}
	return b.layer.Name
}

func (b *BaseEntity) Layer() *tables.Layer { return b.layer }

func (b *BaseEntity) SetLayer(layer *tables.Layer) error {
	if layer == nil {
		return core.NilArgument("layer")
	}
	b.layer = layer
	return nil
}

func (b *BaseEntity) Linetype() *tables.Linetype { return b.linetype }

func (b *BaseEntity) SetLinetype(linetype *tables.Linetype) error {
	if linetype == nil {
		return core.NilArgument("linetype")
	}
	b.linetype = linetype
	return nil
}

func (b *BaseEntity) Color() *core.AciColor { return b.color }

func (b *BaseEntity) SetColor(color *core.AciColor) error {
	if color == nil {
		return core.NilArgument("color")
	}
	b.color = color
	return nil
}

func (b *BaseEntity) Transparency() *core.Transparency { return b.transparency }

func (b *BaseEntity) SetTransparency(transparency *core.Transparency) error {
	if transparency == nil {
		return core.NilArgument("transparency")
	}
	b.transparency = transparency
	return nil
}

func (b *BaseEntity) LinetypeScale() float64 { return b.linetypeScale }

func (b *BaseEntity) SetLinetypeScale(scale float64) error {
	if scale <= 0 {
		return core.OutOfRange("linetypeScale", scale, "must be greater than zero")
	}
	b.linetypeScale = scale
	return nil
}

// Normal 实体所在平面的法向量，决定 OCS
func (b *BaseEntity) Normal() core.Vector3 { return b.normal }

// SetNormal 零向量无法确定平面，其余向量归一化后保存
func (b *BaseEntity) SetNormal(normal core.Vector3) error {
	if normal.IsZero() {
		return core.OutOfRange("normal", normal, "the normal can not be the zero vector")
	}
	b.normal = normal.Normalize()
	return nil
}

// cloneBase 深拷贝共享子对象，句柄不复制
func (b *BaseEntity) cloneBase() BaseEntity {
	cp := *b
	cp.Handle = ""
	cp.layer = b.layer.Clone()
	cp.linetype = b.linetype.Clone()
	cp.color = b.color.Clone()
	cp.transparency = b.transparency.Clone()
	cp.XData = b.XData.Clone()
	return cp
}

// EntityFactory 定义了如何创建一个默认实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}
