package entities

import "github.com/zooyer/dxfdim/core"

// AttachmentPoint 多行文字的对齐点，取值 1-9
type AttachmentPoint int

const (
	TopLeft AttachmentPoint = iota + 1
	TopCenter
	TopRight
	MiddleLeft
	MiddleCenter
	MiddleRight
	BottomLeft
	BottomCenter
	BottomRight
)

func (a AttachmentPoint) Valid() bool { return a >= TopLeft && a <= BottomRight }

// Text 标注块中的文字
type Text struct {
	BaseEntity
	Location        core.Vector3 // OCS 插入点，Z 为高程
	Value           string
	Height          float64
	Rotation        float64 // 度
	AttachmentPoint AttachmentPoint
}

func init() {
	Register("TEXT", func() Entity { return NewText("", core.Vector3Zero, 1) })
}

func NewText(value string, location core.Vector3, height float64) *Text {
	return &Text{
		BaseEntity:      newBaseEntity("TEXT"),
		Location:        location,
		Value:           value,
		Height:          height,
		AttachmentPoint: BottomLeft,
	}
}

func (t *Text) BBox() core.BBox {
	// 简化处理：文字暂时以插入点作为包围盒
	return core.BBox{Min: t.Location, Max: t.Location}
}

func (t *Text) Clone() Entity {
	cp := *t
	cp.BaseEntity = t.cloneBase()
	return &cp
}
