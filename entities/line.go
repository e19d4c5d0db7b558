package entities

import (
	"github.com/zooyer/dxfdim/core"
)

type Line struct {
	BaseEntity
	Start, End core.Vector3
}

func init() {
	Register("LINE", func() Entity { return NewLine(core.Vector3Zero, core.Vector3Zero) })
}

func NewLine(start, end core.Vector3) *Line {
	return &Line{BaseEntity: newBaseEntity("LINE"), Start: start, End: end}
}

func (l *Line) Length() float64 {
	return l.End.Sub(l.Start).Length()
}

func (l *Line) BBox() core.BBox {
	return core.NewBBox(l.Start, l.End)
}

func (l *Line) Clone() Entity {
	return &Line{BaseEntity: l.cloneBase(), Start: l.Start, End: l.End}
}
