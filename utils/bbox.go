package utils

import (
	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/entities"
)

// IsSeparate 判断两个 BBox 在 XY 平面上是否完全分离
func IsSeparate(a, b core.BBox, gap float64) bool {
	return a.Max.X+gap < b.Min.X || a.Min.X-gap > b.Max.X ||
		a.Max.Y+gap < b.Min.Y || a.Min.Y-gap > b.Max.Y
}

func InBox(box core.BBox, point core.Vector3) bool {
	if point.X >= box.Min.X && point.X <= box.Max.X && point.Y >= box.Min.Y && point.Y <= box.Max.Y {
		return true
	}

	return false
}

// GetEntityBBoxWCS 世界坐标下的包围盒，直径标注的点位于 OCS 需要先转换
func GetEntityBBoxWCS(entity entities.Entity) core.BBox {
	switch e := entity.(type) {
	case *entities.DiametricDimension:
		var points []core.Vector3
		for _, p := range []core.Vector2{e.ReferencePoint(), e.OppositePoint(), e.TextPoint()} {
			points = append(points, ToWorld(p, e.Elevation, e.Normal()))
		}
		return core.NewBBox(points...)
	default:
		return e.BBox()
	}
}
