package utils

import (
	"github.com/zooyer/dxfdim/core"
)

// ToWorld 将 OCS 平面上的点按法向量和高程转换到世界坐标
func ToWorld(p core.Vector2, elevation float64, normal core.Vector3) core.Vector3 {
	return core.Transform(core.Vector3{X: p.X, Y: p.Y, Z: elevation}, normal, core.Object, core.World)
}

// ToObject 世界坐标转到 OCS，返回平面内的点和高程
func ToObject(p, normal core.Vector3) (core.Vector2, float64) {
	ocs := core.Transform(p, normal, core.World, core.Object)
	return ocs.XY(), ocs.Z
}
