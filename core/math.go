package core

import "math"

const (
	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi

	// Epsilon 默认的浮点比较容差
	Epsilon = 1e-12
)

// CoordinateSystem 坐标系标记
type CoordinateSystem int

const (
	World  CoordinateSystem = iota // WCS 世界坐标系
	Object                         // OCS 对象坐标系
)

func (c CoordinateSystem) String() string {
	switch c {
	case World:
		return "WCS"
	case Object:
		return "OCS"
	}
	return "UNKNOWN"
}

// TransformFunc 在两个坐标系之间变换点，OCS 由平面法向量确定
type TransformFunc func(p, normal Vector3, from, to CoordinateSystem) Vector3

// arbitraryAxisLimit 任意轴算法阈值 1/64
const arbitraryAxisLimit = 1.0 / 64.0

// ArbitraryAxis 按 DXF 任意轴算法求 OCS 的三个轴
func ArbitraryAxis(normal Vector3) (ax, ay, az Vector3) {
	az = normal.Normalize()
	if math.Abs(az.X) < arbitraryAxisLimit && math.Abs(az.Y) < arbitraryAxisLimit {
		ax = Vector3UnitY.Cross(az).Normalize()
	} else {
		ax = Vector3UnitZ.Cross(az).Normalize()
	}
	ay = az.Cross(ax).Normalize()
	return
}

// Transform 世界坐标与对象坐标互转；法向量为 +Z 或 from == to 时原样返回
func Transform(p, normal Vector3, from, to CoordinateSystem) Vector3 {
	if from == to {
		return p
	}

	az := normal.Normalize()
	if az == Vector3UnitZ {
		return p
	}

	ax, ay, az := ArbitraryAxis(az)
	if from == World && to == Object {
		// 轴为正交基，逆矩阵即转置
		return Vector3{X: p.Dot(ax), Y: p.Dot(ay), Z: p.Dot(az)}
	}

	return ax.Mul(p.X).Add(ay.Mul(p.Y)).Add(az.Mul(p.Z))
}

// NormalizeAngle 将角度(度)规范到 [0, 360)
func NormalizeAngle(deg float64) float64 {
	a := math.Mod(deg, 360)
	if a < 0 {
		a += 360
	}
	return a
}
