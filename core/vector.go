package core

import (
	"math"

	"github.com/zooyer/golib/xmath"
)

// Vector2 代表 OCS 平面内的一个二维点
type Vector2 struct {
	X, Y float64
}

var (
	Vector2Zero  = Vector2{}
	Vector2UnitX = Vector2{X: 1}
	Vector2UnitY = Vector2{Y: 1}
)

func NewVector2(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

func (v Vector2) Add(o Vector2) Vector2 { return Vector2{X: v.X + o.X, Y: v.Y + o.Y} }

func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{X: v.X - o.X, Y: v.Y - o.Y} }

func (v Vector2) Mul(k float64) Vector2 { return Vector2{X: v.X * k, Y: v.Y * k} }

func (v Vector2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Equal 按容差比较两个点
func (v Vector2) Equal(o Vector2, epsilon float64) bool {
	return xmath.Equal(v.X, o.X, epsilon) && xmath.Equal(v.Y, o.Y, epsilon)
}

// Distance 两点之间的距离
func Distance(u, v Vector2) float64 {
	return v.Sub(u).Length()
}

// Angle 从 u 看向 v 的方向角，弧度，范围 [0, 2π)
func Angle(u, v Vector2) float64 {
	d := v.Sub(u)
	a := math.Atan2(d.Y, d.X)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// Polar 以 u 为圆心，按距离和角度(弧度)得到新点
func Polar(u Vector2, distance, angle float64) Vector2 {
	return Vector2{
		X: u.X + distance*math.Cos(angle),
		Y: u.Y + distance*math.Sin(angle),
	}
}

// Vector3 代表三维空间中的一个点或向量
type Vector3 struct {
	X, Y, Z float64
}

var (
	Vector3Zero  = Vector3{}
	Vector3UnitX = Vector3{X: 1}
	Vector3UnitY = Vector3{Y: 1}
	Vector3UnitZ = Vector3{Z: 1}
)

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{X: x, Y: y, Z: z}
}

func (v Vector3) Add(o Vector3) Vector3 { return Vector3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z} }

func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z} }

func (v Vector3) Mul(k float64) Vector3 { return Vector3{X: v.X * k, Y: v.Y * k, Z: v.Z * k} }

func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize 返回单位向量，零向量原样返回
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	if l == 0 {
		return Vector3{}
	}
	return v.Mul(1 / l)
}

func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3) Equal(o Vector3, epsilon float64) bool {
	return xmath.Equal(v.X, o.X, epsilon) && xmath.Equal(v.Y, o.Y, epsilon) && xmath.Equal(v.Z, o.Z, epsilon)
}

// XY 丢弃 Z 分量
func (v Vector3) XY() Vector2 {
	return Vector2{X: v.X, Y: v.Y}
}
