package entities

import (
	"math"

	"github.com/zooyer/dxfdim/core"
)

// Circular 可被直径标注测量的圆或圆弧，圆心为世界坐标
type Circular interface {
	Center() core.Vector3
	Radius() float64
	Normal() core.Vector3
}

type Circle struct {
	BaseEntity
	center core.Vector3
	radius float64
}

func init() {
	Register("CIRCLE", func() Entity {
		c, _ := NewCircle(core.Vector3Zero, 1)
		return c
	})
}

func NewCircle(center core.Vector3, radius float64) (*Circle, error) {
	c := &Circle{BaseEntity: newBaseEntity("CIRCLE"), center: center}
	if err := c.SetRadius(radius); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Circle) Center() core.Vector3 { return c.center }

func (c *Circle) SetCenter(center core.Vector3) { c.center = center }

func (c *Circle) Radius() float64 { return c.radius }

func (c *Circle) SetRadius(radius float64) error {
	if radius <= 0 {
		return core.OutOfRange("radius", radius, "the circle radius must be greater than zero")
	}
	c.radius = radius
	return nil
}

func (c *Circle) BBox() core.BBox {
	return circularBBox(c.center, c.radius, c.normal)
}

func (c *Circle) Clone() Entity {
	return &Circle{BaseEntity: c.cloneBase(), center: c.center, radius: c.radius}
}

// circularBBox 倾斜平面上的圆在各世界轴上的半宽为 r*sqrt(1-n²)
func circularBBox(center core.Vector3, radius float64, normal core.Vector3) core.BBox {
	n := normal.Normalize()
	e := core.Vector3{
		X: radius * math.Sqrt(math.Max(0, 1-n.X*n.X)),
		Y: radius * math.Sqrt(math.Max(0, 1-n.Y*n.Y)),
		Z: radius * math.Sqrt(math.Max(0, 1-n.Z*n.Z)),
	}
	return core.BBox{Min: center.Sub(e), Max: center.Add(e)}
}
