package entities

import "github.com/zooyer/dxfdim/core"

// Arc 圆弧，起止角为 OCS 内的角度(度)，逆时针
type Arc struct {
	Circle
	startAngle float64
	endAngle   float64
}

func init() {
	Register("ARC", func() Entity {
		a, _ := NewArc(core.Vector3Zero, 1, 0, 180)
		return a
	})
}

func NewArc(center core.Vector3, radius, startAngle, endAngle float64) (*Arc, error) {
	c, err := NewCircle(center, radius)
	if err != nil {
		return nil, err
	}
	c.TypeName = "ARC"
	return &Arc{
		Circle:     *c,
		startAngle: core.NormalizeAngle(startAngle),
		endAngle:   core.NormalizeAngle(endAngle),
	}, nil
}

func (a *Arc) StartAngle() float64 { return a.startAngle }

func (a *Arc) SetStartAngle(deg float64) { a.startAngle = core.NormalizeAngle(deg) }

func (a *Arc) EndAngle() float64 { return a.endAngle }

func (a *Arc) SetEndAngle(deg float64) { a.endAngle = core.NormalizeAngle(deg) }

// Sweep 圆弧扫过的角度(度)
func (a *Arc) Sweep() float64 {
	sweep := a.endAngle - a.startAngle
	if sweep <= 0 {
		sweep += 360
	}
	return sweep
}

// BBox 简化处理：取整圆的包围盒
func (a *Arc) BBox() core.BBox {
	return a.Circle.BBox()
}

func (a *Arc) Clone() Entity {
	return &Arc{
		Circle:     *a.Circle.Clone().(*Circle),
		startAngle: a.startAngle,
		endAngle:   a.endAngle,
	}
}
