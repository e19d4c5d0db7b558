package tables

import "github.com/zooyer/dxfdim/core"

const DefaultLayerName = "0"

type Layer struct {
	Name         string
	Color        *core.AciColor
	Linetype     *Linetype
	Lineweight   core.Lineweight
	Transparency *core.Transparency
	IsVisible    bool
	IsFrozen     bool
	IsLocked     bool
	Plot         bool
}

func NewLayer(name string) (*Layer, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	color, _ := core.NewAciColor(7)
	return &Layer{
		Name:         name,
		Color:        color,
		Linetype:     ContinuousLinetype(),
		Lineweight:   core.LineweightDefault,
		Transparency: &core.Transparency{},
		IsVisible:    true,
		Plot:         true,
	}, nil
}

// DefaultLayer 图层 "0"
func DefaultLayer() *Layer {
	layer, _ := NewLayer(DefaultLayerName)
	return layer
}

func (l *Layer) Clone() *Layer {
	if l == nil {
		return nil
	}
	cp := *l
	cp.Color = l.Color.Clone()
	cp.Linetype = l.Linetype.Clone()
	cp.Transparency = l.Transparency.Clone()
	return &cp
}
