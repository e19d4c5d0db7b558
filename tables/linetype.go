package tables

import "slices"

const (
	LinetypeByLayer    = "ByLayer"
	LinetypeByBlock    = "ByBlock"
	LinetypeContinuous = "Continuous"
)

// Linetype 线型，Segments 为划线/空白长度，正数为线，负数为空，0 为点
type Linetype struct {
	Name        string
	Description string
	Segments    []float64
}

func NewLinetype(name, description string, segments ...float64) (*Linetype, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &Linetype{Name: name, Description: description, Segments: segments}, nil
}

func ByLayerLinetype() *Linetype { return &Linetype{Name: LinetypeByLayer} }

func ByBlockLinetype() *Linetype { return &Linetype{Name: LinetypeByBlock} }

func ContinuousLinetype() *Linetype {
	return &Linetype{Name: LinetypeContinuous, Description: "Solid line"}
}

// Length 一个图案周期的总长度
func (l *Linetype) Length() (length float64) {
	for _, s := range l.Segments {
		if s < 0 {
			s = -s
		}
		length += s
	}
	return
}

func (l *Linetype) Clone() *Linetype {
	if l == nil {
		return nil
	}
	return &Linetype{
		Name:        l.Name,
		Description: l.Description,
		Segments:    slices.Clone(l.Segments),
	}
}
