package tables

import "github.com/zooyer/dxfdim/core"

const DefaultDimensionStyleName = "Standard"

// DimensionStyle 标注样式，字段后注释为对应的系统变量
type DimensionStyle struct {
	Name            string
	Precision       int     // DIMDEC，显示的小数位数
	ExtLineExtend   float64 // DIMEXE，标注线超出延伸线的长度
	Scale           float64 // DIMSCALE，全局比例，影响所有标注特征
	ArrowSize       float64 // DIMASZ
	TextGap         float64 // DIMGAP
	TextHeight      float64 // DIMTXT
	CenterMarkSize  float64 // DIMCEN
	DimLineColor    *core.AciColor
	DimLineLinetype *Linetype
	TextColor       *core.AciColor
}

func NewDimensionStyle(name string) (*DimensionStyle, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return &DimensionStyle{
		Name:            name,
		Precision:       4,
		ExtLineExtend:   0.18,
		Scale:           1.0, // 默认为 1.0，防止乘法归零
		ArrowSize:       0.18,
		TextGap:         0.09,
		TextHeight:      0.18,
		CenterMarkSize:  0.09,
		DimLineColor:    core.ByBlockColor(),
		DimLineLinetype: ByBlockLinetype(),
		TextColor:       core.ByBlockColor(),
	}, nil
}

// DefaultDimensionStyle 每次返回一个新的 "Standard" 样式
func DefaultDimensionStyle() *DimensionStyle {
	style, _ := NewDimensionStyle(DefaultDimensionStyleName)
	return style
}

// SetPrecision DIMDEC 取值 0-8
func (s *DimensionStyle) SetPrecision(precision int) error {
	if precision < 0 || precision > 8 {
		return core.OutOfRange("precision", precision, "must be between 0 and 8")
	}
	s.Precision = precision
	return nil
}

func (s *DimensionStyle) SetScale(scale float64) error {
	if scale <= 0 {
		return core.OutOfRange("scale", scale, "must be greater than zero")
	}
	s.Scale = scale
	return nil
}

func (s *DimensionStyle) Clone() *DimensionStyle {
	if s == nil {
		return nil
	}
	cp := *s
	cp.DimLineColor = s.DimLineColor.Clone()
	cp.DimLineLinetype = s.DimLineLinetype.Clone()
	cp.TextColor = s.TextColor.Clone()
	return &cp
}
