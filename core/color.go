package core

import "fmt"

// AciColor AutoCAD 索引颜色，可选真彩色
type AciColor struct {
	Index        int16 // 0=ByBlock, 256=ByLayer
	R, G, B      uint8
	UseTrueColor bool
}

const (
	ColorByBlock int16 = 0
	ColorByLayer int16 = 256
)

func NewAciColor(index int16) (*AciColor, error) {
	if index < 0 || index > 256 {
		return nil, OutOfRange("index", index, "must be between 0 and 256")
	}
	return &AciColor{Index: index}, nil
}

func ByLayerColor() *AciColor { return &AciColor{Index: ColorByLayer} }

func ByBlockColor() *AciColor { return &AciColor{Index: ColorByBlock} }

// TrueColor 真彩色，Index 取 ByLayer 以外的近似值 7
func TrueColor(r, g, b uint8) *AciColor {
	return &AciColor{Index: 7, R: r, G: g, B: b, UseTrueColor: true}
}

func (c *AciColor) IsByLayer() bool { return !c.UseTrueColor && c.Index == ColorByLayer }

func (c *AciColor) IsByBlock() bool { return !c.UseTrueColor && c.Index == ColorByBlock }

func (c *AciColor) Clone() *AciColor {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func (c *AciColor) String() string {
	switch {
	case c.UseTrueColor:
		return fmt.Sprintf("%d;%d;%d", c.R, c.G, c.B)
	case c.IsByLayer():
		return "ByLayer"
	case c.IsByBlock():
		return "ByBlock"
	}
	return fmt.Sprint(c.Index)
}

// Lineweight 线宽，单位 0.01mm，负值为特殊取值
type Lineweight int16

const (
	LineweightDefault Lineweight = -3
	LineweightByBlock Lineweight = -2
	LineweightByLayer Lineweight = -1
)

// Transparency 透明度 0-90，-1 ByLayer，100 ByBlock
type Transparency struct {
	value int
}

const (
	TransparencyByLayer = -1
	TransparencyByBlock = 100
)

func NewTransparency(value int) (*Transparency, error) {
	if value != TransparencyByLayer && value != TransparencyByBlock && (value < 0 || value > 90) {
		return nil, OutOfRange("value", value, "must be between 0 and 90, or ByLayer/ByBlock")
	}
	return &Transparency{value: value}, nil
}

func ByLayerTransparency() *Transparency { return &Transparency{value: TransparencyByLayer} }

func (t *Transparency) Value() int { return t.value }

func (t *Transparency) IsByLayer() bool { return t.value == TransparencyByLayer }

func (t *Transparency) Clone() *Transparency {
	if t == nil {
		return nil
	}
	cp := *t
	return &cp
}
