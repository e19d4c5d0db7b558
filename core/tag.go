package core

import (
	"strconv"
	"strings"
)

// Tag 代表一组组码/值对，扩展数据记录也用它保存
type Tag struct {
	Code  int
	Value string
}

// AsFloat 将值转换为 float64
func (t Tag) AsFloat() float64 {
	f, _ := strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
	return f
}

// AsInt 将值转换为 int
func (t Tag) AsInt() int {
	i, _ := strconv.Atoi(strings.TrimSpace(t.Value))
	return i
}

// AsString 清洗字符串（去除多余空格）
func (t Tag) AsString() string {
	return strings.TrimSpace(t.Value)
}

// BBox 代表包围盒
type BBox struct {
	Min, Max Vector3
}

// NewBBox 求一组点的包围盒
func NewBBox(points ...Vector3) BBox {
	if len(points) == 0 {
		return BBox{}
	}
	box := BBox{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		box = box.Extend(p)
	}
	return box
}

func (b BBox) Extend(p Vector3) BBox {
	return BBox{
		Min: Vector3{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y), Z: min(b.Min.Z, p.Z)},
		Max: Vector3{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y), Z: max(b.Max.Z, p.Z)},
	}
}

func (b BBox) Union(o BBox) BBox {
	return b.Extend(o.Min).Extend(o.Max)
}
