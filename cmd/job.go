package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	dxf "github.com/zooyer/dxfdim"
	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/entities"
	"github.com/zooyer/dxfdim/tables"
	"github.com/zooyer/dxfdim/utils"
)

// Job 标注任务文件
type Job struct {
	Styles     []StyleConfig     `yaml:"styles"`
	Dimensions []DimensionConfig `yaml:"dimensions"`
}

type StyleConfig struct {
	Name       string   `yaml:"name"`
	Precision  *int     `yaml:"precision"`
	ArrowSize  *float64 `yaml:"arrow_size"`
	TextGap    *float64 `yaml:"text_gap"`
	TextHeight *float64 `yaml:"text_height"`
	CenterMark *float64 `yaml:"center_mark"`
	Scale      *float64 `yaml:"scale"`
}

type CircleConfig struct {
	Center []float64 `yaml:"center"`
	Radius float64   `yaml:"radius"`
	Normal []float64 `yaml:"normal"`
}

type ArcConfig struct {
	CircleConfig `yaml:",inline"`
	Start        float64 `yaml:"start"`
	End          float64 `yaml:"end"`
}

type DimensionConfig struct {
	Circle    *CircleConfig `yaml:"circle"`
	Arc       *ArcConfig    `yaml:"arc"`
	Center    []float64     `yaml:"center"`
	Reference []float64     `yaml:"reference"`
	Rotation  float64       `yaml:"rotation"`
	Offset    float64       `yaml:"offset"`
	Style     string        `yaml:"style"`
	Layer     string        `yaml:"layer"`
	Text      string        `yaml:"text"`
	Position  []float64     `yaml:"position"` // 可选：拖动标注线到该点
}

func OpenJob(filename string) (*Job, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadJob(file)
}

func LoadJob(r io.Reader) (*Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var job Job
	if err = yaml.Unmarshal(data, &job); err != nil {
		return nil, err
	}

	return &job, nil
}

func vector3(name string, vals []float64, def core.Vector3) (core.Vector3, error) {
	switch len(vals) {
	case 0:
		return def, nil
	case 2:
		return core.NewVector3(vals[0], vals[1], 0), nil
	case 3:
		return core.NewVector3(vals[0], vals[1], vals[2]), nil
	}
	return def, fmt.Errorf("%s: expected 2 or 3 coordinates, got %d", name, len(vals))
}

func vector2(name string, vals []float64) (core.Vector2, error) {
	if len(vals) != 2 {
		return core.Vector2{}, fmt.Errorf("%s: expected 2 coordinates, got %d", name, len(vals))
	}
	return core.NewVector2(vals[0], vals[1]), nil
}

func (c StyleConfig) build() (*tables.DimensionStyle, error) {
	style, err := tables.NewDimensionStyle(c.Name)
	if err != nil {
		return nil, err
	}
	if c.Precision != nil {
		if err = style.SetPrecision(*c.Precision); err != nil {
			return nil, err
		}
	}
	if c.Scale != nil {
		if err = style.SetScale(*c.Scale); err != nil {
			return nil, err
		}
	}
	for _, f := range []struct {
		src *float64
		dst *float64
	}{
		{c.ArrowSize, &style.ArrowSize},
		{c.TextGap, &style.TextGap},
		{c.TextHeight, &style.TextHeight},
		{c.CenterMark, &style.CenterMarkSize},
	} {
		if f.src != nil {
			*f.dst = *f.src
		}
	}
	return style, nil
}

func (c CircleConfig) points(name string) (center, normal core.Vector3, err error) {
	if center, err = vector3(name+".center", c.Center, core.Vector3Zero); err != nil {
		return
	}
	normal, err = vector3(name+".normal", c.Normal, core.Vector3UnitZ)
	return
}

func (c CircleConfig) build() (*entities.Circle, error) {
	center, normal, err := c.points("circle")
	if err != nil {
		return nil, err
	}
	circle, err := entities.NewCircle(center, c.Radius)
	if err != nil {
		return nil, err
	}
	if err = circle.SetNormal(normal); err != nil {
		return nil, err
	}
	return circle, nil
}

func (c ArcConfig) build() (*entities.Arc, error) {
	center, normal, err := c.points("arc")
	if err != nil {
		return nil, err
	}
	arc, err := entities.NewArc(center, c.Radius, c.Start, c.End)
	if err != nil {
		return nil, err
	}
	if err = arc.SetNormal(normal); err != nil {
		return nil, err
	}
	return arc, nil
}

func (c DimensionConfig) build(doc *dxf.Document) (*entities.DiametricDimension, error) {
	styleName := c.Style
	if styleName == "" {
		styleName = tables.DefaultDimensionStyleName
	}
	style, ok := doc.DimStyle(styleName)
	if !ok {
		return nil, fmt.Errorf("unknown dimension style %q", styleName)
	}

	var (
		dim *entities.DiametricDimension
		err error
	)
	switch {
	case c.Circle != nil:
		var circle *entities.Circle
		if circle, err = c.Circle.build(); err != nil {
			return nil, err
		}
		dim, err = entities.NewDiametricDimensionFromCircle(circle, c.Rotation, c.Offset, style)
	case c.Arc != nil:
		var arc *entities.Arc
		if arc, err = c.Arc.build(); err != nil {
			return nil, err
		}
		dim, err = entities.NewDiametricDimensionFromArc(arc, c.Rotation, c.Offset, style)
	default:
		var center, ref core.Vector2
		if center, err = vector2("center", c.Center); err != nil {
			return nil, err
		}
		if ref, err = vector2("reference", c.Reference); err != nil {
			return nil, err
		}
		dim, err = entities.NewDiametricDimensionFromPoints(center, ref, c.Offset, style)
	}
	if err != nil {
		return nil, err
	}

	dim.UserText = c.Text
	if c.Layer != "" {
		layer, err := tables.NewLayer(c.Layer)
		if err != nil {
			return nil, err
		}
		if err = dim.SetLayer(layer); err != nil {
			return nil, err
		}
	}
	if len(c.Position) > 0 {
		p, err := vector2("position", c.Position)
		if err != nil {
			return nil, err
		}
		dim.SetDimensionLinePosition(p)
	}

	return dim, nil
}

// Run 按任务文件构建文档，返回按顺序排列的标注
func (j *Job) Run() (*dxf.Document, []*entities.DiametricDimension, error) {
	doc := dxf.NewDocument()

	for i, sc := range j.Styles {
		style, err := sc.build()
		if err != nil {
			return nil, nil, fmt.Errorf("styles[%d]: %w", i, err)
		}
		// 任务文件中的样式覆盖默认样式
		doc.DimStyles[tables.Key(style.Name)] = style
	}

	dims := make([]*entities.DiametricDimension, 0, len(j.Dimensions))
	for i, dc := range j.Dimensions {
		dim, err := dc.build(doc)
		if err != nil {
			return nil, nil, fmt.Errorf("dimensions[%d]: %w", i, err)
		}
		if err = doc.AddEntity(dim); err != nil {
			return nil, nil, fmt.Errorf("dimensions[%d]: %w", i, err)
		}
		dims = append(dims, dim)
	}

	return doc, dims, nil
}

const header = "序号,句柄,块,直径,显示值,文字,偏移,参考点X,参考点Y,高程\n"

// Row 一条输出记录，文字中的逗号替换掉以免破坏 CSV
func Row(i int, dim *entities.DiametricDimension) string {
	var block string
	if b := dim.Block(); b != nil {
		block = b.Name
	}
	ref := dim.ReferencePoint()
	return fmt.Sprintf("%d,%s,%s,%.6f,%s,%s,%.6f,%.6f,%.6f,%.6f\n",
		i+1, dim.Handle, block, dim.Measurement(),
		fmt.Sprint(utils.GetDimValue(dim)), strings.ReplaceAll(utils.FormatMeasurement(dim), ",", " "),
		dim.Offset(), ref.X, ref.Y, dim.Elevation,
	)
}
