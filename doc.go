package dxf

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/entities"
	"github.com/zooyer/dxfdim/tables"
	"github.com/zooyer/dxfdim/utils"
)

var ErrDuplicateHandle = errors.New("entity handle already in use")

// Document 持有共享资源（图层、线型、标注样式）以及实体和标注块
type Document struct {
	Layers    map[string]*tables.Layer
	Linetypes map[string]*tables.Linetype
	DimStyles map[string]*tables.DimensionStyle
	Blocks    map[string]*entities.Block
	Entities  []entities.Entity
	handles   map[string]entities.Entity
	dimBlocks int
}

func NewDocument() *Document {
	doc := &Document{
		Layers:    make(map[string]*tables.Layer),
		Linetypes: make(map[string]*tables.Linetype),
		DimStyles: make(map[string]*tables.DimensionStyle),
		Blocks:    make(map[string]*entities.Block),
		Entities:  make([]entities.Entity, 0, 64),
		handles:   make(map[string]entities.Entity),
	}

	doc.AddLayer(tables.DefaultLayer())
	doc.AddLinetype(tables.ByLayerLinetype())
	doc.AddLinetype(tables.ByBlockLinetype())
	doc.AddLinetype(tables.ContinuousLinetype())
	doc.AddDimStyle(tables.DefaultDimensionStyle())

	return doc
}

// AddLayer 同名图层已存在时返回已有的那个
func (d *Document) AddLayer(layer *tables.Layer) *tables.Layer {
	key := tables.Key(layer.Name)
	if exist, ok := d.Layers[key]; ok {
		return exist
	}
	if layer.Linetype != nil {
		layer.Linetype = d.AddLinetype(layer.Linetype)
	}
	d.Layers[key] = layer
	return layer
}

func (d *Document) AddLinetype(linetype *tables.Linetype) *tables.Linetype {
	key := tables.Key(linetype.Name)
	if exist, ok := d.Linetypes[key]; ok {
		return exist
	}
	d.Linetypes[key] = linetype
	return linetype
}

func (d *Document) AddDimStyle(style *tables.DimensionStyle) *tables.DimensionStyle {
	key := tables.Key(style.Name)
	if exist, ok := d.DimStyles[key]; ok {
		return exist
	}
	d.DimStyles[key] = style
	return style
}

func (d *Document) DimStyle(name string) (*tables.DimensionStyle, bool) {
	style, ok := d.DimStyles[tables.Key(name)]
	return style, ok
}

// AddEntity 分配句柄，把实体引用的共享资源换成文档中的同名对象；标注同时生成匿名块 *D<n>
func (d *Document) AddEntity(entity entities.Entity) error {
	if entity == nil {
		return core.NilArgument("entity")
	}

	base := entity.Base()
	if _, ok := d.handles[base.Handle]; ok && base.Handle != "" {
		return fmt.Errorf("%w: %s", ErrDuplicateHandle, base.Handle)
	}

	if err := base.SetLayer(d.AddLayer(base.Layer())); err != nil {
		return err
	}
	if err := base.SetLinetype(d.AddLinetype(base.Linetype())); err != nil {
		return err
	}

	if dim, ok := entity.(entities.Dimension); ok {
		if err := d.addDimension(dim); err != nil {
			return err
		}
	}

	if base.Handle == "" {
		base.Handle = uuid.NewString()
	}
	d.handles[base.Handle] = entity
	d.Entities = append(d.Entities, entity)
	return nil
}

func (d *Document) addDimension(dim entities.Dimension) error {
	base := dim.Dimension()
	if err := base.SetStyle(d.AddDimStyle(base.Style())); err != nil {
		return err
	}

	name := fmt.Sprintf("*D%d", d.dimBlocks)
	block, err := dim.BuildBlock(name)
	if err != nil {
		return fmt.Errorf("build dimension block %s: %w", name, err)
	}
	d.dimBlocks++
	d.Blocks[block.Name] = block
	return nil
}

// UpdateDimension 标注被修改后（如 SetDimensionLinePosition）重新生成同名块
func (d *Document) UpdateDimension(dim entities.Dimension) error {
	old := dim.Dimension().Block()
	if old == nil {
		return fmt.Errorf("dimension %s has no block in this document", dim.Base().Handle)
	}
	block, err := dim.BuildBlock(old.Name)
	if err != nil {
		return err
	}
	d.Blocks[block.Name] = block
	return nil
}

func (d *Document) Entity(handle string) (entities.Entity, bool) {
	e, ok := d.handles[handle]
	return e, ok
}

func (d *Document) Dimensions() (dims []entities.Dimension) {
	for _, e := range d.Entities {
		if dim, ok := e.(entities.Dimension); ok {
			dims = append(dims, dim)
		}
	}
	return
}

// EntitiesNear 世界坐标包围盒与 box 相距不超过 gap 的实体
func (d *Document) EntitiesNear(box core.BBox, gap float64) (near []entities.Entity) {
	for _, e := range d.Entities {
		if !utils.IsSeparate(box, utils.GetEntityBBoxWCS(e), gap) {
			near = append(near, e)
		}
	}
	return
}

// EntitiesAt 包围盒包含该点的实体
func (d *Document) EntitiesAt(point core.Vector3) (hits []entities.Entity) {
	for _, e := range d.Entities {
		if utils.InBox(utils.GetEntityBBoxWCS(e), point) {
			hits = append(hits, e)
		}
	}
	return
}

// Extents 所有实体在世界坐标下的范围
func (d *Document) Extents() (box core.BBox) {
	for i, e := range d.Entities {
		if i == 0 {
			box = utils.GetEntityBBoxWCS(e)
			continue
		}
		box = box.Union(utils.GetEntityBBoxWCS(e))
	}
	return
}
