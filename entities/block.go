package entities

import (
	"errors"

	"github.com/zooyer/dxfdim/core"
)

var ErrNoBlockBuilder = errors.New("no dimension block builder installed")

// Block 一组实体，标注的显示图形放在匿名块中
type Block struct {
	Name     string
	Entities []Entity
}

// BBox 块内所有实体的包围盒，空块返回零值
func (b *Block) BBox() core.BBox {
	if len(b.Entities) == 0 {
		return core.BBox{}
	}
	box := b.Entities[0].BBox()
	for _, e := range b.Entities[1:] {
		box = box.Union(e.BBox())
	}
	return box
}

// BlockBuilder 把标注转换成可显示的块
type BlockBuilder func(dim Dimension, name string) (*Block, error)

// DefaultBlockBuilder 未单独指定时使用，由上层包在 init 中安装
var DefaultBlockBuilder BlockBuilder
