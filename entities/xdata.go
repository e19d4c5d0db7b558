package entities

import (
	"slices"
	"sort"

	"github.com/zooyer/dxfdim/core"
	"github.com/zooyer/dxfdim/tables"
)

// XDataStringCode 等扩展数据常用组码
const (
	XDataStringCode  = 1000
	XDataControlCode = 1002
	XDataRealCode    = 1040
	XDataIntCode     = 1070
)

// XData 挂在实体上的一组扩展数据，归属于某个应用程序名
type XData struct {
	AppID   string
	Records []core.Tag
}

func NewXData(appID string) (*XData, error) {
	if !tables.ValidName(appID) {
		return nil, core.OutOfRange("appID", appID, "invalid application registry name")
	}
	return &XData{AppID: appID}, nil
}

// Add 追加一条记录
func (x *XData) Add(code int, value string) {
	x.Records = append(x.Records, core.Tag{Code: code, Value: value})
}

func (x *XData) Clone() *XData {
	if x == nil {
		return nil
	}
	return &XData{AppID: x.AppID, Records: slices.Clone(x.Records)}
}

// XDataDictionary 按应用程序名(大小写不敏感)索引的扩展数据
type XDataDictionary struct {
	items map[string]*XData
}

func NewXDataDictionary() *XDataDictionary {
	return &XDataDictionary{items: make(map[string]*XData)}
}

// Add 同名应用的记录追加到已有条目之后
func (d *XDataDictionary) Add(x *XData) error {
	if x == nil {
		return core.NilArgument("xdata")
	}
	key := tables.Key(x.AppID)
	if exist, ok := d.items[key]; ok {
		exist.Records = append(exist.Records, x.Records...)
		return nil
	}
	d.items[key] = x
	return nil
}

func (d *XDataDictionary) Get(appID string) (*XData, bool) {
	x, ok := d.items[tables.Key(appID)]
	return x, ok
}

func (d *XDataDictionary) Remove(appID string) bool {
	key := tables.Key(appID)
	if _, ok := d.items[key]; !ok {
		return false
	}
	delete(d.items, key)
	return true
}

func (d *XDataDictionary) Len() int { return len(d.items) }

// Values 按应用程序名排序
func (d *XDataDictionary) Values() []*XData {
	keys := make([]string, 0, len(d.items))
	for k := range d.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := make([]*XData, 0, len(keys))
	for _, k := range keys {
		values = append(values, d.items[k])
	}
	return values
}

func (d *XDataDictionary) Clone() *XDataDictionary {
	cp := NewXDataDictionary()
	if d == nil {
		return cp
	}
	for _, x := range d.Values() {
		_ = cp.Add(x.Clone())
	}
	return cp
}
