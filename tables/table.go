// Package tables 文档级共享资源：图层、线型、标注样式
package tables

import (
	"strings"

	"github.com/zooyer/dxfdim/core"
)

const invalidNameChars = `\/:*?"<>|=;,` + "`"

// ValidName 表名不能为空，也不能包含保留字符
func ValidName(name string) bool {
	if strings.TrimSpace(name) == "" {
		return false
	}
	return !strings.ContainsAny(name, invalidNameChars)
}

func checkName(name string) error {
	if !ValidName(name) {
		return core.OutOfRange("name", name, "table object name is empty or contains invalid characters")
	}
	return nil
}

// Key 表名大小写不敏感，统一转为大写作为键
func Key(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
