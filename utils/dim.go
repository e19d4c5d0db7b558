package utils

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/zooyer/dxfdim/entities"
)

// DiameterSymbol 文字中的直径符号控制码
const DiameterSymbol = "%%c"

var (
	reFormat = regexp.MustCompile(`\\[A-Za-z].*?;`)
	reNum    = regexp.MustCompile(`[0-9]+(\.[0-9]+)?`)
)

// GetCleanVal 去掉多行文字格式码后提取第一个数值
func GetCleanVal(text string) (float64, bool) {
	cleanText := reFormat.ReplaceAllString(text, "")
	if match := reNum.FindString(cleanText); match != "" {
		val, err := strconv.ParseFloat(match, 64)
		return val, err == nil
	}
	return 0, false
}

// precision 标注样式定义的精度，未设置样式时取整
func precision(dim entities.Dimension) int {
	if style := dim.Dimension().Style(); style != nil {
		return style.Precision
	}
	return 0
}

func round(val float64, precision int) float64 {
	p := math.Pow(10, float64(precision))
	return math.Round(val*p) / p
}

func GetDimValue(dim entities.Dimension) float64 {
	// 1. 如果有手动文字覆盖，直接按文字提取数字
	if text := dim.Dimension().UserText; text != "" && !strings.Contains(text, "<>") {
		if val, ok := GetCleanVal(text); ok {
			return val
		}
	}

	// 2. 根据样式精度进行四舍五入
	return round(dim.Measurement(), precision(dim))
}

// FormatMeasurement 标注上显示的文字，"<>" 替换为测量值
func FormatMeasurement(dim entities.Dimension) string {
	value := strconv.FormatFloat(round(dim.Measurement(), precision(dim)), 'f', precision(dim), 64)
	if dim.DimensionType() == entities.DimensionDiameter {
		value = DiameterSymbol + value
	}

	text := dim.Dimension().UserText
	switch {
	case text == "":
		return value
	case strings.Contains(text, "<>"):
		return strings.ReplaceAll(text, "<>", value)
	}
	return text
}
