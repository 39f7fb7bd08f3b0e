package systems

import "strconv"

// formatCounter 生成 "Label: n" 形式的 HUD 文本
func formatCounter(label string, value int) string {
	return label + ": " + strconv.Itoa(value)
}
