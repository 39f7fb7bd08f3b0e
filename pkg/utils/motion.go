package utils

import (
	"errors"
	"math"
)

// ErrZeroDistance 起点与目标点重合，无法确定方向
var ErrZeroDistance = errors.New("heading undefined: start equals target")

// Heading 计算从起点指向目标点、长度为 speed 的速度向量
//
// 方向只在调用时计算一次，调用方负责保存结果（敌人与子弹都是固定航向）。
//
// 参数:
//   - fromX, fromY: 起点
//   - toX, toY: 目标点
//   - speed: 每帧移动距离
//
// 返回:
//   - vx, vy: 每帧位移
//   - error: 起点与目标点重合时返回 ErrZeroDistance
func Heading(fromX, fromY, toX, toY, speed float64) (vx, vy float64, err error) {
	dx := toX - fromX
	dy := toY - fromY
	distance := math.Hypot(dx, dy)
	if distance == 0 {
		return 0, 0, ErrZeroDistance
	}
	return dx / distance * speed, dy / distance * speed, nil
}

// RectsOverlap 检查两个中心对齐的矩形是否重叠
// 仅边缘接触不算重叠
func RectsOverlap(x1, y1, w1, h1, x2, y2, w2, h2 float64) bool {
	return math.Abs(x1-x2)*2 < w1+w2 && math.Abs(y1-y2)*2 < h1+h2
}
