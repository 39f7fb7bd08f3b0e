package components

// PositionComponent 存储实体中心点的屏幕坐标
type PositionComponent struct {
	X, Y float64
}

// VelocityComponent 每帧位移
// 敌人和子弹在生成时确定，之后不再改变
type VelocityComponent struct {
	VX, VY float64
}
