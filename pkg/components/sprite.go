package components

// SpriteComponent 存储实体当前绘制的图像资源ID
// 渲染系统通过 ResourceManager 把资源ID解析为图像
type SpriteComponent struct {
	ImageID string
}
