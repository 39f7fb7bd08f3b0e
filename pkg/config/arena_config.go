package config

// 竞技场布局常量
// 坐标系以窗口左上角为原点，X 向右，Y 向下
const (
	// GameWindowWidth 竞技场（逻辑屏幕）宽度
	GameWindowWidth = 463

	// GameWindowHeight 竞技场（逻辑屏幕）高度
	GameWindowHeight = 358

	// WindowScale 桌面窗口相对逻辑屏幕的放大倍数
	WindowScale = 2

	// WindowTitle 窗口标题
	WindowTitle = "Arena Survivor"
)

// Rect 屏幕上的轴对齐矩形（按钮热区）
// 左上角 + 宽高，与 pygame Rect 的语义一致
type Rect struct {
	X, Y, W, H float64
}

// Contains 判断点是否落在矩形内
// 右边界和下边界不包含在内
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Center 返回矩形中心点
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// 按钮布局
// 宽高均为整数，居中位置按整数除法取整
// NextRoundButton 与 ExitButton 位置相同：前者只在 playing 状态显示，后者只在 menu/dead 状态显示
var (
	StartButton       = Rect{X: GameWindowWidth/2 - 75, Y: GameWindowHeight/2 - 20, W: 150, H: 40}
	NextRoundButton   = Rect{X: GameWindowWidth/2 - 75, Y: GameWindowHeight/2 + 50, W: 150, H: 40}
	ExitButton        = Rect{X: GameWindowWidth/2 - 75, Y: GameWindowHeight/2 + 50, W: 150, H: 40}
	SoundToggleButton = Rect{X: GameWindowWidth - 100, Y: 10, W: 80, H: 30}
	MusicToggleButton = Rect{X: GameWindowWidth - 100, Y: 50, W: 80, H: 30}
)
