package systems

import (
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Click 一次点击/触摸的位置
type Click struct {
	X, Y float64
}

// InputFrame 一帧内采集到的输入
type InputFrame struct {
	Move   MoveInput  // 持续按住的方向键
	Keys   []game.Key // 本帧刚按下的按键
	Clicks []Click    // 本帧刚发生的点击
}

// InputSource 输入来源，测试中可替换
type InputSource interface {
	Poll() InputFrame
}

// EbitenInput 从 Ebitengine 读取键盘、鼠标和触摸
type EbitenInput struct{}

// Poll 采集当前帧输入
// 方向键同时支持 WASD 和方向键
func (EbitenInput) Poll() InputFrame {
	frame := InputFrame{
		Move: MoveInput{
			Up:    utils.AnyKeyPressed(ebiten.KeyW, ebiten.KeyArrowUp),
			Down:  utils.AnyKeyPressed(ebiten.KeyS, ebiten.KeyArrowDown),
			Left:  utils.AnyKeyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
			Right: utils.AnyKeyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		},
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		frame.Keys = append(frame.Keys, game.KeyR)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		frame.Keys = append(frame.Keys, game.KeyEscape)
	}

	if pressed, x, y := utils.IsPointerJustPressed(); pressed {
		frame.Clicks = append(frame.Clicks, Click{X: float64(x), Y: float64(y)})
	}
	return frame
}

// InputSystem 把输入事件分发给 GameState
type InputSystem struct {
	gameState *game.GameState
	source    InputSource
}

// NewInputSystem 创建输入系统
func NewInputSystem(gs *game.GameState, source InputSource) *InputSystem {
	return &InputSystem{gameState: gs, source: source}
}

// Update 先分发按键和点击事件，再返回本帧的移动输入
func (s *InputSystem) Update() MoveInput {
	frame := s.source.Poll()

	for _, key := range frame.Keys {
		s.gameState.HandleKeyDown(key)
	}
	for _, click := range frame.Clicks {
		s.gameState.HandleMouseDown(click.X, click.Y)
	}

	return frame.Move
}
