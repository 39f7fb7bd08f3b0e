package systems

import (
	"image/color"
	"log"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 资源ID
const (
	ImageBackground  = "IMAGE_BACKGROUND"
	ImageTitle       = "IMAGE_TITLE"
	ImageStartButton = "IMAGE_START_BUTTON"
	FontRegular      = "FONT_REGULAR"
)

// 字号
const (
	FontSizeHUD       = 20
	FontSizeToggle    = 20
	FontSizeButton    = 25
	FontSizeNextRound = 30
	FontSizeGameOver  = 60
)

var (
	colorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGreen = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	colorRed   = color.RGBA{R: 255, G: 0, B: 0, A: 255}

	// 图像缺失时的占位色
	placeholderColors = map[string]color.RGBA{
		"player": {R: 60, G: 140, B: 255, A: 255},
		"enemy":  {R: 200, G: 40, B: 40, A: 255},
		"bullet": {R: 255, G: 220, B: 0, A: 255},
	}
)

// ImageSource 按资源ID提供图像
type ImageSource interface {
	GetImageByID(resourceID string) *ebiten.Image
}

// FontSource 按资源ID和字号提供字体
type FontSource interface {
	LoadFontByID(resourceID string, size float64) (*text.GoTextFace, error)
}

// ButtonView 一个填充色按钮：底色矩形 + 居中白字
type ButtonView struct {
	Rect     config.Rect
	Label    string
	Fill     color.RGBA
	FontSize float64
}

// RenderSystem 绘制竞技场、实体和界面文字
//
// 绘制顺序：
//   - 菜单：背景、标题、开始按钮、退出按钮
//   - 游戏中：背景、玩家（存活时）、子弹、敌人、HUD、NEXT ROUND
//   - 死亡：游戏画面之上叠加死亡提示和两个按钮
//   - 所有状态最后绘制声音/音乐开关
//
// 按钮都是填充色矩形加居中白字，见 Buttons。
type RenderSystem struct {
	gameState *game.GameState
	images    ImageSource
	fonts     FontSource

	fontFailed bool
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(gs *game.GameState, images ImageSource, fonts FontSource) *RenderSystem {
	return &RenderSystem{
		gameState: gs,
		images:    images,
		fonts:     fonts,
	}
}

// Draw 根据当前状态绘制整帧
func (s *RenderSystem) Draw(screen *ebiten.Image) {
	s.drawBackground(screen)

	switch s.gameState.State {
	case game.StateMenu:
		s.drawMenu(screen)
	case game.StatePlaying:
		s.drawGame(screen)
	case game.StateDead:
		s.drawGame(screen)
		s.drawGameOverTitle(screen)
	}

	for _, button := range s.Buttons() {
		s.drawButton(screen, button)
	}
}

// Buttons 返回当前状态下可见的按钮（按绘制顺序）
// 声音/音乐开关总是最后绘制，开启为绿色，关闭为红色
func (s *RenderSystem) Buttons() []ButtonView {
	gs := s.gameState
	var buttons []ButtonView

	switch gs.State {
	case game.StateMenu:
		buttons = append(buttons, ButtonView{config.ExitButton, "SAIR", colorGreen, FontSizeButton})
	case game.StatePlaying, game.StateDead:
		if gs.RoundOver {
			buttons = append(buttons, ButtonView{config.NextRoundButton, "NEXT ROUND", colorGreen, FontSizeNextRound})
		}
		if gs.State == game.StateDead {
			buttons = append(buttons,
				ButtonView{config.StartButton, "Try Again!", colorGreen, FontSizeButton},
				ButtonView{config.ExitButton, "Exit", colorRed, FontSizeButton},
			)
		}
	}

	return append(buttons,
		ButtonView{config.SoundToggleButton, "SOM", toggleColor(gs.SoundEnabled), FontSizeToggle},
		ButtonView{config.MusicToggleButton, "MÚSICA", toggleColor(gs.MusicEnabled), FontSizeToggle},
	)
}

// HUDLines 返回左上角的计分文字
func (s *RenderSystem) HUDLines() []string {
	gs := s.gameState
	return []string{
		formatCounter("Score", gs.Score),
		formatCounter("World Record", gs.WorldRecord),
		formatCounter("Round", gs.RoundNum),
	}
}

func (s *RenderSystem) drawMenu(screen *ebiten.Image) {
	w, h := s.screenSize()
	if title := s.images.GetImageByID(ImageTitle); title != nil {
		s.drawImageCentered(screen, title, w/2-50, h/2-100)
	}

	cx, cy := config.StartButton.Center()
	if start := s.images.GetImageByID(ImageStartButton); start != nil {
		s.drawImageCentered(screen, start, cx, cy)
		return
	}
	s.drawButton(screen, ButtonView{config.StartButton, "START", colorGreen, FontSizeButton})
}

func (s *RenderSystem) drawGame(screen *ebiten.Image) {
	em := s.gameState.EntityManager()
	if _, player := s.gameState.Player(); player != nil && player.IsAlive() {
		s.drawEntity(screen, em, s.gameState.PlayerID(), "player")
	}
	for _, id := range s.gameState.LiveBullets() {
		s.drawEntity(screen, em, id, "bullet")
	}
	for _, id := range s.gameState.LiveEnemies() {
		s.drawEntity(screen, em, id, "enemy")
	}

	for i, line := range s.HUDLines() {
		s.drawTextAt(screen, line, FontSizeHUD, colorWhite, 10, float64(10+20*i))
	}
}

func (s *RenderSystem) drawGameOverTitle(screen *ebiten.Image) {
	w, h := s.screenSize()
	s.drawText(screen, "VOCÊ MORREU!", FontSizeGameOver, colorRed, w/2, h/2-50)
}

func (s *RenderSystem) drawButton(screen *ebiten.Image, button ButtonView) {
	r := button.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), button.Fill, false)
	cx, cy := r.Center()
	s.drawText(screen, button.Label, button.FontSize, colorWhite, cx, cy)
}

func (s *RenderSystem) drawBackground(screen *ebiten.Image) {
	screen.Clear()
	if bg := s.images.GetImageByID(ImageBackground); bg != nil {
		screen.DrawImage(bg, &ebiten.DrawImageOptions{})
		return
	}
	screen.Fill(color.RGBA{R: 30, G: 30, B: 30, A: 255})
}

// drawEntity 以实体坐标为中心绘制当前动画帧
func (s *RenderSystem) drawEntity(screen *ebiten.Image, em *ecs.EntityManager, id ecs.EntityID, kind string) {
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}

	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](em, id); ok {
		if img := s.images.GetImageByID(sprite.ImageID); img != nil {
			s.drawImageCentered(screen, img, pos.X, pos.Y)
			return
		}
	}

	col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
	if !ok {
		return
	}
	vector.DrawFilledRect(screen,
		float32(pos.X-col.Width/2), float32(pos.Y-col.Height/2),
		float32(col.Width), float32(col.Height),
		placeholderColors[kind], false)
}

func (s *RenderSystem) drawImageCentered(screen, img *ebiten.Image, cx, cy float64) {
	bounds := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(cx-float64(bounds.Dx())/2, cy-float64(bounds.Dy())/2)
	screen.DrawImage(img, op)
}

// drawText 以 (cx, cy) 为中心绘制文字
func (s *RenderSystem) drawText(screen *ebiten.Image, str string, size float64, clr color.Color, cx, cy float64) {
	face := s.face(size)
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(cx)-len(str)*3, int(cy)-8)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

// drawTextAt 以 (x, y) 为左上角绘制文字
func (s *RenderSystem) drawTextAt(screen *ebiten.Image, str string, size float64, clr color.Color, x, y float64) {
	face := s.face(size)
	if face == nil {
		ebitenutil.DebugPrintAt(screen, str, int(x), int(y))
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}

func (s *RenderSystem) face(size float64) *text.GoTextFace {
	if s.fonts == nil || s.fontFailed {
		return nil
	}
	face, err := s.fonts.LoadFontByID(FontRegular, size)
	if err != nil {
		log.Printf("[RenderSystem] 字体加载失败，改用调试字体: %v", err)
		s.fontFailed = true
		return nil
	}
	return face
}

func (s *RenderSystem) screenSize() (float64, float64) {
	arena := s.gameState.Config().Arena
	return arena.Width, arena.Height
}

func toggleColor(enabled bool) color.RGBA {
	if enabled {
		return colorGreen
	}
	return colorRed
}
