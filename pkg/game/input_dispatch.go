package game

import (
	"log"

	"github.com/gonewx/arena/pkg/config"
)

// Key 游戏关心的离散按键
type Key int

const (
	KeyOther Key = iota
	KeyR
	KeyEscape
)

// HandleKeyDown 处理按键按下事件
//   - playing 中按 R：重置本局
//   - playing 中按 Esc：回到菜单（暂停）
//   - menu 中按 Esc：如果有进行中的一局则恢复
//   - dead 中按 Esc：回到菜单
func (gs *GameState) HandleKeyDown(key Key) {
	switch {
	case gs.State == StatePlaying && key == KeyR:
		gs.ResetGame()
	case key == KeyEscape && gs.State == StateMenu:
		gs.Resume()
	case key == KeyEscape:
		gs.ReturnToMenu()
	}
}

// ReturnToMenu 回到菜单，当前这一局保持原样
func (gs *GameState) ReturnToMenu() {
	gs.State = StateMenu
}

// Resume 从菜单恢复进行中的一局（不重置）
// 没有开始过或玩家已死亡时不做任何事
func (gs *GameState) Resume() {
	_, player := gs.Player()
	if gs.State == StateMenu && gs.started && player.IsAlive() {
		gs.State = StatePlaying
	}
}

// HandleMouseDown 处理鼠标点击（或触摸），按钮优先级从上到下
func (gs *GameState) HandleMouseDown(x, y float64) {
	if config.SoundToggleButton.Contains(x, y) {
		gs.ToggleSound()
		return
	}
	if config.MusicToggleButton.Contains(x, y) {
		gs.ToggleMusic()
		return
	}

	_, player := gs.Player()

	switch {
	case gs.State == StateMenu && config.StartButton.Contains(x, y):
		gs.playSound(SoundButtonClick)
		gs.StartGame()
	case gs.State == StateMenu && config.ExitButton.Contains(x, y):
		gs.playSound(SoundButtonClick)
		gs.exitRequested = true
	case gs.State == StateDead && config.StartButton.Contains(x, y):
		gs.playSound(SoundButtonClick)
		gs.StartGame()
	case gs.State == StateDead && config.ExitButton.Contains(x, y):
		gs.playSound(SoundButtonClick)
		gs.exitRequested = true
	case gs.State == StatePlaying && gs.RoundOver && config.NextRoundButton.Contains(x, y):
		gs.playSound(SoundButtonClick)
		gs.NextRound()
	case gs.State == StatePlaying && player.IsAlive():
		if err := gs.FireBullet(x, y); err != nil {
			log.Printf("[GameState] %v", err)
		}
	}
}
