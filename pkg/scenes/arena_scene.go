package scenes

import (
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

var _ game.Scene = (*ArenaScene)(nil)

// ArenaScene 唯一的游戏场景：菜单、战斗、死亡画面都由 GameState 的状态决定
type ArenaScene struct {
	gameState    *game.GameState
	sceneManager *game.SceneManager

	inputSystem  *systems.InputSystem
	playerSystem *systems.PlayerSystem
	enemySystem  *systems.EnemySystem
	bulletSystem *systems.BulletSystem
	spawnSystem  *systems.SpawnSystem
	roundSystem  *systems.RoundSystem
	renderSystem *systems.RenderSystem
}

// ArenaSceneOptions 创建 ArenaScene 的依赖
type ArenaSceneOptions struct {
	Input  systems.InputSource   // nil 时读取 Ebitengine 输入
	Rand   entities.RandomSource // 敌人生成概率
	Images systems.ImageSource
	Fonts  systems.FontSource
}

// NewArenaScene 创建竞技场场景
func NewArenaScene(gs *game.GameState, sm *game.SceneManager, opts ArenaSceneOptions) *ArenaScene {
	input := opts.Input
	if input == nil {
		input = systems.EbitenInput{}
	}

	anim := systems.NewAnimationSystem(gs.EntityManager())

	return &ArenaScene{
		gameState:    gs,
		sceneManager: sm,
		inputSystem:  systems.NewInputSystem(gs, input),
		playerSystem: systems.NewPlayerSystem(gs, anim),
		enemySystem:  systems.NewEnemySystem(gs, anim),
		bulletSystem: systems.NewBulletSystem(gs),
		spawnSystem:  systems.NewSpawnSystem(gs, opts.Rand),
		roundSystem:  systems.NewRoundSystem(gs),
		renderSystem: systems.NewRenderSystem(gs, opts.Images, opts.Fonts),
	}
}

// Update 先处理输入事件，再推进一帧模拟
func (s *ArenaScene) Update(deltaTime float64) {
	move := s.inputSystem.Update()
	if s.gameState.ExitRequested() {
		s.sceneManager.RequestQuit()
		return
	}
	s.Tick(move)
}

// Tick 推进一帧
//
// 只有 playing 且玩家存活时推进：玩家、敌人、子弹、生成、回合检查，
// 顺序固定。本帧标记删除的实体在最后统一移除。
func (s *ArenaScene) Tick(move systems.MoveInput) {
	if s.gameState.IsRunning() {
		s.playerSystem.Update(move)
		s.enemySystem.Update()
		s.bulletSystem.Update()
		s.spawnSystem.Update()
		s.roundSystem.Update()
	}
	s.gameState.EntityManager().RemoveMarkedEntities()
}

// Draw 绘制当前画面
func (s *ArenaScene) Draw(screen *ebiten.Image) {
	s.renderSystem.Draw(screen)
}

// GameState 返回场景持有的游戏状态
func (s *ArenaScene) GameState() *game.GameState {
	return s.gameState
}
