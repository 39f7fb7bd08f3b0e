package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/utils"
)

// EnemySystem 推进敌人并检测敌人与玩家的碰撞
type EnemySystem struct {
	gameState *game.GameState
	animation *AnimationSystem
}

// NewEnemySystem 创建敌人系统
func NewEnemySystem(gs *game.GameState, anim *AnimationSystem) *EnemySystem {
	return &EnemySystem{gameState: gs, animation: anim}
}

// Update 每个敌人按固定航向移动；碰到玩家时玩家死亡
// 敌人不会被移除，死亡后画面冻结在当前位置
func (s *EnemySystem) Update() {
	em := s.gameState.EntityManager()
	playerPos, _ := s.gameState.Player()
	playerCol, _ := ecs.GetComponent[*components.CollisionComponent](em, s.gameState.PlayerID())

	for _, id := range s.gameState.LiveEnemies() {
		s.animation.Advance(id)

		pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
		if !ok {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id); ok {
			pos.X += vel.VX
			pos.Y += vel.VY
		}

		col, ok := ecs.GetComponent[*components.CollisionComponent](em, id)
		if !ok || playerCol == nil {
			continue
		}
		if utils.RectsOverlap(playerPos.X, playerPos.Y, playerCol.Width, playerCol.Height,
			pos.X, pos.Y, col.Width, col.Height) {
			s.gameState.KillPlayer()
		}
	}
}
