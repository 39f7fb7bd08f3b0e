package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
)

// MoveInput 当前帧按住的方向键
type MoveInput struct {
	Up, Down, Left, Right bool
}

// PlayerSystem 推进玩家动画和移动
type PlayerSystem struct {
	gameState *game.GameState
	animation *AnimationSystem
}

// NewPlayerSystem 创建玩家系统
func NewPlayerSystem(gs *game.GameState, anim *AnimationSystem) *PlayerSystem {
	return &PlayerSystem{gameState: gs, animation: anim}
}

// Update 推进动画后按方向键移动玩家
//
// 同一轴上 W 优先于 S，A 优先于 D；移动不受边界限制。
func (s *PlayerSystem) Update(move MoveInput) {
	id := s.gameState.PlayerID()
	s.animation.Advance(id)

	em := s.gameState.EntityManager()
	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok {
		return
	}
	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		return
	}

	speed := s.gameState.Config().PlayerSpeed
	player.XSpeed, player.YSpeed = 0, 0

	if move.Up {
		player.YSpeed = -speed
	} else if move.Down {
		player.YSpeed = speed
	}

	if move.Left {
		player.XSpeed = -speed
	} else if move.Right {
		player.XSpeed = speed
	}

	pos.X += player.XSpeed
	pos.Y += player.YSpeed
}
