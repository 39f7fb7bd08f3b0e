package systems

import (
	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/utils"
)

// BulletSystem 推进子弹，移除越界子弹，处理子弹与敌人的碰撞
type BulletSystem struct {
	gameState *game.GameState
}

// NewBulletSystem 创建子弹系统
func NewBulletSystem(gs *game.GameState) *BulletSystem {
	return &BulletSystem{gameState: gs}
}

// Update 子弹移动后：
//   - 越出 [0,宽]×[0,高] 的子弹在本帧移除
//   - 否则按生成顺序检测敌人，命中第一个即同时移除子弹和敌人并计分
//
// 被移除的实体只是标记删除；本帧已被击中的敌人不会再被其他子弹命中。
func (s *BulletSystem) Update() {
	em := s.gameState.EntityManager()
	arena := s.gameState.Config().Arena

	for _, bulletID := range s.gameState.LiveBullets() {
		pos, ok := ecs.GetComponent[*components.PositionComponent](em, bulletID)
		if !ok {
			continue
		}
		if vel, ok := ecs.GetComponent[*components.VelocityComponent](em, bulletID); ok {
			pos.X += vel.VX
			pos.Y += vel.VY
		}

		if pos.X < 0 || pos.X > arena.Width || pos.Y < 0 || pos.Y > arena.Height {
			em.DestroyEntity(bulletID)
			continue
		}

		col, ok := ecs.GetComponent[*components.CollisionComponent](em, bulletID)
		if !ok {
			continue
		}

		for _, enemyID := range s.gameState.LiveEnemies() {
			enemyPos, ok := ecs.GetComponent[*components.PositionComponent](em, enemyID)
			if !ok {
				continue
			}
			enemyCol, ok := ecs.GetComponent[*components.CollisionComponent](em, enemyID)
			if !ok {
				continue
			}

			if utils.RectsOverlap(pos.X, pos.Y, col.Width, col.Height,
				enemyPos.X, enemyPos.Y, enemyCol.Width, enemyCol.Height) {
				em.DestroyEntity(enemyID)
				em.DestroyEntity(bulletID)
				s.gameState.RegisterHit()
				break
			}
		}
	}
}
