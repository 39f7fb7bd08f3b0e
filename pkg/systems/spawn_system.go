package systems

import (
	"log"

	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
)

// SpawnSystem 按概率生成敌人，并检查回合是否结束
type SpawnSystem struct {
	gameState *game.GameState
	rng       entities.RandomSource
}

// NewSpawnSystem 创建生成系统
func NewSpawnSystem(gs *game.GameState, rng entities.RandomSource) *SpawnSystem {
	return &SpawnSystem{gameState: gs, rng: rng}
}

// Update 还有剩余敌人时，每帧以 1/SpawnChance 的概率生成一个
func (s *SpawnSystem) Update() {
	gs := s.gameState
	if gs.EnemiesRemaining <= 0 {
		return
	}
	if s.rng.IntN(gs.Config().SpawnChance) != 0 {
		return
	}
	if err := gs.SpawnEnemy(); err != nil {
		log.Printf("[SpawnSystem] %v", err)
	}
}

// RoundSystem 检查回合结束条件
type RoundSystem struct {
	gameState *game.GameState
}

// NewRoundSystem 创建回合系统
func NewRoundSystem(gs *game.GameState) *RoundSystem {
	return &RoundSystem{gameState: gs}
}

// Update 敌人全部生成且全部消灭时标记回合结束
func (s *RoundSystem) Update() {
	s.gameState.CheckRoundComplete()
}
