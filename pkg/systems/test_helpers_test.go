package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
)

// recordingAudio 记录播放过的音效
type recordingAudio struct {
	sounds []string
}

func (a *recordingAudio) PlaySound(soundID string) bool {
	a.sounds = append(a.sounds, soundID)
	return true
}

func (a *recordingAudio) PlayMusic(string) bool { return true }

func (a *recordingAudio) StopMusic() {}

func (a *recordingAudio) count(soundID string) int {
	n := 0
	for _, s := range a.sounds {
		if s == soundID {
			n++
		}
	}
	return n
}

// fixedRandom 按顺序返回预设值，用完后一直返回最后一个
type fixedRandom struct {
	values []int
	calls  int
}

func (r *fixedRandom) IntN(n int) int {
	if len(r.values) == 0 {
		return 0
	}
	i := r.calls
	if i >= len(r.values) {
		i = len(r.values) - 1
	}
	r.calls++
	return r.values[i] % n
}

// newPlayingState 创建已开始游戏的 GameState
func newPlayingState(t *testing.T) (*game.GameState, *recordingAudio) {
	t.Helper()
	audio := &recordingAudio{}
	gs := game.NewGameState(ecs.NewEntityManager(), game.Options{
		Config: config.DefaultGameplayConfig(),
		Audio:  audio,
		Rand:   rand.New(rand.NewPCG(7, 11)),
	})
	gs.StartGame()
	audio.sounds = nil
	return gs, audio
}

// placeEnemy 在指定位置放置一个静止的敌人
func placeEnemy(gs *game.GameState, x, y float64) ecs.EntityID {
	em := gs.EntityManager()
	cfg := gs.Config()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.EnemyComponent{Edge: components.EdgeTop})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Hitboxes.Enemy.Width,
		Height: cfg.Hitboxes.Enemy.Height,
	})
	return id
}

// placeBullet 在指定位置放置一颗给定速度的子弹
func placeBullet(gs *game.GameState, x, y, vx, vy float64) ecs.EntityID {
	em := gs.EntityManager()
	cfg := gs.Config()
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.BulletComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Hitboxes.Bullet.Width,
		Height: cfg.Hitboxes.Bullet.Height,
	})
	return id
}
