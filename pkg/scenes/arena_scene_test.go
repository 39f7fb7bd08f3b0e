package scenes

import (
	"math/rand/v2"
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/game"
	"github.com/gonewx/arena/pkg/systems"
)

// clickInput 第一帧点击给定位置，之后无输入
type clickInput struct {
	clicks []systems.Click
}

func (c *clickInput) Poll() systems.InputFrame {
	frame := systems.InputFrame{Clicks: c.clicks}
	c.clicks = nil
	return frame
}

// alwaysSpawn 每次掷骰都返回 0
type alwaysSpawn struct{}

func (alwaysSpawn) IntN(int) int { return 0 }

func newTestScene(t *testing.T, input systems.InputSource) (*ArenaScene, *game.SceneManager) {
	t.Helper()
	gs := game.NewGameState(ecs.NewEntityManager(), game.Options{
		Rand: rand.New(rand.NewPCG(3, 5)),
	})
	sm := game.NewSceneManager()
	scene := NewArenaScene(gs, sm, ArenaSceneOptions{
		Input: input,
		Rand:  alwaysSpawn{},
	})
	sm.SwitchTo(scene)
	return scene, sm
}

func TestArenaSceneMenuDoesNotSimulate(t *testing.T) {
	scene, _ := newTestScene(t, &clickInput{})
	gs := scene.GameState()

	scene.Tick(systems.MoveInput{Right: true})

	pos, _ := gs.Player()
	if pos.X != gs.Config().PlayerStart.X {
		t.Error("player should not move in the menu")
	}
	if len(gs.LiveEnemies()) != 0 {
		t.Error("no enemies should spawn in the menu")
	}
}

func TestArenaSceneStartButtonBeginsGame(t *testing.T) {
	cx, cy := config.StartButton.Center()
	scene, sm := newTestScene(t, &clickInput{clicks: []systems.Click{{X: cx, Y: cy}}})
	gs := scene.GameState()

	sm.Update(1.0 / 60.0)

	if gs.State != game.StatePlaying {
		t.Fatalf("State = %v, want playing", gs.State)
	}
	if len(gs.LiveEnemies()) != 1 {
		t.Errorf("live enemies = %d, want 1 after first tick", len(gs.LiveEnemies()))
	}
	if gs.EnemiesRemaining != gs.Config().EnemiesPerRound-1 {
		t.Errorf("EnemiesRemaining = %d", gs.EnemiesRemaining)
	}
}

func TestArenaSceneRoundPlaysOut(t *testing.T) {
	scene, _ := newTestScene(t, &clickInput{})
	gs := scene.GameState()
	gs.StartGame()

	for i := 0; i < gs.Config().EnemiesPerRound; i++ {
		scene.Tick(systems.MoveInput{})
	}
	if gs.EnemiesRemaining != 0 {
		t.Fatalf("EnemiesRemaining = %d, want 0", gs.EnemiesRemaining)
	}
	if gs.RoundOver {
		t.Fatal("round should not be over while enemies are alive")
	}

	em := gs.EntityManager()
	for _, id := range gs.LiveEnemies() {
		em.DestroyEntity(id)
	}
	scene.Tick(systems.MoveInput{})

	if !gs.RoundOver {
		t.Error("round should be over once every enemy is gone")
	}
	if n := len(ecs.GetEntitiesWith1[*components.EnemyComponent](em)); n != 0 {
		t.Errorf("enemy entities = %d, want 0 after removal", n)
	}
}

func TestArenaSceneFreezesAfterDeath(t *testing.T) {
	scene, _ := newTestScene(t, &clickInput{})
	gs := scene.GameState()
	gs.StartGame()
	gs.KillPlayer()

	pos, _ := gs.Player()
	x := pos.X
	scene.Tick(systems.MoveInput{Left: true})

	if pos.X != x {
		t.Error("player should not move after death")
	}
	if len(gs.LiveEnemies()) != 0 {
		t.Error("no enemies should spawn after death")
	}
}

func TestArenaSceneExitRequestsQuit(t *testing.T) {
	ex, ey := config.ExitButton.Center()
	scene, sm := newTestScene(t, &clickInput{clicks: []systems.Click{{X: ex, Y: ey}}})

	sm.Update(1.0 / 60.0)

	if !scene.GameState().ExitRequested() {
		t.Error("exit button should request exit")
	}
	if !sm.QuitRequested() {
		t.Error("scene manager should be asked to quit")
	}
}
