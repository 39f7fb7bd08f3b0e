package entities

import (
	"errors"
	"math"
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/utils"
)

// fixedRandom 按顺序返回预设值（对 n 取模）
type fixedRandom struct {
	values []int
	next   int
}

func (r *fixedRandom) IntN(n int) int {
	v := r.values[r.next%len(r.values)]
	r.next++
	return v % n
}

func TestNewPlayerEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()

	id := NewPlayerEntity(em, cfg)

	pos, ok := ecs.GetComponent[*components.PositionComponent](em, id)
	if !ok {
		t.Fatal("player missing PositionComponent")
	}
	if pos.X != cfg.PlayerStart.X || pos.Y != cfg.PlayerStart.Y {
		t.Errorf("player position = (%v, %v), want start position", pos.X, pos.Y)
	}

	player, ok := ecs.GetComponent[*components.PlayerComponent](em, id)
	if !ok || !player.IsAlive() {
		t.Error("player should start alive")
	}

	anim, ok := ecs.GetComponent[*components.AnimationComponent](em, id)
	if !ok || len(anim.Frames) != 5 {
		t.Error("player should have 5 animation frames")
	}
}

func TestRandomSpawnPoint(t *testing.T) {
	cfg := config.DefaultGameplayConfig()

	tests := []struct {
		name     string
		values   []int
		wantEdge components.SpawnEdge
		wantX    float64
		wantY    float64
	}{
		{"top", []int{0, 100}, components.EdgeTop, 100, -50},
		{"bottom", []int{1, 463}, components.EdgeBottom, 463, 408},
		{"left", []int{2, 0}, components.EdgeLeft, -50, 0},
		{"right", []int{3, 358}, components.EdgeRight, 513, 358},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			edge, x, y := RandomSpawnPoint(cfg, &fixedRandom{values: tt.values})
			if edge != tt.wantEdge {
				t.Errorf("edge = %v, want %v", edge, tt.wantEdge)
			}
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("spawn = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

// TestEnemyHeadingFromLeftEdge 从左侧生成、玩家在 (400,300)：航向 x 分量为正
func TestEnemyHeadingFromLeftEdge(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()

	id, err := NewEnemyEntity(em, cfg, components.EdgeLeft, -50, 120, 400, 300)
	if err != nil {
		t.Fatalf("NewEnemyEntity() error: %v", err)
	}

	vel, ok := ecs.GetComponent[*components.VelocityComponent](em, id)
	if !ok {
		t.Fatal("enemy missing VelocityComponent")
	}
	if vel.VX <= 0 {
		t.Errorf("VX = %v, want positive", vel.VX)
	}
	if speed := math.Hypot(vel.VX, vel.VY); math.Abs(speed-0.2) > 1e-9 {
		t.Errorf("enemy speed = %v, want 0.2", speed)
	}
}

func TestNewBulletEntity(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()

	id, err := NewBulletEntity(em, cfg, 100, 100, 100, 0)
	if err != nil {
		t.Fatalf("NewBulletEntity() error: %v", err)
	}

	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	if vel.VX != 0 || vel.VY != -10 {
		t.Errorf("bullet velocity = (%v, %v), want (0, -10)", vel.VX, vel.VY)
	}
	if !ecs.HasComponent[*components.BulletComponent](em, id) {
		t.Error("bullet missing BulletComponent")
	}
}

// TestNewBulletAtOwnPosition 目标与起点重合：返回错误且不创建实体
func TestNewBulletAtOwnPosition(t *testing.T) {
	em := ecs.NewEntityManager()
	cfg := config.DefaultGameplayConfig()

	id, err := NewBulletEntity(em, cfg, 200, 150, 200, 150)
	if !errors.Is(err, utils.ErrZeroDistance) {
		t.Fatalf("expected ErrZeroDistance, got %v", err)
	}
	if id != 0 {
		t.Errorf("id = %d, want 0", id)
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, want 0", em.EntityCount())
	}
}
