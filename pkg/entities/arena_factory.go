package entities

import (
	"fmt"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/utils"
)

// 动画帧资源ID（顺序即播放顺序）
var (
	PlayerFrames = []string{"IMAGE_P4", "IMAGE_P3", "IMAGE_P2", "IMAGE_P1", "IMAGE_P5"}
	EnemyFrames  = []string{"IMAGE_E4", "IMAGE_E3", "IMAGE_E2", "IMAGE_E1", "IMAGE_E5"}
)

// BulletImageID 子弹图像资源ID
const BulletImageID = "IMAGE_BULLET"

// RandomSource 随机数来源
// *rand.Rand (math/rand/v2) 满足此接口
type RandomSource interface {
	IntN(n int) int
}

func newAnimation(frames []string, cfg *config.GameplayConfig) *components.AnimationComponent {
	n := cfg.AnimationFrames
	if n > len(frames) {
		n = len(frames)
	}
	return &components.AnimationComponent{
		Frames: frames[:n],
		Step:   cfg.AnimationStep,
	}
}

// NewPlayerEntity 创建玩家实体
// 玩家只在游戏启动时创建一次，重置时只移动位置
//
// 参数:
//   - em: 实体管理器
//   - cfg: 玩法配置（出生位置、碰撞盒、动画参数）
//
// 返回:
//   - ecs.EntityID: 玩家实体ID
func NewPlayerEntity(em *ecs.EntityManager, cfg *config.GameplayConfig) ecs.EntityID {
	id := em.CreateEntity()

	ecs.AddComponent(em, id, &components.PositionComponent{X: cfg.PlayerStart.X, Y: cfg.PlayerStart.Y})
	ecs.AddComponent(em, id, &components.PlayerComponent{State: components.PlayerAlive})
	ecs.AddComponent(em, id, newAnimation(PlayerFrames, cfg))
	ecs.AddComponent(em, id, &components.SpriteComponent{ImageID: PlayerFrames[0]})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Hitboxes.Player.Width,
		Height: cfg.Hitboxes.Player.Height,
	})

	return id
}

// RandomSpawnPoint 随机选择一条屏幕边缘，返回边缘外 SpawnMargin 处的生成坐标
// 沿边坐标在 [0, 宽/高] 内均匀取整数（两端包含）
func RandomSpawnPoint(cfg *config.GameplayConfig, rng RandomSource) (components.SpawnEdge, float64, float64) {
	edge := components.SpawnEdges[rng.IntN(len(components.SpawnEdges))]
	w, h, m := cfg.Arena.Width, cfg.Arena.Height, cfg.SpawnMargin

	switch edge {
	case components.EdgeTop:
		return edge, float64(rng.IntN(int(w) + 1)), -m
	case components.EdgeBottom:
		return edge, float64(rng.IntN(int(w) + 1)), h + m
	case components.EdgeLeft:
		return edge, -m, float64(rng.IntN(int(h) + 1))
	default:
		return edge, w + m, float64(rng.IntN(int(h) + 1))
	}
}

// NewEnemyEntity 在给定位置创建敌人，航向固定指向 (targetX, targetY)
//
// 返回:
//   - ecs.EntityID: 敌人实体ID，失败时为 0
//   - error: 生成点与目标重合时返回 utils.ErrZeroDistance（此时不创建实体）
func NewEnemyEntity(em *ecs.EntityManager, cfg *config.GameplayConfig, edge components.SpawnEdge,
	x, y, targetX, targetY float64) (ecs.EntityID, error) {

	vx, vy, err := utils.Heading(x, y, targetX, targetY, cfg.EnemySpeed)
	if err != nil {
		return 0, fmt.Errorf("enemy spawn at (%.1f, %.1f): %w", x, y, err)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.EnemyComponent{Edge: edge})
	ecs.AddComponent(em, id, newAnimation(EnemyFrames, cfg))
	ecs.AddComponent(em, id, &components.SpriteComponent{ImageID: EnemyFrames[0]})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Hitboxes.Enemy.Width,
		Height: cfg.Hitboxes.Enemy.Height,
	})

	return id, nil
}

// NewBulletEntity 在 (startX, startY) 创建子弹，航向固定指向点击位置
//
// 返回:
//   - ecs.EntityID: 子弹实体ID，失败时为 0
//   - error: 点击位置与起点重合时返回 utils.ErrZeroDistance（此时不创建实体）
func NewBulletEntity(em *ecs.EntityManager, cfg *config.GameplayConfig,
	startX, startY, targetX, targetY float64) (ecs.EntityID, error) {

	vx, vy, err := utils.Heading(startX, startY, targetX, targetY, cfg.BulletSpeed)
	if err != nil {
		return 0, fmt.Errorf("bullet aimed at (%.1f, %.1f): %w", targetX, targetY, err)
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: startX, Y: startY})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.BulletComponent{})
	ecs.AddComponent(em, id, &components.SpriteComponent{ImageID: BulletImageID})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  cfg.Hitboxes.Bullet.Width,
		Height: cfg.Hitboxes.Bullet.Height,
	})

	return id, nil
}
