package config

import (
	"fmt"

	"github.com/gonewx/arena/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GameplayConfigPath 默认玩法配置路径
const GameplayConfigPath = "data/gameplay.yaml"

// GameplayConfig 玩法数值配置
//
// 配置文件位置: data/gameplay.yaml
// 缺省字段使用 DefaultGameplayConfig 中的值
type GameplayConfig struct {
	// Arena 竞技场尺寸（子弹越界判定使用）
	Arena ArenaSize `yaml:"arena"`

	// PlayerSpeed 玩家每帧移动像素
	PlayerSpeed float64 `yaml:"playerSpeed"`

	// PlayerStart 玩家出生/重置位置
	PlayerStart Point `yaml:"playerStart"`

	// EnemySpeed 敌人每帧移动距离
	EnemySpeed float64 `yaml:"enemySpeed"`

	// BulletSpeed 子弹每帧移动距离
	BulletSpeed float64 `yaml:"bulletSpeed"`

	// SpawnMargin 敌人在屏幕边缘外生成的距离
	SpawnMargin float64 `yaml:"spawnMargin"`

	// SpawnChance 每帧生成敌人的概率分母（1/SpawnChance）
	SpawnChance int `yaml:"spawnChance"`

	// EnemiesPerRound 每回合敌人数 = 回合数 * EnemiesPerRound
	EnemiesPerRound int `yaml:"enemiesPerRound"`

	// AnimationStep 动画游标每帧前进量
	AnimationStep float64 `yaml:"animationStep"`

	// AnimationFrames 每个实体动画帧数
	AnimationFrames int `yaml:"animationFrames"`

	// Hitboxes 碰撞盒尺寸（中心对齐）
	Hitboxes HitboxConfig `yaml:"hitboxes"`
}

// ArenaSize 竞技场宽高
type ArenaSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// Point 坐标点
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Size 宽高
type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HitboxConfig 各实体碰撞盒
type HitboxConfig struct {
	Player Size `yaml:"player"`
	Enemy  Size `yaml:"enemy"`
	Bullet Size `yaml:"bullet"`
}

// DefaultGameplayConfig 返回默认玩法配置
// 玩家默认位于竞技场中心
func DefaultGameplayConfig() *GameplayConfig {
	return &GameplayConfig{
		Arena:           ArenaSize{Width: GameWindowWidth, Height: GameWindowHeight},
		PlayerSpeed:     5,
		PlayerStart:     Point{X: GameWindowWidth / 2.0, Y: GameWindowHeight / 2.0},
		EnemySpeed:      0.2,
		BulletSpeed:     10,
		SpawnMargin:     50,
		SpawnChance:     30,
		EnemiesPerRound: 5,
		AnimationStep:   0.1,
		AnimationFrames: 5,
		Hitboxes: HitboxConfig{
			Player: Size{Width: 32, Height: 32},
			Enemy:  Size{Width: 32, Height: 32},
			Bullet: Size{Width: 8, Height: 8},
		},
	}
}

// LoadGameplayConfig 从嵌入资源加载玩法配置
//
// 参数:
//   - path: 配置文件路径（如 "data/gameplay.yaml"）
//
// 返回:
//   - *GameplayConfig: 加载并验证后的配置
//   - error: 读取、解析或验证失败时返回错误
func LoadGameplayConfig(path string) (*GameplayConfig, error) {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read gameplay config %s: %w", path, err)
	}

	cfg, err := ParseGameplayConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseGameplayConfig 解析 YAML 数据
// 未出现的字段保留默认值
func ParseGameplayConfig(data []byte) (*GameplayConfig, error) {
	cfg := DefaultGameplayConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse gameplay config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid gameplay config: %w", err)
	}

	return cfg, nil
}

// Validate 验证配置有效性
func (c *GameplayConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("arena size must be positive, got %.1fx%.1f", c.Arena.Width, c.Arena.Height)
	}
	if c.EnemySpeed <= 0 || c.BulletSpeed <= 0 {
		return fmt.Errorf("enemy/bullet speed must be positive")
	}
	if c.PlayerSpeed < 0 {
		return fmt.Errorf("playerSpeed must not be negative, got %.1f", c.PlayerSpeed)
	}
	if c.SpawnChance < 1 {
		return fmt.Errorf("spawnChance must be >= 1, got %d", c.SpawnChance)
	}
	if c.EnemiesPerRound < 1 {
		return fmt.Errorf("enemiesPerRound must be >= 1, got %d", c.EnemiesPerRound)
	}
	if c.AnimationFrames < 1 {
		return fmt.Errorf("animationFrames must be >= 1, got %d", c.AnimationFrames)
	}
	if c.AnimationStep <= 0 {
		return fmt.Errorf("animationStep must be positive, got %.2f", c.AnimationStep)
	}

	for name, box := range map[string]Size{
		"player": c.Hitboxes.Player,
		"enemy":  c.Hitboxes.Enemy,
		"bullet": c.Hitboxes.Bullet,
	} {
		if box.Width <= 0 || box.Height <= 0 {
			return fmt.Errorf("%s hitbox must be positive, got %.1fx%.1f", name, box.Width, box.Height)
		}
	}

	return nil
}
