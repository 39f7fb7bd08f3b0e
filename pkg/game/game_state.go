package game

import (
	"fmt"
	"log"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
)

// State 游戏顶层状态
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateDead
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateDead:
		return "dead"
	}
	return "unknown"
}

// GameState 一局游戏的全部可变状态
//
// 由调用方显式持有（没有全局单例），update、draw 与输入回调都在同一个游戏循环
// 线程中访问它，因此不需要加锁。
//
// 存活的敌人和子弹作为实体保存在 EntityManager 中。
type GameState struct {
	State            State
	Score            int
	WorldRecord      int // 历史最高分，只增不减，不持久化
	RoundNum         int
	EnemiesRemaining int // 本回合尚未生成的敌人数
	RoundOver        bool
	SoundEnabled     bool
	MusicEnabled     bool

	cfg      *config.GameplayConfig
	em       *ecs.EntityManager
	playerID ecs.EntityID
	audio    AudioPlayer
	settings *SettingsManager
	rng      entities.RandomSource

	started       bool // 是否开始过一局（Esc 从菜单恢复的前提）
	exitRequested bool
}

// Options 创建 GameState 的依赖
type Options struct {
	Config   *config.GameplayConfig // nil 时使用默认配置
	Audio    AudioPlayer            // nil 时静音
	Settings *SettingsManager       // nil 时音频开关默认开启且不保存
	Rand     entities.RandomSource  // 必填
	Muted    bool                   // 本次运行关闭音效和音乐；只有玩家切换的那个开关会写入设置
}

// NewGameState 创建处于菜单状态的游戏，并创建唯一的玩家实体
// 音乐开关开启时立即播放背景音乐
func NewGameState(em *ecs.EntityManager, opts Options) *GameState {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultGameplayConfig()
	}

	gs := &GameState{
		State:        StateMenu,
		RoundNum:     1,
		SoundEnabled: true,
		MusicEnabled: true,
		cfg:          cfg,
		em:           em,
		audio:        opts.Audio,
		settings:     opts.Settings,
		rng:          opts.Rand,
	}
	if gs.settings != nil {
		s := gs.settings.GetSettings()
		gs.SoundEnabled = s.SoundEnabled
		gs.MusicEnabled = s.MusicEnabled
	}
	if opts.Muted {
		gs.SoundEnabled = false
		gs.MusicEnabled = false
	}

	gs.playerID = entities.NewPlayerEntity(em, cfg)

	if gs.MusicEnabled && gs.audio != nil {
		gs.audio.PlayMusic(MusicBackground)
	}
	return gs
}

// Config 返回玩法配置
func (gs *GameState) Config() *config.GameplayConfig {
	return gs.cfg
}

// EntityManager 返回保存玩家、敌人、子弹的实体管理器
func (gs *GameState) EntityManager() *ecs.EntityManager {
	return gs.em
}

// PlayerID 返回玩家实体ID
func (gs *GameState) PlayerID() ecs.EntityID {
	return gs.playerID
}

// Player 返回玩家的位置与状态组件
func (gs *GameState) Player() (*components.PositionComponent, *components.PlayerComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](gs.em, gs.playerID)
	player, _ := ecs.GetComponent[*components.PlayerComponent](gs.em, gs.playerID)
	return pos, player
}

// IsRunning 本帧是否推进模拟：只有 playing 且玩家存活时
func (gs *GameState) IsRunning() bool {
	_, player := gs.Player()
	return gs.State == StatePlaying && player.IsAlive()
}

// ExitRequested 玩家是否点击了退出按钮
func (gs *GameState) ExitRequested() bool {
	return gs.exitRequested
}

// LiveEnemies 返回存活的敌人（按生成顺序，不含本帧已被击中的）
func (gs *GameState) LiveEnemies() []ecs.EntityID {
	return gs.liveWith(ecs.GetEntitiesWith1[*components.EnemyComponent](gs.em))
}

// LiveBullets 返回存活的子弹（按发射顺序）
func (gs *GameState) LiveBullets() []ecs.EntityID {
	return gs.liveWith(ecs.GetEntitiesWith1[*components.BulletComponent](gs.em))
}

func (gs *GameState) liveWith(ids []ecs.EntityID) []ecs.EntityID {
	live := ids[:0]
	for _, id := range ids {
		if gs.em.IsAlive(id) {
			live = append(live, id)
		}
	}
	return live
}

// playSound 音效开关关闭时直接返回；播放失败由 AudioPlayer 吞掉
func (gs *GameState) playSound(soundID string) {
	if !gs.SoundEnabled || gs.audio == nil {
		return
	}
	gs.audio.PlaySound(soundID)
}

// StartGame 进入 playing 状态并完整重置
func (gs *GameState) StartGame() {
	gs.State = StatePlaying
	_, player := gs.Player()
	player.State = components.PlayerAlive
	gs.RoundOver = false
	gs.started = true
	gs.ResetGame()
	log.Printf("[GameState] Game started")
}

// ResetGame 结算世界纪录并回到第1回合
func (gs *GameState) ResetGame() {
	if gs.Score > gs.WorldRecord {
		gs.WorldRecord = gs.Score
		gs.playSound(SoundNewRecord)
		log.Printf("[GameState] New world record: %d", gs.WorldRecord)
	}

	gs.Score = 0
	pos, player := gs.Player()
	pos.X = gs.cfg.PlayerStart.X
	pos.Y = gs.cfg.PlayerStart.Y
	player.State = components.PlayerAlive
	gs.clearArena()
	gs.RoundNum = 1
	gs.EnemiesRemaining = gs.RoundNum * gs.cfg.EnemiesPerRound
	gs.RoundOver = false
}

// NextRound 进入下一回合
func (gs *GameState) NextRound() {
	gs.RoundNum++
	gs.EnemiesRemaining = gs.RoundNum * gs.cfg.EnemiesPerRound
	gs.RoundOver = false
	gs.clearArena()
	log.Printf("[GameState] Round %d: %d enemies", gs.RoundNum, gs.EnemiesRemaining)
}

// clearArena 立即移除所有敌人和子弹
func (gs *GameState) clearArena() {
	for _, id := range ecs.GetEntitiesWith1[*components.EnemyComponent](gs.em) {
		gs.em.DestroyEntity(id)
	}
	for _, id := range ecs.GetEntitiesWith1[*components.BulletComponent](gs.em) {
		gs.em.DestroyEntity(id)
	}
	gs.em.RemoveMarkedEntities()
}

// SpawnEnemy 在随机边缘外生成一个敌人，航向指向玩家当前位置
//
// 没有剩余敌人时不做任何事。生成点恰好与玩家重合时返回错误，
// 本次生成作废且不计入已生成数量。
func (gs *GameState) SpawnEnemy() error {
	if gs.EnemiesRemaining <= 0 {
		return nil
	}

	pos, _ := gs.Player()
	edge, x, y := entities.RandomSpawnPoint(gs.cfg, gs.rng)
	if _, err := entities.NewEnemyEntity(gs.em, gs.cfg, edge, x, y, pos.X, pos.Y); err != nil {
		return fmt.Errorf("spawn enemy: %w", err)
	}

	gs.EnemiesRemaining--
	gs.playSound(SoundEnemySpawn)
	return nil
}

// FireBullet 从玩家位置向目标点发射子弹
// 目标与玩家位置重合时返回 utils.ErrZeroDistance，不发射
func (gs *GameState) FireBullet(targetX, targetY float64) error {
	pos, _ := gs.Player()
	if _, err := entities.NewBulletEntity(gs.em, gs.cfg, pos.X, pos.Y, targetX, targetY); err != nil {
		return fmt.Errorf("fire bullet: %w", err)
	}
	gs.playSound(SoundShoot)
	return nil
}

// KillPlayer 玩家被敌人碰到：玩家与游戏同时进入 dead
// 敌人和子弹保留在原地；同一帧内重复调用只生效一次
func (gs *GameState) KillPlayer() {
	_, player := gs.Player()
	if !player.IsAlive() {
		return
	}
	player.State = components.PlayerDead
	gs.State = StateDead
	gs.playSound(SoundPlayerDeath)
}

// RegisterHit 子弹击中敌人后计分
func (gs *GameState) RegisterHit() {
	gs.Score++
	gs.playSound(SoundEnemyHit)
}

// CheckRoundComplete 敌人全部生成且全部消灭时结束回合（只触发一次）
func (gs *GameState) CheckRoundComplete() {
	if gs.EnemiesRemaining == 0 && len(gs.LiveEnemies()) == 0 && !gs.RoundOver {
		gs.RoundOver = true
		gs.playSound(SoundRoundComplete)
		log.Printf("[GameState] Round %d complete, score %d", gs.RoundNum, gs.Score)
	}
}

// ToggleSound 切换音效开关
//
// 开关先翻转再播放点击音效，因此关闭音效时听不到这次点击，开启时可以听到。
func (gs *GameState) ToggleSound() {
	gs.SoundEnabled = !gs.SoundEnabled
	if gs.settings != nil {
		gs.settings.SetSoundEnabled(gs.SoundEnabled)
	}
	gs.playSound(SoundButtonClick)
}

// ToggleMusic 切换背景音乐开关，并开始或停止背景音乐
func (gs *GameState) ToggleMusic() {
	gs.MusicEnabled = !gs.MusicEnabled
	if gs.settings != nil {
		gs.settings.SetMusicEnabled(gs.MusicEnabled)
	}
	if gs.audio != nil {
		if gs.MusicEnabled {
			gs.audio.PlayMusic(MusicBackground)
		} else {
			gs.audio.StopMusic()
		}
	}
	gs.playSound(SoundButtonClick)
}
