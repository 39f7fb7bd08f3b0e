package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// 音效与音乐资源ID（见 assets/config/resources.yaml）
const (
	SoundButtonClick   = "SOUND_BUTTON_CLICK"
	SoundEnemySpawn    = "SOUND_ENEMY_SPAWN"
	SoundShoot         = "SOUND_SHOOT"
	SoundEnemyHit      = "SOUND_ENEMY_HIT"
	SoundPlayerDeath   = "SOUND_PLAYER_DEATH"
	SoundRoundComplete = "SOUND_ROUND_COMPLETE"
	SoundNewRecord     = "SOUND_NEW_RECORD"
	MusicBackground    = "MUSIC_BACKGROUND"
)

// SoundIDs 游戏中用到的全部音效
var SoundIDs = []string{
	SoundButtonClick,
	SoundEnemySpawn,
	SoundShoot,
	SoundEnemyHit,
	SoundPlayerDeath,
	SoundRoundComplete,
	SoundNewRecord,
}

// AudioPlayer 游戏逻辑依赖的音频接口
// 播放是尽力而为的：失败只返回 false，从不影响游戏流程
type AudioPlayer interface {
	PlaySound(soundID string) bool
	PlayMusic(musicID string) bool
	StopMusic()
}

// AudioManager 音频管理器
// 职责：
//   - 通过资源ID播放音效和循环背景音乐
//   - 从 SettingsManager 读取开关和音量
//   - 吞掉所有播放失败（缺失资源、无音频设备）
type AudioManager struct {
	resourceManager *ResourceManager
	settingsManager *SettingsManager         // 可为 nil
	soundPlayers    map[string]*audio.Player // 资源ID -> 播放器
	musicPlayers    map[string]*audio.Player
	failed          map[string]bool // 加载失败过的资源ID，不再重试
	currentMusic    *audio.Player
	currentMusicID  string
}

// NewAudioManager 创建新的音频管理器
//
// 参数：
//   - rm: ResourceManager 实例（用于加载音频文件）
//   - sm: SettingsManager 实例（用于读取开关和音量，可为 nil）
func NewAudioManager(rm *ResourceManager, sm *SettingsManager) *AudioManager {
	return &AudioManager{
		resourceManager: rm,
		settingsManager: sm,
		soundPlayers:    make(map[string]*audio.Player),
		musicPlayers:    make(map[string]*audio.Player),
		failed:          make(map[string]bool),
	}
}

// PlaySound 从头播放一次音效
func (am *AudioManager) PlaySound(soundID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().SoundEnabled {
		return false
	}

	player := am.loadPlayer(soundID, am.soundPlayers, am.resourceManager.LoadSoundEffect)
	if player == nil {
		return false
	}

	player.SetVolume(am.soundVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind sound %s: %v", soundID, err)
	}
	player.Play()
	return true
}

// PlayMusic 循环播放背景音乐；同一首正在播放时不重复开始
func (am *AudioManager) PlayMusic(musicID string) bool {
	if am.settingsManager != nil && !am.settingsManager.GetSettings().MusicEnabled {
		return false
	}

	if am.currentMusicID == musicID && am.currentMusic != nil && am.currentMusic.IsPlaying() {
		return true
	}

	am.StopMusic()

	player := am.loadPlayer(musicID, am.musicPlayers, am.resourceManager.LoadAudio)
	if player == nil {
		return false
	}

	player.SetVolume(am.musicVolume())
	if err := player.Rewind(); err != nil {
		log.Printf("[AudioManager] Warning: Failed to rewind music %s: %v", musicID, err)
	}
	player.Play()

	am.currentMusic = player
	am.currentMusicID = musicID
	log.Printf("[AudioManager] Playing music: %s", musicID)
	return true
}

// StopMusic 停止当前背景音乐
func (am *AudioManager) StopMusic() {
	if am.currentMusic != nil {
		am.currentMusic.Pause()
		am.currentMusic = nil
		am.currentMusicID = ""
	}
}

// loadPlayer 从缓存获取播放器，首次使用时按资源ID加载
func (am *AudioManager) loadPlayer(resourceID string, cache map[string]*audio.Player,
	load func(path string) (*audio.Player, error)) *audio.Player {

	if player, exists := cache[resourceID]; exists {
		return player
	}
	if am.failed[resourceID] || am.resourceManager == nil {
		return nil
	}

	path, ok := am.resourceManager.ResolvePath(resourceID)
	if !ok {
		log.Printf("[AudioManager] Warning: Audio resource not found: %s", resourceID)
		am.failed[resourceID] = true
		return nil
	}

	player, err := load(path)
	if err != nil {
		log.Printf("[AudioManager] Warning: Failed to load %s: %v", resourceID, err)
		am.failed[resourceID] = true
		return nil
	}

	cache[resourceID] = player
	return player
}

func (am *AudioManager) musicVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().MusicVolume
	}
	return 0.7
}

func (am *AudioManager) soundVolume() float64 {
	if am.settingsManager != nil {
		return am.settingsManager.GetSettings().SoundVolume
	}
	return 0.8
}

// PreloadSounds 预加载音效，避免首次播放时卡顿
func (am *AudioManager) PreloadSounds(soundIDs []string) {
	loaded := 0
	for _, soundID := range soundIDs {
		if am.loadPlayer(soundID, am.soundPlayers, am.resourceManager.LoadSoundEffect) != nil {
			loaded++
		}
	}
	log.Printf("[AudioManager] Preloaded %d/%d sounds", loaded, len(soundIDs))
}
