package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io"
	"log"
	"path/filepath"
	"strings"

	"github.com/gonewx/arena/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// ErrAudioUnavailable 没有可用的音频上下文（例如无音频设备或测试环境）
var ErrAudioUnavailable = errors.New("audio context unavailable")

// ResourceManager is responsible for centralized management of game resources.
// It loads images, sounds and fonts from the embedded asset tree and caches
// them, so each file is decoded only once.
//
// Resources are addressed by ID through assets/config/resources.yaml; the
// path-based Load* methods remain available for callers that know the file.
//
// This implementation is NOT thread-safe. The game loop is single-threaded,
// so no synchronization is needed.
type ResourceManager struct {
	imageCache    map[string]*ebiten.Image     // path -> Image
	audioCache    map[string]*audio.Player     // path -> Player
	audioContext  *audio.Context               // nil disables audio loading
	fontSource    *text.GoTextFaceSource       // lazily created default font
	fontFaceCache map[string]*text.GoTextFace  // "path:size" -> face

	config      *ResourceConfig
	resourceMap map[string]string // Resource ID -> full path
}

// NewResourceManager creates a ResourceManager.
// audioContext may be nil; sound loading then fails with ErrAudioUnavailable.
func NewResourceManager(audioContext *audio.Context) *ResourceManager {
	return &ResourceManager{
		imageCache:    make(map[string]*ebiten.Image),
		audioCache:    make(map[string]*audio.Player),
		audioContext:  audioContext,
		fontFaceCache: make(map[string]*text.GoTextFace),
		resourceMap:   make(map[string]string),
	}
}

// LoadResourceConfig reads the YAML resource table and builds the ID -> path map.
func (rm *ResourceManager) LoadResourceConfig(path string) error {
	data, err := embedded.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", path, err)
	}

	cfg, err := parseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	rm.config = cfg
	for _, group := range cfg.Groups {
		for _, list := range [][]ResourceEntry{group.Images, group.Sounds, group.Fonts} {
			for _, entry := range list {
				rm.resourceMap[entry.ID] = buildFullPath(cfg.BasePath, entry.Path)
			}
		}
	}

	log.Printf("[ResourceManager] Loaded resource config %s (%d resources)", path, len(rm.resourceMap))
	return nil
}

// ResolvePath returns the file path registered for a resource ID.
func (rm *ResourceManager) ResolvePath(resourceID string) (string, bool) {
	path, ok := rm.resourceMap[resourceID]
	return path, ok
}

// LoadAllImages decodes every image listed in the resource config.
// A missing or corrupt image is a startup failure.
func (rm *ResourceManager) LoadAllImages() error {
	if rm.config == nil {
		return fmt.Errorf("resource config not loaded")
	}

	count := 0
	for groupName, group := range rm.config.Groups {
		for _, entry := range group.Images {
			if _, err := rm.LoadImageByID(entry.ID); err != nil {
				return fmt.Errorf("group %s: %w", groupName, err)
			}
			count++
		}
	}

	log.Printf("[ResourceManager] Loaded %d images", count)
	return nil
}

// LoadImage loads an image file and caches it.
func (rm *ResourceManager) LoadImage(path string) (*ebiten.Image, error) {
	if cachedImage, exists := rm.imageCache[path]; exists {
		return cachedImage, nil
	}

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	ebitenImg := ebiten.NewImageFromImage(img)
	rm.imageCache[path] = ebitenImg
	return ebitenImg, nil
}

// LoadImageByID loads an image through its resource ID.
func (rm *ResourceManager) LoadImageByID(resourceID string) (*ebiten.Image, error) {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil, fmt.Errorf("unknown image resource id: %s", resourceID)
	}
	return rm.LoadImage(path)
}

// GetImageByID returns a cached image, or nil if it has not been loaded.
func (rm *ResourceManager) GetImageByID(resourceID string) *ebiten.Image {
	path, ok := rm.resourceMap[resourceID]
	if !ok {
		return nil
	}
	return rm.imageCache[path]
}

// audioStream 解码后的音频流
type audioStream interface {
	io.ReadSeeker
	Length() int64
}

// decodeAudio reads an audio file fully into memory and decodes it by extension.
// Supported formats: .wav, .mp3, .ogg.
func (rm *ResourceManager) decodeAudio(path string) (audioStream, error) {
	if rm.audioContext == nil {
		return nil, ErrAudioUnavailable
	}

	data, err := embedded.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", path, err)
	}
	reader := bytes.NewReader(data)

	var stream audioStream
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".wav":
		stream, err = wav.DecodeWithoutResampling(reader)
	case ".mp3":
		stream, err = mp3.DecodeWithoutResampling(reader)
	case ".ogg":
		stream, err = vorbis.DecodeWithoutResampling(reader)
	default:
		return nil, fmt.Errorf("unsupported audio format: %s (supported: .wav, .mp3, .ogg)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio %s: %w", path, err)
	}
	return stream, nil
}

// LoadSoundEffect loads a one-shot sound effect (not looped) and caches its player.
func (rm *ResourceManager) LoadSoundEffect(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadAudio loads background music wrapped in an infinite loop and caches its player.
func (rm *ResourceManager) LoadAudio(path string) (*audio.Player, error) {
	if cachedPlayer, exists := rm.audioCache[path]; exists {
		return cachedPlayer, nil
	}

	stream, err := rm.decodeAudio(path)
	if err != nil {
		return nil, err
	}

	player, err := rm.audioContext.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}

	rm.audioCache[path] = player
	return player, nil
}

// LoadFont creates a text face of the given size.
// An empty path selects the built-in Go Bold font.
func (rm *ResourceManager) LoadFont(path string, size float64) (*text.GoTextFace, error) {
	cacheKey := fmt.Sprintf("%s:%.1f", path, size)
	if cachedFace, exists := rm.fontFaceCache[cacheKey]; exists {
		return cachedFace, nil
	}

	var source *text.GoTextFaceSource
	if path == "" {
		if rm.fontSource == nil {
			src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
			if err != nil {
				return nil, fmt.Errorf("failed to create default font source: %w", err)
			}
			rm.fontSource = src
		}
		source = rm.fontSource
	} else {
		fontData, err := embedded.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
		}
		source, err = text.NewGoTextFaceSource(bytes.NewReader(fontData))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source for %s: %w", path, err)
		}
	}

	face := &text.GoTextFace{
		Source:    source,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontFaceCache[cacheKey] = face
	return face, nil
}

// LoadFontByID loads a configured font; unknown IDs fall back to the built-in font.
func (rm *ResourceManager) LoadFontByID(resourceID string, size float64) (*text.GoTextFace, error) {
	path := rm.resourceMap[resourceID]
	return rm.LoadFont(path, size)
}
