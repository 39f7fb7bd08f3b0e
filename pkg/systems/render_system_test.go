package systems

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/gonewx/arena/pkg/components"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/ecs"
	"github.com/gonewx/arena/pkg/entities"
	"github.com/gonewx/arena/pkg/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
)

// recordingImages 记录被请求的图像ID；只返回预先登记的图像
type recordingImages struct {
	images    map[string]*ebiten.Image
	requested []string
}

func (r *recordingImages) GetImageByID(resourceID string) *ebiten.Image {
	r.requested = append(r.requested, resourceID)
	return r.images[resourceID]
}

func (r *recordingImages) requestedAny(ids []string) bool {
	for _, id := range ids {
		if slices.Contains(r.requested, id) {
			return true
		}
	}
	return false
}

// testFonts 返回内置字体并记录请求的字体ID
type testFonts struct {
	source    *text.GoTextFaceSource
	requested []string
	fail      bool
}

func (f *testFonts) LoadFontByID(resourceID string, size float64) (*text.GoTextFace, error) {
	f.requested = append(f.requested, resourceID)
	if f.fail {
		return nil, errors.New("no font")
	}
	return &text.GoTextFace{Source: f.source, Size: size}, nil
}

func newTestFonts(t *testing.T) *testFonts {
	t.Helper()
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		t.Fatalf("NewGoTextFaceSource() error: %v", err)
	}
	return &testFonts{source: src}
}

func newTestRenderSystem(t *testing.T, gs *game.GameState) (*RenderSystem, *recordingImages, *testFonts) {
	t.Helper()
	images := &recordingImages{images: map[string]*ebiten.Image{
		ImageBackground:          ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight),
		entities.PlayerFrames[0]: ebiten.NewImage(32, 32),
		entities.BulletImageID:   ebiten.NewImage(8, 8),
	}}
	fonts := newTestFonts(t)
	return NewRenderSystem(gs, images, fonts), images, fonts
}

func newTestScreen() *ebiten.Image {
	return ebiten.NewImage(config.GameWindowWidth, config.GameWindowHeight)
}

func findButton(buttons []ButtonView, label string) (ButtonView, bool) {
	for _, b := range buttons {
		if b.Label == label {
			return b, true
		}
	}
	return ButtonView{}, false
}

func TestRenderSystemDrawsLivePlayer(t *testing.T) {
	gs, _ := newPlayingState(t)
	system, images, _ := newTestRenderSystem(t, gs)

	system.Draw(newTestScreen())

	if !images.requestedAny(entities.PlayerFrames) {
		t.Error("live player sprite should be drawn")
	}
}

func TestRenderSystemSkipsDeadPlayer(t *testing.T) {
	gs, _ := newPlayingState(t)
	pos, _ := gs.Player()
	placeEnemy(gs, pos.X+5, pos.Y)
	gs.KillPlayer()
	system, images, _ := newTestRenderSystem(t, gs)

	system.Draw(newTestScreen())

	if images.requestedAny(entities.PlayerFrames) {
		t.Errorf("dead player should not be drawn, requested %v", images.requested)
	}
	if !slices.Contains(images.requested, ImageBackground) {
		t.Error("background should still be drawn")
	}
}

func TestRenderSystemDrawsBullets(t *testing.T) {
	gs, _ := newPlayingState(t)
	pos, _ := gs.Player()
	if err := gs.FireBullet(pos.X+50, pos.Y); err != nil {
		t.Fatal(err)
	}
	system, images, _ := newTestRenderSystem(t, gs)

	system.Draw(newTestScreen())

	if !slices.Contains(images.requested, entities.BulletImageID) {
		t.Error("bullet sprite should be drawn")
	}
}

func TestRenderSystemToggleColors(t *testing.T) {
	tests := []struct {
		name         string
		sound, music bool
	}{
		{"both on", true, true},
		{"sound off", false, true},
		{"music off", true, false},
		{"both off", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs, _ := newPlayingState(t)
			gs.SoundEnabled = tt.sound
			gs.MusicEnabled = tt.music
			system, _, _ := newTestRenderSystem(t, gs)

			buttons := system.Buttons()

			som, ok := findButton(buttons, "SOM")
			if !ok {
				t.Fatal("SOM button missing")
			}
			if som.Fill != toggleColor(tt.sound) || som.Rect != config.SoundToggleButton {
				t.Errorf("SOM = %+v, sound enabled %v", som, tt.sound)
			}

			musica, ok := findButton(buttons, "MÚSICA")
			if !ok {
				t.Fatal("MÚSICA button missing")
			}
			if musica.Fill != toggleColor(tt.music) || musica.Rect != config.MusicToggleButton {
				t.Errorf("MÚSICA = %+v, music enabled %v", musica, tt.music)
			}
		})
	}

	if toggleColor(true) != colorGreen || toggleColor(false) != colorRed {
		t.Error("enabled toggles are green, disabled toggles are red")
	}
}

func TestRenderSystemNextRoundOnlyWhenRoundOver(t *testing.T) {
	gs, _ := newPlayingState(t)
	system, _, _ := newTestRenderSystem(t, gs)

	if _, ok := findButton(system.Buttons(), "NEXT ROUND"); ok {
		t.Error("NEXT ROUND should be hidden while the round is running")
	}

	gs.RoundOver = true
	next, ok := findButton(system.Buttons(), "NEXT ROUND")
	if !ok {
		t.Fatal("NEXT ROUND should be shown once the round is over")
	}
	if next.Rect != config.NextRoundButton || next.Fill != colorGreen || next.FontSize != FontSizeNextRound {
		t.Errorf("NEXT ROUND = %+v", next)
	}

	system.Draw(newTestScreen())
}

func TestRenderSystemButtonsPerState(t *testing.T) {
	gs, _ := newPlayingState(t)
	system, _, _ := newTestRenderSystem(t, gs)

	gs.State = game.StateMenu
	sair, ok := findButton(system.Buttons(), "SAIR")
	if !ok || sair.Rect != config.ExitButton || sair.Fill != colorGreen || sair.FontSize != 25 {
		t.Errorf("menu SAIR = %+v, %v", sair, ok)
	}
	if _, ok := findButton(system.Buttons(), "Try Again!"); ok {
		t.Error("Try Again! belongs to the game-over screen")
	}

	gs.KillPlayer()
	buttons := system.Buttons()
	retry, ok := findButton(buttons, "Try Again!")
	if !ok || retry.Rect != config.StartButton || retry.Fill != colorGreen || retry.FontSize != 25 {
		t.Errorf("Try Again! = %+v, %v", retry, ok)
	}
	exit, ok := findButton(buttons, "Exit")
	if !ok || exit.Rect != config.ExitButton || exit.Fill != colorRed || exit.FontSize != 25 {
		t.Errorf("Exit = %+v, %v", exit, ok)
	}
	if _, ok := findButton(buttons, "SAIR"); ok {
		t.Error("SAIR belongs to the menu")
	}

	// 开关总是最后绘制
	if n := len(buttons); buttons[n-2].Label != "SOM" || buttons[n-1].Label != "MÚSICA" {
		t.Errorf("audio toggles should be drawn last, got %+v", buttons)
	}
}

func TestRenderSystemHUDLines(t *testing.T) {
	gs, _ := newPlayingState(t)
	gs.Score = 7
	gs.WorldRecord = 12
	gs.RoundNum = 3
	system, _, _ := newTestRenderSystem(t, gs)

	want := []string{"Score: 7", "World Record: 12", "Round: 3"}
	if got := system.HUDLines(); !slices.Equal(got, want) {
		t.Errorf("HUDLines() = %v, want %v", got, want)
	}
}

func TestRenderSystemUsesRegularFont(t *testing.T) {
	gs, _ := newPlayingState(t)
	system, _, fonts := newTestRenderSystem(t, gs)

	for _, state := range []game.State{game.StateMenu, game.StatePlaying, game.StateDead} {
		gs.State = state
		system.Draw(newTestScreen())
	}

	if len(fonts.requested) == 0 {
		t.Fatal("text should be drawn with a loaded font")
	}
	for _, id := range fonts.requested {
		if id != FontRegular {
			t.Errorf("requested font %q, want %q", id, FontRegular)
		}
	}
}

func TestRenderSystemFontFailureFallsBack(t *testing.T) {
	gs, _ := newPlayingState(t)
	fonts := &testFonts{fail: true}
	system := NewRenderSystem(gs, &recordingImages{}, fonts)

	screen := newTestScreen()
	system.Draw(screen)
	system.Draw(screen)

	if len(fonts.requested) != 1 {
		t.Errorf("font loading should stop after the first failure, got %d attempts", len(fonts.requested))
	}
}

// 没有图像时用碰撞盒大小的色块代替
func TestRenderSystemDrawsPlaceholderWithoutImages(t *testing.T) {
	gs, _ := newPlayingState(t)
	enemy := placeEnemy(gs, 50, 50)
	ecs.AddComponent(gs.EntityManager(), enemy, &components.SpriteComponent{ImageID: entities.EnemyFrames[0]})
	images := &recordingImages{}
	system := NewRenderSystem(gs, images, nil)

	system.Draw(newTestScreen())

	if !slices.Contains(images.requested, entities.EnemyFrames[0]) {
		t.Error("enemy sprite should be looked up before falling back to a placeholder")
	}
}
