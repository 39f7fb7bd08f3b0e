package main

import (
	"flag"
	"log"
	"os"

	"github.com/gonewx/arena/pkg/app"
	"github.com/gonewx/arena/pkg/config"
	"github.com/gonewx/arena/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

var (
	verboseFlag = flag.Bool("verbose", false, "Enable verbose logging")
	seedFlag    = flag.Uint64("seed", 0, "Random seed for enemy spawns (0 = time based)")
	muteFlag    = flag.Bool("mute", false, "Start with sound effects and music disabled")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	a, err := app.NewApp(app.Config{
		Verbose: *verboseFlag,
		Seed:    *seedFlag,
		Mute:    *muteFlag,
	})
	if err != nil {
		// 非 verbose 模式下日志被丢弃，致命错误仍需输出
		log.SetOutput(os.Stderr)
		log.Fatalf("初始化失败: %v", err)
	}

	ebiten.SetWindowSize(config.GameWindowWidth*config.WindowScale, config.GameWindowHeight*config.WindowScale)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
