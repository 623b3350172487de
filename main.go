package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/wishingwell/pkg/app"
	"github.com/decker502/wishingwell/pkg/config"
	"github.com/decker502/wishingwell/pkg/embedded"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	tuningPath := flag.String("tuning", "", "调参文件路径（默认使用内置 data/tuning.yaml）")
	watch := flag.Bool("watch", false, "监听调参文件变化并热加载（需配合 --tuning）")
	appName := flag.String("app-name", app.DefaultAppName, "存档目录名")
	flag.Parse()

	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    *verbose,
		TuningPath: *tuningPath,
		Watch:      *watch,
		AppName:    *appName,
	})
	if err != nil {
		log.Fatalf("游戏初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.GameWindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
