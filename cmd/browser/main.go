// Command browser runs the game with ebiten. Built with GOOS=js GOARCH=wasm
// it runs in the page served by cmd/web; otherwise it opens a window.
package main

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tomz197/emacsteroids/internal/config"
	"github.com/tomz197/emacsteroids/internal/logging"
	"github.com/tomz197/emacsteroids/internal/share"
	"github.com/tomz197/emacsteroids/internal/webgame"
)

const windowTitle = "emacsteroids"

func main() {
	logger := logging.New(os.Stderr, "browser")

	tuning, err := config.LoadTuning(config.GetEnv("GAME_TUNING", ""))
	if err != nil {
		logger.Fatal("Invalid tuning", "err", err)
	}

	textures := webgame.GenerateTextures()
	if dir := config.GetEnv("ASSET_DIR", ""); dir != "" {
		if textures, err = webgame.LoadTextures(dir); err != nil {
			logger.Fatal("Cannot load assets", "dir", dir, "err", err)
		}
	}

	link := share.Link{
		Base:    config.GetEnv("SHARE_BASE_URL", config.DefaultShareBaseURL),
		Text:    config.DefaultShareText,
		PageURL: config.GetEnv("PLAY_URL", ""),
	}

	ebiten.SetWindowSize(int(tuning.Width), int(tuning.Height))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(webgame.New(tuning, textures, link, logger)); err != nil {
		logger.Fatal("Game stopped", "err", err)
	}
}
