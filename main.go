package main

import (
	"flag"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/drube17/bossrush/common"
	"github.com/drube17/bossrush/prefabs"
)

func main() {
	startStage := flag.Int("stage", 1, "stage to start on (1-5)")
	seed := flag.Int64("seed", 0, "random seed (0 for time-based)")
	bonus := flag.Bool("bonus", false, "unlock the bonus stage after stage 5")
	prefabDir := flag.String("prefabs", "", "on-disk prefab directory to hot reload instead of the embedded files")
	flag.Parse()

	var watcher *prefabs.Watcher
	if *prefabDir != "" {
		prefabs.SetOverrideDir(*prefabDir)
		var err error
		watcher, err = prefabs.NewWatcher(*prefabDir, filepath.Join(*prefabDir, "scripts"))
		if err != nil {
			log.Printf("prefab watcher disabled: %v", err)
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowSize(common.ScreenWidth, common.ScreenHeight)
	ebiten.SetWindowTitle("bossrush")

	game, err := NewGame(*startStage, *seed, *bonus, watcher)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
