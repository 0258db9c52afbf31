package main

import (
	"flag"
	"log"
	"os"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/brickbreaker/common"
)

func main() {
	levelFlag := flag.Int("level", 0, "level number to boot into (overrides BRICKBREAKER_LEVEL)")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	flag.Parse()

	start := 1
	if v := os.Getenv("BRICKBREAKER_LEVEL"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			start = n
		} else {
			log.Printf("ignoring BRICKBREAKER_LEVEL=%q: not a positive integer", v)
		}
	}
	if *levelFlag > 0 {
		start = *levelFlag
	}

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("brickbreaker")

	game, err := NewGame(start)
	if err != nil {
		log.Fatal(err)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
