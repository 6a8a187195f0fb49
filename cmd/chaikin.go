package main

import (
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/chaikin/core/editor"
	"github.com/ingyamilmolinar/chaikin/internal/config"
	applog "github.com/ingyamilmolinar/chaikin/internal/log"
	"github.com/ingyamilmolinar/chaikin/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logger := applog.New(os.Stdout, applog.ParseLevel(cfg.LogLevel))

	binding := editor.BindingRightDrag
	if cfg.Binding == config.BindingLeftOnly {
		binding = editor.BindingLeftOnly
	}

	ed := editor.New(binding, cfg.AnimInterval(), logger)
	g := ui.New(ed, logger)

	ebiten.SetWindowSize(editor.Width, editor.Height)
	ebiten.SetWindowTitle("Chaikin curve editor")
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
