package main

import (
	"wireframe/internal/commands"
	"wireframe/internal/debug"
	"wireframe/internal/engineconfig"
	"wireframe/internal/graphics"
	"wireframe/internal/logger"
	"wireframe/internal/scene"
	"wireframe/internal/terminal"
	"wireframe/internal/viewer"
)

func main() {
	log := logger.New()

	prefs, err := engineconfig.Load()
	if err != nil {
		log.Log(err.Error())
	}
	scn, err := scene.Load(prefs.ScenePath)
	if err != nil {
		log.Log(err.Error())
		scn = scene.Default()
	}

	view := viewer.New(log, prefs, scn)
	reg := commands.NewRegistry()
	view.RegisterCommands(reg)

	term := terminal.New(log, reg)
	dbg := debug.New()
	target := graphics.NewLineTarget(prefs.PixelsPerUnit)

	draw := func() {
		view.DrawFrame(target)
		dbg.ShowFPS = view.Prefs.ShowFPS
		dbg.ShowLineCount = view.Prefs.ShowLineCount
		dbg.Draw(view.LastLines())
		term.Draw()
	}
	graphics.Run(term.Update, draw)
}
