//go:build android || ios

// Package mobile is the ebitenmobile binding entry point:
//
//	ebitenmobile bind -target android -javapkg com.example.pocketcalc ./mobile
package mobile

import (
	"pocketcalc/app"
	"pocketcalc/hal"

	ebitenmobile "github.com/hajimehoshi/ebiten/v2/mobile"
)

func init() {
	ebitenmobile.SetGame(hal.NewGame(hal.Options{Title: "Calculator"}, app.New), nil)
}

// Dummy forces gomobile to export this package.
func Dummy() {}
