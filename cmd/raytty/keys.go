package main

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"raycaster/model"
)

type action int

const (
	actNone action = iota
	actMove
	actPause
	actQuit
)

// keyAction maps one key press onto in. Terminals report presses but not
// releases, so every press (including auto repeat) is one tick of movement.
// Upper case letters run.
func keyAction(key tcell.Key, ch rune, in *model.Intent) action {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actQuit
	case tcell.KeyUp:
		in.Forward = true
		return actMove
	case tcell.KeyDown:
		in.Backward = true
		return actMove
	case tcell.KeyLeft:
		in.TurnLeft = true
		return actMove
	case tcell.KeyRight:
		in.TurnRight = true
		return actMove
	case tcell.KeyRune:
	default:
		return actNone
	}

	switch unicode.ToLower(ch) {
	case 'w':
		in.Forward = true
	case 's':
		in.Backward = true
	case 'a':
		in.StrafeLeft = true
	case 'd':
		in.StrafeRight = true
	case 'q':
		in.TurnLeft = true
	case 'e':
		in.TurnRight = true
	case 'p':
		return actPause
	default:
		return actNone
	}
	if unicode.IsUpper(ch) {
		in.Run = true
	}
	return actMove
}
