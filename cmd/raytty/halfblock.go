package main

import (
	"github.com/gdamore/tcell/v2"
)

// upperHalf paints the top pixel with the foreground and the bottom pixel
// with the background, so one cell shows two rows.
const upperHalf = '▀'

// pixel returns the colour of (x, y) in an RGBA frame of width w.
func pixel(frame []byte, w, x, y int) tcell.Color {
	i := 4 * (y*w + x)
	return tcell.NewRGBColor(int32(frame[i]), int32(frame[i+1]), int32(frame[i+2]))
}

// cellStyle returns the style for terminal cell (x, row), which covers frame
// rows 2*row and 2*row+1. A missing bottom row is drawn black.
func cellStyle(frame []byte, w, h, x, row int) tcell.Style {
	top := pixel(frame, w, x, 2*row)
	bottom := tcell.ColorBlack
	if 2*row+1 < h {
		bottom = pixel(frame, w, x, 2*row+1)
	}
	return tcell.StyleDefault.Foreground(top).Background(bottom)
}

// drawFrame copies a w by h frame onto the top (h+1)/2 rows of screen.
func drawFrame(screen tcell.Screen, frame []byte, w, h int) {
	for row := 0; row < (h+1)/2; row++ {
		for x := 0; x < w; x++ {
			screen.SetContent(x, row, upperHalf, nil, cellStyle(frame, w, h, x, row))
		}
	}
}

// drawStatus writes s on terminal row y, padding the rest of the row.
func drawStatus(screen tcell.Screen, y, w int, s string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	x := 0
	for _, r := range s {
		if x >= w {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < w; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}
}
