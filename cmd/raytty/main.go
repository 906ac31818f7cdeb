// Command raytty renders a grid map from a first-person camera in a terminal,
// two pixels per character cell.
package main

import (
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	"raycaster/config"
	"raycaster/model"
	"raycaster/scene"
)

const frameInterval = 33 * time.Millisecond

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	logPath := fs.String("log", "raytty.log", "log file, the terminal itself is used for drawing")
	_ = fs.Parse(os.Args[1:])

	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "raytty: open log: %v\n", err)
		os.Exit(1)
	}
	logger := log.New(f, "raytty: ", log.LstdFlags)

	path, _ := fs.GetString("config")
	err = run(path, fs, logger)
	if err != nil {
		logger.Print(err)
		fmt.Fprintf(os.Stderr, "raytty: %v\n", err)
	}
	f.Close()
	if err != nil {
		os.Exit(1)
	}
}

// viewSize returns the frame size for a terminal of cols by rows cells. The
// last row holds the status line.
func viewSize(cols, rows int) (int, int) {
	return max(cols, 1), max(2*(rows-1), 1)
}

func statusLine(cam *model.Camera, paused bool) string {
	pos := cam.Pos()
	heading := math.Mod(cam.HeadingAngle()*180/math.Pi+360, 360)
	s := fmt.Sprintf(" pos %0.2f,%0.2f  heading %0.0f  wasd/arrows move, q/e turn, p pause, esc quit", pos.X, pos.Y, heading)
	if paused {
		s = " PAUSED" + s
	}
	return s
}

// pollEvents forwards screen events to events until the screen is finalized
// or done is closed.
func pollEvents(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		// nil after Fini
		if ev == nil {
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func run(path string, fs *pflag.FlagSet, logger *log.Logger) error {
	cfg, err := config.Load(path, fs)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	cols, rows := screen.Size()
	view, err := cfg.Clone()
	if err != nil {
		return err
	}
	view.Screen.Wd, view.Screen.Ht = viewSize(cols, rows)
	logger.Printf("terminal %dx%d, view %dx%d", cols, rows, view.Screen.Wd, view.Screen.Ht)

	s, err := scene.Load(view, logger)
	if err != nil {
		return err
	}

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, eventChan, done)

	var in model.Intent
	paused := false
	dirty := true

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keyAction(ev.Key(), ev.Rune(), &in) {
				case actQuit:
					logger.Printf("quit requested")
					return nil
				case actPause:
					paused = !paused
					dirty = true
					logger.Printf("paused: %v", paused)
				}
			case *tcell.EventResize:
				cols, rows = ev.Size()
				w, h := viewSize(cols, rows)
				if err := s.Resize(w, h); err != nil {
					return err
				}
				screen.Clear()
				dirty = true
				logger.Printf("resized to %dx%d", cols, rows)
			}

		case <-ticker.C:
			if !paused {
				s.Update(in)
			}
			in = model.Intent{}

			drawn, err := s.Render()
			if err != nil {
				return fmt.Errorf("render frame: %w", err)
			}
			if drawn {
				drawFrame(screen, s.Frame, s.Caster.Width(), s.Caster.Height())
			}
			if drawn || dirty {
				drawStatus(screen, rows-1, cols, statusLine(s.Player.Camera, paused))
				screen.Show()
				dirty = false
			}
		}
	}
}
