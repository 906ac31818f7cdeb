// Command raycaster renders a grid map from a first-person camera in a window.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"raycaster/config"
	"raycaster/engine"
	"raycaster/scene"
)

func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	title := fs.String("title", "Raycaster", "window title")
	_ = fs.Parse(os.Args[1:])

	logger := log.New(os.Stderr, "raycaster: ", log.LstdFlags)

	path, _ := fs.GetString("config")
	cfg, err := config.Load(path, fs)
	if err != nil {
		logger.Fatal(err)
	}
	fmt.Printf("Initializing %dx%d view from %s\n", cfg.Screen.Wd, cfg.Screen.Ht, path)

	s, err := scene.Load(cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}

	g, err := engine.NewGame(s, logger)
	if err != nil {
		logger.Fatal(err)
	}
	if err := engine.Run(g, *title); err != nil {
		logger.Fatal(err)
	}
}
