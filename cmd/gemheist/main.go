package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/leterax/gem-heist/internal/config"
	"github.com/leterax/gem-heist/pkg/game"
	"github.com/leterax/gem-heist/pkg/render"
)

func init() {
	// This is needed to ensure that OpenGL functions are called from the same thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "", "Path to a YAML settings file (optional)")
	watch := flag.Bool("watch", false, "Reload the settings file when it changes")
	width := flag.Int("width", 0, "Window width (overrides settings)")
	height := flag.Int("height", 0, "Window height (overrides settings)")
	title := flag.String("title", "", "Window title (overrides settings)")
	vsync := flag.Bool("vsync", true, "Enable vsync (overrides settings)")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load settings: %v", err)
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			settings.Window.Width = *width
		case "height":
			settings.Window.Height = *height
		case "title":
			settings.Window.Title = *title
		case "vsync":
			settings.Window.VSync = *vsync
		}
	})
	if err := settings.Validate(); err != nil {
		log.Fatalf("Invalid settings: %v", err)
	}

	var watcher *config.Watcher
	if *watch {
		if *configPath == "" {
			log.Fatalf("-watch needs -config")
		}
		var err error
		watcher, err = config.Watch(*configPath)
		if err != nil {
			log.Fatalf("Failed to watch settings: %v", err)
		}
		defer watcher.Close()
		log.Printf("Watching %s for changes", *configPath)
	}

	session := game.NewSession(settings)

	renderer, err := render.NewRenderer(session, watcher)
	if err != nil {
		log.Fatalf("Failed to initialize renderer: %v", err)
	}

	log.Printf("Starting %s (WASD move, mouse look, Q toggles view, Esc quits)", settings.Window.Title)
	renderer.Run()
}
