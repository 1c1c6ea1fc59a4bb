// cmd/portfolio/main.go
package main

import (
	"errors"
	"flag"
	"io/fs"
	"log"
	"net/http"
	_ "net/http/pprof"

	"go-portfolio-fx/internal/app"
	"go-portfolio-fx/internal/audio"
	ebitenbackend "go-portfolio-fx/internal/backend/ebiten"
	raylibbackend "go-portfolio-fx/internal/backend/raylib"
	"go-portfolio-fx/internal/config"
	"go-portfolio-fx/internal/defs"
	"go-portfolio-fx/internal/interfaces"
)

func main() {
	configPath := flag.String("config", "", "Path to a settings file (yaml, json or toml)")
	backend := flag.String("backend", "", "Rendering backend: ebiten or raylib")
	devMode := flag.Bool("dev", false, "Skip the intro screen")
	mute := flag.Bool("mute", false, "Start with sound disabled")
	pprofAddr := flag.String("pprof", "", "Serve pprof on this address, e.g. localhost:6060")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *backend != "" {
		settings.Window.Backend = *backend
		if err := settings.Validate(); err != nil {
			log.Fatal(err)
		}
	}
	if *mute {
		settings.Audio.Enabled = false
	}

	if *pprofAddr != "" {
		go func() {
			log.Println(http.ListenAndServe(*pprofAddr, nil))
		}()
	}

	catalog := defs.DefaultCatalog()
	if settings.Catalog.Path != "" {
		loaded, err := defs.LoadCatalog(settings.Catalog.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			log.Printf("Catalog %s not found, using built-in skills", settings.Catalog.Path)
		case err != nil:
			log.Fatalf("Failed to load catalog: %v", err)
		default:
			catalog = loaded
		}
	}

	opts := app.Options{
		Settings:  settings,
		Sounds:    audio.NewSoundManager(settings.Audio),
		Catalog:   catalog,
		SkipIntro: *devMode,
	}

	log.Printf("Starting %q with %s backend, %d skills", settings.Window.Title, settings.Window.Backend, len(catalog.Skills))
	switch settings.Window.Backend {
	case "raylib":
		runner := raylibbackend.NewRunner(settings)
		if settings.Orbit.Mode == "3d" {
			opts.Presentation = runner.NewScene
		}
		err = runner.Run(func() interfaces.Host { return app.New(opts) })
	default:
		err = ebitenbackend.Run(app.New(opts), settings.Window)
	}
	if err != nil {
		log.Fatal(err)
	}
}
