package main

import (
	"flag"
	"log"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/plus3/ooftn/ecs"

	"github.com/plus3/blockfall/audio"
	"github.com/plus3/blockfall/sim"
)

func main() {
	var (
		width  = flag.Int("width", 10, "well width in cells")
		height = flag.Int("height", 22, "well height in cells")
		seed   = flag.Uint64("seed", uint64(time.Now().UnixNano()), "bag shuffle seed")
		mute   = flag.Bool("mute", false, "disable sound")
	)
	flag.Parse()

	cfg := sim.DefaultConfig()
	cfg.Width = *width
	cfg.Height = *height
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	sounds := audio.NewPlayer()
	if !*mute {
		if err := sounds.Init(); err != nil {
			log.Printf("audio unavailable, running silent: %v", err)
		}
	}

	events := &eventBuffer{}
	engine := sim.New(cfg, sim.Deps{
		Pool:    sim.NewHandlePool(),
		Spawner: sim.NewBagSpawner(sim.SpawnOrigin(cfg.Width, cfg.Height), *seed),
		Events:  events,
	})

	layout = boardLayout{offsetX: 50, offsetY: 50, height: cfg.Height}

	windowWidth := int32(cfg.Width*cellSize + 250)
	windowHeight := int32(cfg.Height*cellSize + 100)
	rl.InitWindow(windowWidth, windowHeight, "Blockfall")
	rl.SetTargetFPS(60)
	defer rl.CloseWindow()

	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Session](registry)
	ecs.RegisterComponent[Popup](registry)

	storage := ecs.NewStorage(registry)
	storage.Spawn(Session{
		Engine: engine,
		Events: events,
		Sounds: sounds,
		Colors: make(map[sim.BlockID]rl.Color),
	})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&InputSystem{})
	scheduler.Register(&SimulationSystem{})
	scheduler.Register(&PopupSystem{})
	scheduler.Register(&RenderSystem{})

	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		deltaTime := currentTime - lastTime
		lastTime = currentTime

		scheduler.Once(deltaTime)
	}
}
