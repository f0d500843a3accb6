package main

import (
	"image"
	"log"

	"github.com/automoto/archer-arena/assets"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/fonts"
	"github.com/automoto/archer-arena/persistence"
	"github.com/automoto/archer-arena/scenes"
	"github.com/automoto/archer-arena/sfx"
	"github.com/automoto/archer-arena/shared/protocol"
	"github.com/hajimehoshi/ebiten/v2"
)

// version is sent to servers in the join request. Set with -ldflags.
var version = "dev"

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame(ctx *scenes.Context) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	ctx.Changer = g
	g.scene = scenes.NewMenuScene(ctx)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	// Register network components for client-side deserialization
	if err := protocol.RegisterComponents(); err != nil {
		log.Fatalf("Failed to register network components: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Printf("Warning: Could not load fonts: %v", err)
	}

	arenas, err := assets.NewArenaLoader()
	if err != nil {
		log.Fatalf("Failed to load arenas: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	store := persistence.OpenOrMemory(config.Server.AppName)
	ctx := &scenes.Context{
		Arenas:   arenas,
		Sound:    sfx.New(),
		Store:    store,
		Scores:   persistence.NewScoreBook(store),
		Settings: scenes.DefaultSettings(persistence.LoadSettings(store)),
		Version:  version,
	}

	if err := ebiten.RunGame(NewGame(ctx)); err != nil {
		log.Fatal(err)
	}
}
