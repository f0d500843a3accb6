package config

import "image/color"

// DisplayConfig contains the local client's window settings.
type DisplayConfig struct {
	Width, Height int
	Title         string
	ShowDebug     bool // Draw collision shapes and AI state
	ServerAddress string
	PlayerName    string
}

// PaletteConfig holds the colors used by the renderer.
type PaletteConfig struct {
	Background  color.NRGBA
	Floor       color.NRGBA
	Wall        color.NRGBA
	Local       color.NRGBA
	Human       color.NRGBA
	Bot         color.NRGBA
	Dead        color.NRGBA
	Arrow       color.NRGBA
	Special     color.NRGBA
	Frost       color.NRGBA
	Explosive   color.NRGBA
	Explosion   color.NRGBA
	Stomp       color.NRGBA
	HealthBar   color.NRGBA
	HealthBack  color.NRGBA
	XPBar       color.NRGBA
	Text        color.NRGBA
	TextDim     color.NRGBA
	Highlight   color.NRGBA
	Overlay     color.NRGBA
	EnemyColors map[string]color.NRGBA
}

var (
	// C is the local client configuration
	C DisplayConfig
	// Palette is the renderer's color table
	Palette PaletteConfig
)

func init() {
	C = DisplayConfig{
		Width:         1200,
		Height:        800,
		Title:         "Archer Arena",
		ShowDebug:     false,
		ServerAddress: "localhost:7373",
		PlayerName:    "archer",
	}

	Palette = PaletteConfig{
		Background: color.NRGBA{18, 18, 24, 255},
		Floor:      color.NRGBA{44, 52, 40, 255},
		Wall:       color.NRGBA{110, 98, 84, 255},
		Local:      color.NRGBA{80, 170, 255, 255},
		Human:      color.NRGBA{120, 220, 140, 255},
		Bot:        color.NRGBA{230, 120, 90, 255},
		Dead:       color.NRGBA{80, 80, 80, 255},
		Arrow:      color.NRGBA{235, 225, 200, 255},
		Special:    color.NRGBA{255, 210, 60, 255},
		Frost:      color.NRGBA{150, 220, 255, 255},
		Explosive:  color.NRGBA{255, 120, 40, 255},
		Explosion:  color.NRGBA{255, 140, 40, 110},
		Stomp:      color.NRGBA{160, 120, 80, 110},
		HealthBar:  color.NRGBA{90, 200, 90, 255},
		HealthBack: color.NRGBA{60, 20, 20, 255},
		XPBar:      color.NRGBA{150, 110, 255, 255},
		Text:       color.NRGBA{235, 235, 235, 255},
		TextDim:    color.NRGBA{150, 150, 160, 255},
		Highlight:  color.NRGBA{255, 200, 80, 255},
		Overlay:    color.NRGBA{0, 0, 0, 170},
		EnemyColors: map[string]color.NRGBA{
			EnemyGrunt:    {200, 70, 70, 255},
			EnemyScout:    {230, 200, 70, 255},
			EnemyBrute:    {140, 40, 40, 255},
			EnemyHunter:   {200, 90, 200, 255},
			EnemyGuardian: {120, 120, 200, 255},
		},
	}
}
