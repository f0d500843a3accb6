package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/archer-arena/components"
	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/input"
	"github.com/automoto/archer-arena/persistence"
	"github.com/automoto/archer-arena/render"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/systems"
	"github.com/automoto/archer-arena/systems/factory"
	"github.com/google/uuid"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MatchSetup describes a local match.
type MatchSetup struct {
	Mode       cfg.GameMode
	Arena      string // Embedded arena name; empty for the open field
	PlayerName string
	Bots       int
	Difficulty cfg.BotDifficulty
	Seed       uint64 // 0 picks one from the clock
}

// LocalMatchScene runs the simulation in-process for one human archer.
type LocalMatchScene struct {
	ecs     *ecs.ECS
	ctx     *Context
	setup   MatchSetup
	once    sync.Once
	poller  *input.Poller
	state   *components.State
	localID components.ID
	matchID string

	paused bool
	result *persistence.MatchResult
}

// NewLocalMatchScene creates a local match with the given setup
func NewLocalMatchScene(ctx *Context, setup MatchSetup) *LocalMatchScene {
	return &LocalMatchScene{ctx: ctx, setup: setup}
}

func (ls *LocalMatchScene) Update() {
	ls.once.Do(ls.configure)
	ls.ecs.Update()
}

func (ls *LocalMatchScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ls.ecs == nil {
		return
	}
	ls.ecs.Draw(screen)
}

func (ls *LocalMatchScene) configure() {
	ls.ecs = ecs.NewECS(donburi.NewWorld())
	ls.poller = input.NewPoller()
	ls.state = newLocalMatch(ls.ctx, ls.setup)
	ls.localID = ls.state.Actors[0].ID
	ls.matchID = uuid.NewString()
	ls.playEvents()

	ls.ecs.AddSystem(ls.updateMatch)
	ls.ecs.AddRenderer(LayerDefault, ls.drawMatch)
}

// newLocalMatch builds the opening state, falling back to the open field
// when the named arena cannot be loaded.
func newLocalMatch(ctx *Context, setup MatchSetup) *components.State {
	rules := cfg.ForMode(setup.Mode)

	var arena *components.Arena
	if setup.Arena != "" {
		a, err := ctx.Arenas.Arena(setup.Arena, rules.Arena.CellSize)
		if err != nil {
			log.Printf("Warning: Could not load arena %q: %v", setup.Arena, err)
		} else {
			arena = a
		}
	}

	bots := make([]cfg.BotDifficulty, setup.Bots)
	for i := range bots {
		bots[i] = setup.Difficulty
	}

	seed := setup.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return factory.NewMatch(factory.MatchOptions{
		Mode:    setup.Mode,
		Seed:    seed,
		Rules:   rules,
		Arena:   arena,
		Players: []string{setup.PlayerName},
		Bots:    bots,
	})
}

func (ls *LocalMatchScene) updateMatch(_ *ecs.ECS) {
	ls.poller.Update(ls.localScreenPos())
	s := ls.state

	if s.IsGameOver {
		ls.record()
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || ls.poller.JustPressed(cfg.ActionPause) {
			ls.ctx.Changer.ChangeScene(NewGameOverScene(ls.ctx, *ls.result, ls.setup))
		}
		return
	}

	if ls.poller.JustPressed(cfg.ActionPause) {
		ls.paused = !ls.paused
	}
	if ls.paused {
		if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
			ls.ctx.Changer.ChangeScene(NewMenuScene(ls.ctx))
		}
		return
	}

	if s.IsLevelingUp && s.LevelingActorID == ls.localID {
		if i := upgradeKeyPressed(); i >= 0 && i < len(s.AvailableUpgrades) {
			ls.state = systems.ApplyUpgrade(s, s.AvailableUpgrades[i])
			ls.playEvents()
		}
		return
	}

	inputs := map[components.ID]components.Input{ls.localID: ls.poller.Input()}
	ls.state = systems.Step(s, 1/float64(ebiten.TPS()), inputs)
	ls.playEvents()
}

func (ls *LocalMatchScene) drawMatch(_ *ecs.ECS, screen *ebiten.Image) {
	frame := render.FromState(ls.state, ls.localID)
	switch {
	case ls.paused:
		frame.HUD.Status = "PAUSED  Esc resume  Q quit"
	case ls.state.IsGameOver:
		frame.HUD.Status = "Enter to continue"
	}
	render.Draw(screen, frame, ls.ctx.Settings.ShowDebug)
}

// record stores the result the first time the match is seen over.
func (ls *LocalMatchScene) record() {
	if ls.result != nil {
		return
	}
	r := persistence.ResultFromState(ls.matchID, ls.state, time.Now())
	ls.result = &r
	if err := ls.ctx.Scores.Record(r); err != nil {
		log.Printf("Warning: Could not record match result: %v", err)
	}
}

func (ls *LocalMatchScene) playEvents() {
	names := make([]string, 0, len(ls.state.Events))
	for _, e := range ls.state.Events {
		names = append(names, e.Kind.String())
	}
	ls.ctx.Sound.PlayAll(names)
}

func (ls *LocalMatchScene) localScreenPos() gamemath.Vec2 {
	off := render.Offset(ls.state.Arena, cfg.C.Width, cfg.C.Height)
	if a := ls.state.Actor(ls.localID); a != nil {
		return off.Add(a.Pos)
	}
	return off
}
