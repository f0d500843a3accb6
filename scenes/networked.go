package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/archer-arena/components"
	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/input"
	"github.com/automoto/archer-arena/network"
	"github.com/automoto/archer-arena/render"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/shared/messages"
	"github.com/automoto/archer-arena/shared/netcomponents"
	"github.com/automoto/archer-arena/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NetworkedScene renders a match run by a remote server and forwards local
// input to it.
type NetworkedScene struct {
	ecsWorld   *ecs.ECS
	ctx        *Context
	netClient  *network.Client
	poller     *input.Poller
	once       sync.Once
	presentIDs map[esync.NetworkId]bool

	arena     *components.Arena
	arenaName string
	matchOver *messages.MatchOver
}

func NewNetworkedScene(ctx *Context, client *network.Client) *NetworkedScene {
	return &NetworkedScene{
		ctx:        ctx,
		netClient:  client,
		poller:     input.NewPoller(),
		presentIDs: make(map[esync.NetworkId]bool),
	}
}

func (ns *NetworkedScene) Update() {
	ns.once.Do(ns.configure)

	state := ns.netClient.State()
	if state == network.StateDisconnected || state == network.StateError || inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		msg := "Disconnected from server"
		if err := ns.netClient.LastError(); err != nil {
			msg = err.Error()
		}
		log.Println("[networked] leaving match:", msg)
		ns.netClient.Disconnect()
		ns.ctx.Changer.ChangeScene(NewMenuScene(ns.ctx).WithMessage(msg))
		return
	}

	if snap := ns.netClient.LatestSnapshot(); snap != nil {
		ns.applySnapshot(*snap)
	}

	ns.ecsWorld.Update()
}

func (ns *NetworkedScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ns.ecsWorld == nil {
		return
	}

	ns.ecsWorld.Draw(screen)
}

func (ns *NetworkedScene) configure() {
	ns.ecsWorld = ecs.NewECS(donburi.NewWorld())

	ns.ecsWorld.AddSystem(ns.sendInput)
	ns.ecsWorld.AddSystem(NewNetInterpSystem(ns.netClient.TickRate))
	ns.ecsWorld.AddSystem(ns.playEvents)
	ns.ecsWorld.AddRenderer(LayerDefault, ns.drawMatch)
}

// sendInput polls devices and sends one numbered input per frame, plus an
// upgrade choice when the local archer is leveling up.
func (ns *NetworkedScene) sendInput(e *ecs.ECS) {
	ns.poller.Update(ns.localScreenPos(e.World))

	if ns.netClient.State() != network.StateJoinedGame {
		return
	}
	if err := ns.netClient.SendMessage(ns.poller.PlayerInput()); err != nil {
		log.Printf("[networked] send input: %v", err)
	}

	m, ok := netcomponents.NetMatch.First(e.World)
	if !ok {
		return
	}
	match := netcomponents.NetMatch.Get(m)
	if !match.IsLevelingUp || match.LevelingActorID != ns.netClient.Joined().ActorID {
		return
	}
	if i := upgradeKeyPressed(); i >= 0 && i < len(match.Offers) {
		if err := ns.netClient.SendMessage(messages.UpgradeChoice{UpgradeID: match.Offers[i]}); err != nil {
			log.Printf("[networked] send upgrade choice: %v", err)
		}
	}
}

func (ns *NetworkedScene) playEvents(_ *ecs.ECS) {
	events := ns.netClient.DrainEvents()
	names := make([]string, 0, len(events))
	for _, e := range events {
		names = append(names, e.Kind)
	}
	ns.ctx.Sound.PlayAll(names)

	if over, ok := ns.netClient.MatchOver(); ok {
		ns.matchOver = &over
	}
}

func (ns *NetworkedScene) drawMatch(e *ecs.ECS, screen *ebiten.Image) {
	frame := ns.buildFrame(e.World)
	switch {
	case ns.netClient.State() != network.StateJoinedGame:
		frame.HUD.Status = "Connecting to " + ns.ctx.Settings.ServerAddress
	case frame.HUD.GameOver && ns.matchOver != nil:
		frame.HUD.Status = fmt.Sprintf("Next match in %.0fs", ns.matchOver.NextMatchIn)
	}
	render.Draw(screen, frame, ns.ctx.Settings.ShowDebug)
}

// resolveArena loads the arena the server announced, once per name.
func (ns *NetworkedScene) resolveArena(mode cfg.GameMode, name string) *components.Arena {
	if ns.arena != nil && ns.arenaName == name {
		return ns.arena
	}
	ns.arenaName = name

	rules := cfg.ForMode(mode)
	if a, err := ns.ctx.Arenas.Arena(name, rules.Arena.CellSize); err == nil {
		ns.arena = a
		return a
	}
	ns.arena = factory.DefaultArena(mode)
	return ns.arena
}

func (ns *NetworkedScene) localScreenPos(world donburi.World) gamemath.Vec2 {
	off := render.Offset(ns.arena, cfg.C.Width, cfg.C.Height)
	entity := esync.FindByNetworkId(world, ns.netClient.NetworkID())
	if !world.Valid(entity) {
		return off
	}
	entry := world.Entry(entity)
	if !entry.HasComponent(netcomponents.NetTransform) {
		return off
	}
	tr := netcomponents.NetTransform.Get(entry)
	return off.Add(gamemath.V(tr.X, tr.Y))
}

// buildFrame turns the synced entities into render views.
func (ns *NetworkedScene) buildFrame(world donburi.World) render.Frame {
	localActor := ns.netClient.Joined().ActorID
	var f render.Frame

	var match netcomponents.NetMatchData
	if entry, ok := netcomponents.NetMatch.First(world); ok {
		match = *netcomponents.NetMatch.Get(entry)
		f.Arena = ns.resolveArena(cfg.GameMode(match.Mode), match.Arena)
	}

	netcomponents.NetActor.Each(world, func(entry *donburi.Entry) {
		tr := netcomponents.NetTransform.Get(entry)
		a := netcomponents.NetActor.Get(entry)
		f.Actors = append(f.Actors, render.ActorView{
			ID:        a.ActorID,
			Name:      a.Name,
			Pos:       gamemath.V(tr.X, tr.Y),
			Radius:    tr.Radius,
			Aim:       tr.Rotation,
			Health:    a.Health,
			MaxHealth: a.MaxHealth,
			DrawRatio: a.DrawRatio,
			Level:     a.Level,
			Kills:     a.Kills,
			Dead:      a.IsDead,
			Dashing:   a.IsDashing,
			Stunned:   a.IsStunned,
			Slowed:    a.IsSlowed,
			Invuln:    a.IsInvuln,
			Bot:       a.IsBot,
			Local:     a.ActorID == localActor,
		})
		if a.ActorID == localActor {
			f.HUD.Health, f.HUD.MaxHealth = a.Health, a.MaxHealth
			f.HUD.Level, f.HUD.XP, f.HUD.XPNext = a.Level, a.XP, a.XPToNextLevel
			f.HUD.DashCooldown, f.HUD.SpecialCooldown = a.DashCooldown, a.SpecialCooldown
		}
		if a.IsBot {
			f.Debug = append(f.Debug, fmt.Sprintf("%s: %s", a.Name, a.Anim))
		}
	})

	netcomponents.NetProjectile.Each(world, func(entry *donburi.Entry) {
		tr := netcomponents.NetTransform.Get(entry)
		p := netcomponents.NetProjectile.Get(entry)
		f.Projectiles = append(f.Projectiles, render.ProjectileView{
			Pos:       gamemath.V(tr.X, tr.Y),
			Rotation:  tr.Rotation,
			Radius:    tr.Radius,
			Special:   p.IsSpecial,
			Weak:      p.IsWeakShot,
			Explosive: p.IsExplosive,
			Frost:     p.IsFrost,
			Homing:    p.IsHoming,
		})
	})

	netcomponents.NetEnemy.Each(world, func(entry *donburi.Entry) {
		tr := netcomponents.NetTransform.Get(entry)
		e := netcomponents.NetEnemy.Get(entry)
		f.Enemies = append(f.Enemies, render.EnemyView{
			Type:      e.TypeName,
			Pos:       gamemath.V(tr.X, tr.Y),
			Rotation:  tr.Rotation,
			Radius:    tr.Radius,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Slowed:    e.IsSlowed,
		})
	})

	netcomponents.NetEffect.Each(world, func(entry *donburi.Entry) {
		tr := netcomponents.NetTransform.Get(entry)
		e := netcomponents.NetEffect.Get(entry)
		f.Effects = append(f.Effects, render.EffectView{
			Type:   e.Type,
			Pos:    gamemath.V(tr.X, tr.Y),
			Radius: tr.Radius,
			Life:   e.Life,
		})
	})

	f.HUD.Mode = cfg.GameMode(match.Mode)
	f.HUD.Time = match.Time
	f.HUD.Wave = match.Wave
	f.HUD.WaveLeft = match.WaveRemaining
	f.HUD.WavesCleared = match.WavesCleared
	f.HUD.Score = match.Score
	f.HUD.GameOver = match.IsGameOver
	if match.IsLevelingUp {
		if match.LevelingActorID == localActor {
			for _, id := range match.Offers {
				f.HUD.Offers = append(f.HUD.Offers, cfg.UpgradeID(id))
			}
		} else {
			f.HUD.WaitingOnUpgrade = true
		}
	}
	for _, a := range f.Actors {
		if match.Winner != 0 && a.ID == match.Winner {
			f.HUD.Winner = a.Name
		}
	}
	return f
}

func (ns *NetworkedScene) applySnapshot(snapshot esync.WorldSnapshot) {
	world := ns.ecsWorld.World

	clear(ns.presentIDs)

	for _, ent := range snapshot {
		ns.presentIDs[ent.Id] = true

		var compData []any
		for _, componentBytes := range ent.State {
			instance, err := esync.Mapper.Deserialize(componentBytes)
			if err != nil {
				continue
			}
			compData = append(compData, instance)
		}

		entity := esync.FindByNetworkId(world, ent.Id)
		if !world.Valid(entity) {
			ctypes := componentTypesFromInstances(compData)
			entity = world.Create(ctypes...)

			entry := world.Entry(entity)
			entry.AddComponent(esync.NetworkIdComponent)
			esync.NetworkIdComponent.SetValue(entry, ent.Id)
			entry.AddComponent(NetInterp)
		}

		entry := world.Entry(entity)
		for _, data := range compData {
			if v, ok := data.(netcomponents.NetTransformData); ok && entry.HasComponent(NetInterp) {
				NetInterp.Get(entry).Retarget(entry, v)
				continue
			}
			applyComponentToEntry(entry, data)
		}
	}

	esync.NetworkEntityQuery.Each(world, func(entry *donburi.Entry) {
		id := esync.GetNetworkId(entry)
		if id == nil {
			return
		}
		if !ns.presentIDs[*id] {
			entry.Remove()
		}
	})
}

func componentTypesFromInstances(components []any) []donburi.IComponentType {
	var ctypes []donburi.IComponentType
	for _, data := range components {
		switch data.(type) {
		case netcomponents.NetTransformData:
			ctypes = append(ctypes, netcomponents.NetTransform)
		case netcomponents.NetVelocityData:
			ctypes = append(ctypes, netcomponents.NetVelocity)
		case netcomponents.NetActorData:
			ctypes = append(ctypes, netcomponents.NetActor)
		case netcomponents.NetProjectileData:
			ctypes = append(ctypes, netcomponents.NetProjectile)
		case netcomponents.NetEnemyData:
			ctypes = append(ctypes, netcomponents.NetEnemy)
		case netcomponents.NetEffectData:
			ctypes = append(ctypes, netcomponents.NetEffect)
		case netcomponents.NetMatchData:
			ctypes = append(ctypes, netcomponents.NetMatch)
		}
	}
	return ctypes
}

func applyComponentToEntry(entry *donburi.Entry, data any) {
	switch v := data.(type) {
	case netcomponents.NetTransformData:
		setComponent(entry, netcomponents.NetTransform, v)
	case netcomponents.NetVelocityData:
		setComponent(entry, netcomponents.NetVelocity, v)
	case netcomponents.NetActorData:
		setComponent(entry, netcomponents.NetActor, v)
	case netcomponents.NetProjectileData:
		setComponent(entry, netcomponents.NetProjectile, v)
	case netcomponents.NetEnemyData:
		setComponent(entry, netcomponents.NetEnemy, v)
	case netcomponents.NetEffectData:
		setComponent(entry, netcomponents.NetEffect, v)
	case netcomponents.NetMatchData:
		setComponent(entry, netcomponents.NetMatch, v)
	}
}

func setComponent[T any](entry *donburi.Entry, ctype *donburi.ComponentType[T], v T) {
	if !entry.HasComponent(ctype) {
		entry.AddComponent(ctype)
	}
	ctype.SetValue(entry, v)
}
