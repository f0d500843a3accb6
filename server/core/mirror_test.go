package core

import (
	"errors"
	"testing"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/shared/netcomponents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestMirrorCreatesOneEntityPerObject(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)
	world := donburi.NewWorld()
	m := NewMirror(world)

	spawned := map[EntityKind]int{}
	m.OnSpawn = func(kind EntityKind, _ donburi.Entity) error {
		spawned[kind]++
		return nil
	}

	require.NoError(t, m.Apply(s.Tick(0)))
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, spawned[KindActor])
	assert.Equal(t, 1, spawned[KindMatch])

	// Re-applying reuses the entities
	require.NoError(t, m.Apply(s.Tick(0)))
	assert.Equal(t, 3, m.Len())
	assert.Equal(t, 2, spawned[KindActor])
}

func TestMirrorCopiesActorAndMatchData(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)
	id, err := s.Join("alice")
	require.NoError(t, err)
	mutate(s, func(st *components.State) {
		a := st.Actor(id)
		a.Pos = gamemath.V(10, 20)
		a.Vel = gamemath.V(3, 4)
		a.Aim = 1.5
		a.Health = 60
		a.Kills = 2
	})

	world := donburi.NewWorld()
	m := NewMirror(world)
	f := s.Tick(0)
	f.LastSeq = map[components.ID]uint32{id: 9}
	require.NoError(t, m.Apply(f))

	entity, ok := m.Entity(KindActor, id)
	require.True(t, ok)
	entry := world.Entry(entity)

	tr := netcomponents.NetTransform.Get(entry)
	assert.Equal(t, 10.0, tr.X)
	assert.Equal(t, 20.0, tr.Y)
	assert.Equal(t, 1.5, tr.Rotation)

	vel := netcomponents.NetVelocity.Get(entry)
	assert.Equal(t, 3.0, vel.VX)
	assert.Equal(t, 4.0, vel.VY)

	data := netcomponents.NetActor.Get(entry)
	assert.Equal(t, "alice", data.Name)
	assert.Equal(t, 60.0, data.Health)
	assert.Equal(t, 2, data.Kills)
	assert.False(t, data.IsBot)
	assert.Equal(t, uint32(9), data.LastSequence)

	matchEntity, ok := m.Entity(KindMatch, 0)
	require.True(t, ok)
	md := netcomponents.NetMatch.Get(world.Entry(matchEntity))
	assert.Equal(t, s.MatchID(), md.MatchID)
	assert.Equal(t, int(config.ModePvP), md.Mode)
	assert.Equal(t, "archer-arena", md.Arena)
}

func TestMirrorRemovesVanishedObjects(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)
	world := donburi.NewWorld()
	m := NewMirror(world)

	mutate(s, func(st *components.State) {
		st.Projectiles = append(st.Projectiles, components.Projectile{
			ID: st.AllocID(), OwnerID: 1, Pos: gamemath.V(5, 5), Radius: 4,
		})
	})
	f := s.Tick(0)
	require.NoError(t, m.Apply(f))
	arrowID := f.State.Projectiles[0].ID
	arrow, ok := m.Entity(KindProjectile, arrowID)
	require.True(t, ok)
	assert.Equal(t, 4, m.Len())

	mutate(s, func(st *components.State) { st.Projectiles = nil })
	require.NoError(t, m.Apply(s.Tick(0)))
	assert.Equal(t, 3, m.Len())
	assert.False(t, world.Valid(arrow))
	_, ok = m.Entity(KindProjectile, arrowID)
	assert.False(t, ok)
}

func TestMirrorMirrorsPvEWave(t *testing.T) {
	s := newTestSession(config.ModePvE, 1, nil)
	world := donburi.NewWorld()
	m := NewMirror(world)
	require.NoError(t, m.Apply(s.Tick(0)))

	matchEntity, ok := m.Entity(KindMatch, 0)
	require.True(t, ok)
	md := netcomponents.NetMatch.Get(world.Entry(matchEntity))
	assert.Equal(t, 1, md.Wave)
	assert.Positive(t, md.WaveRemaining)
}

func TestMirrorPropagatesSpawnErrors(t *testing.T) {
	s := newTestSession(config.ModePvP, 1, nil)
	m := NewMirror(donburi.NewWorld())
	boom := errors.New("boom")
	m.OnSpawn = func(EntityKind, donburi.Entity) error { return boom }
	assert.ErrorIs(t, m.Apply(s.Tick(0)), boom)
}
