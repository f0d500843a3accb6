package core

import (
	"testing"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/persistence"
	"github.com/automoto/archer-arena/shared/messages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	results []persistence.MatchResult
}

func (r *recordingSink) Record(m persistence.MatchResult) error {
	r.results = append(r.results, m)
	return nil
}

func newTestSession(mode config.GameMode, slots int, sink ScoreSink) *Session {
	return NewSession(SessionOptions{
		Mode:         mode,
		Slots:        slots,
		Difficulty:   config.BotDifficultyEasy,
		Seed:         7,
		RestartDelay: 1,
	}, sink)
}

// mutate replaces the session state with a modified clone.
func mutate(s *Session, fn func(st *components.State)) {
	next := s.state.Clone()
	fn(next)
	s.state = next
}

func TestSessionStartsWithBotsInEverySlot(t *testing.T) {
	s := newTestSession(config.ModePvP, 3, nil)
	state := s.Snapshot()
	require.Len(t, state.Actors, 3)
	for _, a := range state.Actors {
		assert.True(t, a.IsBot(), a.Name)
	}
	assert.NotEmpty(t, s.MatchID())
}

func TestJoinTakesOverFirstBotSlot(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)

	id, err := s.Join("alice")
	require.NoError(t, err)
	assert.Equal(t, components.ID(1), id)

	a := s.Snapshot().Actor(id)
	require.NotNil(t, a)
	assert.False(t, a.IsBot())
	assert.Equal(t, "alice", a.Name)

	id2, err := s.Join("bob")
	require.NoError(t, err)
	assert.Equal(t, components.ID(2), id2)

	_, err = s.Join("carol")
	assert.ErrorIs(t, err, ErrServerFull)
	assert.Equal(t, 2, s.Players())
}

func TestLeaveHandsSlotBackToBot(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)
	id, err := s.Join("alice")
	require.NoError(t, err)

	s.Leave(id)
	a := s.Snapshot().Actor(id)
	require.NotNil(t, a)
	assert.True(t, a.IsBot())
	assert.Equal(t, config.BotDifficultyEasy, a.Bot.Difficulty)
	assert.Equal(t, 0, s.Players())

	// The freed slot can be taken again
	again, err := s.Join("bob")
	require.NoError(t, err)
	assert.Equal(t, id, again)
}

func TestSetInputDropsStaleSequences(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)
	id, err := s.Join("alice")
	require.NoError(t, err)

	in := messages.NewPlayerInput(5)
	in.Actions[config.ActionMoveRight] = true
	s.SetInput(id, in)

	stale := messages.NewPlayerInput(4)
	stale.Actions[config.ActionMoveLeft] = true
	s.SetInput(id, stale)

	f := s.Tick(0.05)
	a := f.State.Actor(id)
	assert.True(t, a.Controls.Right)
	assert.False(t, a.Controls.Left)
	assert.Equal(t, uint32(5), f.LastSeq[id])
}

func TestSetInputIgnoresBotSlots(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)
	in := messages.NewPlayerInput(1)
	in.Actions[config.ActionShoot] = true
	s.SetInput(1, in)
	assert.Empty(t, s.inputs)
}

func TestTickEmitsGameEvents(t *testing.T) {
	s := newTestSession(config.ModePvP, 2, nil)
	id, err := s.Join("alice")
	require.NoError(t, err)

	in := messages.NewPlayerInput(1)
	in.Actions[config.ActionDash] = true
	in.Actions[config.ActionMoveRight] = true
	s.SetInput(id, in)

	f := s.Tick(0.02)
	var dashed bool
	for _, m := range f.Messages {
		if ev, ok := m.(messages.GameEvent); ok && ev.Kind == "dash" && ev.SourceID == uint32(id) {
			dashed = true
		}
	}
	assert.True(t, dashed)
}

func TestGameOverIsReportedOnceThenRestarts(t *testing.T) {
	sink := &recordingSink{}
	s := newTestSession(config.ModePvP, 2, sink)
	id, err := s.Join("alice")
	require.NoError(t, err)
	firstMatch := s.MatchID()

	mutate(s, func(st *components.State) { st.Actor(2).Health = 0 })

	f := s.Tick(0.02)
	require.True(t, f.State.IsGameOver)
	assert.Equal(t, id, f.State.Winner)
	require.Len(t, sink.results, 1)
	assert.Equal(t, firstMatch, sink.results[0].MatchID)
	assert.Equal(t, "alice", sink.results[0].Winner)

	var over *messages.MatchOver
	for _, m := range f.Messages {
		if mo, ok := m.(messages.MatchOver); ok {
			over = &mo
		}
	}
	require.NotNil(t, over)
	assert.Equal(t, uint32(id), over.Winner)

	// Held during the restart delay
	f = s.Tick(0.5)
	assert.True(t, f.State.IsGameOver)
	assert.Len(t, sink.results, 1)

	f = s.Tick(0.6)
	assert.False(t, f.State.IsGameOver)
	assert.NotEqual(t, firstMatch, f.MatchID)
	a := f.State.Actor(id)
	require.NotNil(t, a)
	assert.False(t, a.IsBot(), "returning player keeps the slot")
	assert.Equal(t, "alice", a.Name)
	assert.True(t, f.State.Actor(2).IsBot())
}

func levelUpSession(t *testing.T) (*Session, components.ID) {
	t.Helper()
	s := newTestSession(config.ModePvE, 2, nil)
	id, err := s.Join("alice")
	require.NoError(t, err)
	mutate(s, func(st *components.State) {
		a := st.Actor(id)
		a.XP = a.XPToNextLevel
	})
	f := s.Tick(0.02)
	require.True(t, f.State.IsLevelingUp)
	require.Equal(t, id, f.State.LevelingActorID)
	return s, id
}

func TestChooseUpgrade(t *testing.T) {
	s, id := levelUpSession(t)

	assert.ErrorIs(t, s.ChooseUpgrade(2, "damage"), ErrNotLeveling)
	assert.ErrorIs(t, s.ChooseUpgrade(id, "not-an-upgrade"), ErrUnknownUpgrade)

	offer := s.Snapshot().AvailableUpgrades[0]
	require.NoError(t, s.ChooseUpgrade(id, string(offer)))

	state := s.Snapshot()
	assert.False(t, state.IsLevelingUp)
	assert.Equal(t, 1, state.Actor(id).Upgrades[offer])
}

func TestLeaveResolvesPendingLevelUp(t *testing.T) {
	s, id := levelUpSession(t)
	offer := s.Snapshot().AvailableUpgrades[0]

	s.Leave(id)
	state := s.Snapshot()
	assert.False(t, state.IsLevelingUp)
	assert.Equal(t, 1, state.Actor(id).Upgrades[offer])
}
