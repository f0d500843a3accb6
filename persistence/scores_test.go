package persistence

import (
	"errors"
	"testing"
	"time"

	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) SaveItem(string, []byte) error   { return errors.New("disk gone") }

func TestResultFromState(t *testing.T) {
	s := factory.NewMatch(factory.MatchOptions{
		Mode:    config.ModePvP,
		Seed:    1,
		Players: []string{"alice"},
		Bots:    []config.BotDifficulty{config.BotDifficultyEasy},
	})
	s.Actors[0].Kills = 1
	s.Actors[1].IsDead = true
	s.Actors[1].Health = 0
	s.IsGameOver = true
	s.Winner = s.Actors[0].ID
	s.Time = 42

	ended := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r := ResultFromState("m-1", s, ended)

	assert.Equal(t, "m-1", r.MatchID)
	assert.Equal(t, "pvp", r.Mode)
	assert.Equal(t, "archer-arena", r.Arena)
	assert.Equal(t, "alice", r.Winner)
	assert.Equal(t, 42.0, r.Duration)
	require.Len(t, r.Players, 2)
	assert.True(t, r.Players[0].Alive)
	assert.False(t, r.Players[0].Bot)
	assert.Equal(t, 1, r.Players[0].Kills)
	assert.False(t, r.Players[1].Alive)
	assert.True(t, r.Players[1].Bot)
}

func TestScoreBookRoundTripsThroughStore(t *testing.T) {
	store := NewMemStore()
	book := NewScoreBook(store)

	require.NoError(t, book.Record(MatchResult{MatchID: "a", Mode: "pve", Score: 50, WavesCleared: 2}))
	require.NoError(t, book.Record(MatchResult{MatchID: "b", Mode: "pve", Score: 30, WavesCleared: 5}))

	reloaded := NewScoreBook(store)
	recent := reloaded.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "a", recent[0].MatchID)
	assert.Equal(t, "b", recent[1].MatchID)

	best, ok := reloaded.Best("pve")
	require.True(t, ok)
	assert.Equal(t, "a", best.MatchID)

	_, ok = reloaded.Best("pvp")
	assert.False(t, ok)
}

func TestScoreBookKeepsOnlyRecentResults(t *testing.T) {
	book := NewScoreBook(NewMemStore())
	for i := 0; i < maxRecent+5; i++ {
		require.NoError(t, book.Record(MatchResult{MatchID: string(rune('a' + i)), Mode: "pvp"}))
	}
	recent := book.Recent()
	require.Len(t, recent, maxRecent)
	assert.Equal(t, string(rune('a'+5)), recent[0].MatchID)
}

func TestBetterBreaksTiesOnWavesThenKills(t *testing.T) {
	base := MatchResult{Score: 10, WavesCleared: 1}
	assert.True(t, better(MatchResult{Score: 11}, base))
	assert.True(t, better(MatchResult{Score: 10, WavesCleared: 2}, base))

	withKills := MatchResult{Score: 10, WavesCleared: 1, Players: []PlayerResult{{Kills: 3}}}
	assert.True(t, better(withKills, base))
	assert.False(t, better(base, withKills))
}

func TestScoreBookSurvivesBrokenStore(t *testing.T) {
	book := NewScoreBook(failingStore{})
	err := book.Record(MatchResult{MatchID: "x", Mode: "pvp"})
	require.Error(t, err)
	assert.Len(t, book.Recent(), 1)
}

func TestScoreBookIgnoresCorruptData(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, store.SaveItem(scoresKey, []byte("{not json")))
	book := NewScoreBook(store)
	assert.Empty(t, book.Recent())
	require.NoError(t, book.Record(MatchResult{MatchID: "x", Mode: "pvp"}))
}

func TestSettingsRoundTrip(t *testing.T) {
	store := NewMemStore()
	assert.Nil(t, LoadSettings(store))

	want := &SavedSettings{PlayerName: "robin", ServerAddress: "localhost:7373", Mode: "pve", Bots: 2}
	require.NoError(t, SaveSettings(store, want))
	assert.Equal(t, want, LoadSettings(store))
}
