package persistence

import (
	"log"
	"slices"
	"sync"
	"time"

	"github.com/automoto/archer-arena/components"
)

const (
	scoresKey = "scores"
	maxRecent = 20
)

// PlayerResult is one actor's line in a finished match.
type PlayerResult struct {
	ID    uint32 `json:"id"`
	Name  string `json:"name"`
	Bot   bool   `json:"bot"`
	Kills int    `json:"kills"`
	Score int    `json:"score"`
	Level int    `json:"level"`
	Alive bool   `json:"alive"`
}

// MatchResult is the record written when a match ends.
type MatchResult struct {
	MatchID      string         `json:"matchId"`
	Mode         string         `json:"mode"`
	Arena        string         `json:"arena"`
	EndedAt      time.Time      `json:"endedAt"`
	Duration     float64        `json:"duration"`
	Ticks        uint64         `json:"ticks"`
	Winner       string         `json:"winner,omitempty"`
	Score        int            `json:"score"`
	WavesCleared int            `json:"wavesCleared"`
	Players      []PlayerResult `json:"players"`
}

// ResultFromState summarizes a finished snapshot.
func ResultFromState(matchID string, s *components.State, endedAt time.Time) MatchResult {
	r := MatchResult{
		MatchID:      matchID,
		Mode:         s.Mode.String(),
		EndedAt:      endedAt,
		Duration:     s.Time,
		Ticks:        s.Tick,
		Score:        s.Score,
		WavesCleared: s.WavesCleared,
	}
	if s.Arena != nil {
		r.Arena = s.Arena.Name
	}
	for i := range s.Actors {
		a := &s.Actors[i]
		r.Players = append(r.Players, PlayerResult{
			ID:    uint32(a.ID),
			Name:  a.Name,
			Bot:   a.IsBot(),
			Kills: a.Kills,
			Score: a.Score,
			Level: a.Level,
			Alive: a.Alive(),
		})
		if a.ID == s.Winner {
			r.Winner = a.Name
		}
	}
	return r
}

type scoreFile struct {
	Recent []MatchResult           `json:"recent"`
	Best   map[string]*MatchResult `json:"best"` // Keyed by mode
}

// ScoreBook keeps recent results and the best result per mode. It is safe
// for concurrent use.
type ScoreBook struct {
	mu    sync.Mutex
	store ItemStore
	data  scoreFile
}

// NewScoreBook loads any saved results from store. Unreadable data is
// logged and replaced.
func NewScoreBook(store ItemStore) *ScoreBook {
	b := &ScoreBook{store: store}
	if _, err := loadJSON(store, scoresKey, &b.data); err != nil {
		log.Printf("Warning: Could not load scores: %v", err)
		b.data = scoreFile{}
	}
	if b.data.Best == nil {
		b.data.Best = make(map[string]*MatchResult)
	}
	return b
}

// Record stores r and updates the mode's best result.
func (b *ScoreBook) Record(r MatchResult) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.data.Recent = append(b.data.Recent, r)
	if n := len(b.data.Recent); n > maxRecent {
		b.data.Recent = slices.Clone(b.data.Recent[n-maxRecent:])
	}
	if best, ok := b.data.Best[r.Mode]; !ok || better(r, *best) {
		cp := r
		b.data.Best[r.Mode] = &cp
	}
	return saveJSON(b.store, scoresKey, b.data)
}

// Recent returns the stored results, oldest first.
func (b *ScoreBook) Recent() []MatchResult {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.data.Recent)
}

// Best returns the best result recorded for mode.
func (b *ScoreBook) Best(mode string) (MatchResult, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	r, ok := b.data.Best[mode]
	if !ok {
		return MatchResult{}, false
	}
	return *r, true
}

// better ranks Last Stand runs by score then waves, arena matches by the
// top individual kill count.
func better(a, b MatchResult) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	if a.WavesCleared != b.WavesCleared {
		return a.WavesCleared > b.WavesCleared
	}
	return topKills(a) > topKills(b)
}

func topKills(r MatchResult) int {
	best := 0
	for _, p := range r.Players {
		best = max(best, p.Kills)
	}
	return best
}
