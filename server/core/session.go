package core

import (
	"errors"
	"fmt"
	"log"
	"maps"
	"slices"
	"sync"
	"time"

	"github.com/automoto/archer-arena/components"
	"github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/persistence"
	"github.com/automoto/archer-arena/shared/messages"
	"github.com/automoto/archer-arena/systems"
	"github.com/automoto/archer-arena/systems/factory"
	"github.com/google/uuid"
)

var (
	ErrServerFull     = errors.New("no free slot")
	ErrNotLeveling    = errors.New("no level-up pending for this player")
	ErrUnknownUpgrade = errors.New("upgrade was not offered")
)

// ScoreSink receives the result of every finished match.
type ScoreSink interface {
	Record(r persistence.MatchResult) error
}

// SessionOptions configures the matches a session runs.
type SessionOptions struct {
	Mode         config.GameMode
	Slots        int
	Difficulty   config.BotDifficulty
	Arena        *components.Arena // nil = built-in arena for Mode
	Seed         uint64
	RestartDelay float64 // Seconds between game over and the next match
}

// Frame is what one session tick produced.
type Frame struct {
	MatchID  string
	State    *components.State
	LastSeq  map[components.ID]uint32
	Messages []any // Broadcast to every joined client
}

// Session owns the authoritative match. Every slot is an archer from the
// start; players take over bot slots when they join and hand them back
// when they leave.
type Session struct {
	mu sync.Mutex

	opts    SessionOptions
	sink    ScoreSink
	matchID string
	matches uint64
	state   *components.State

	humans  map[components.ID]string
	inputs  map[components.ID]components.Input
	lastSeq map[components.ID]uint32

	reported  bool
	sinceOver float64
}

// NewSession starts the first match. sink may be nil.
func NewSession(opts SessionOptions, sink ScoreSink) *Session {
	if opts.Slots < 1 {
		opts.Slots = 1
	}
	s := &Session{
		opts:    opts,
		sink:    sink,
		humans:  make(map[components.ID]string),
		inputs:  make(map[components.ID]components.Input),
		lastSeq: make(map[components.ID]uint32),
	}
	s.restart()
	return s
}

func (s *Session) restart() {
	bots := make([]config.BotDifficulty, s.opts.Slots)
	for i := range bots {
		bots[i] = s.opts.Difficulty
	}
	s.state = factory.NewMatch(factory.MatchOptions{
		Mode:  s.opts.Mode,
		Seed:  s.opts.Seed + s.matches,
		Arena: s.opts.Arena,
		Bots:  bots,
	})
	s.matches++
	s.matchID = uuid.NewString()
	s.reported = false
	s.sinceOver = 0
	clear(s.inputs)

	// Slot IDs are allocated in order, so returning players keep theirs.
	next := s.state.Clone()
	for id, name := range s.humans {
		if a := next.Actor(id); a != nil {
			takeOver(a, name)
		}
	}
	s.state = next

	log.Printf("[session] match %s started: mode=%s arena=%s slots=%d players=%d",
		s.matchID, s.opts.Mode, s.state.Arena.Name, s.opts.Slots, len(s.humans))
}

// Join gives name the first bot-controlled slot.
func (s *Session) Join(name string) (components.ID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Actors {
		id := s.state.Actors[i].ID
		if _, taken := s.humans[id]; taken {
			continue
		}
		next := s.state.Clone()
		takeOver(next.Actor(id), name)
		s.state = next
		s.humans[id] = name
		delete(s.lastSeq, id)
		log.Printf("[session] %q took slot %d", name, id)
		return id, nil
	}
	return 0, ErrServerFull
}

// Leave hands the slot back to the AI. A pending level-up for the slot is
// resolved with the first offer so the match does not stay paused.
func (s *Session) Leave(id components.ID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name, ok := s.humans[id]
	if !ok {
		return
	}
	delete(s.humans, id)
	delete(s.inputs, id)
	delete(s.lastSeq, id)

	next := s.state.Clone()
	if a := next.Actor(id); a != nil {
		a.Bot = factory.NewBotData(s.opts.Difficulty)
		a.Name = fmt.Sprintf("bot-%d (%s)", id, s.opts.Difficulty)
		a.Controls = components.Controls{}
	}
	if next.IsLevelingUp && next.LevelingActorID == id && len(next.AvailableUpgrades) > 0 {
		next = systems.ApplyUpgrade(next, next.AvailableUpgrades[0])
	}
	s.state = next
	log.Printf("[session] %q left slot %d", name, id)
}

// SetInput records the latest input for a player's slot. Out-of-order
// inputs are dropped.
func (s *Session) SetInput(id components.ID, in messages.PlayerInput) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.humans[id]; !ok {
		return
	}
	if last, seen := s.lastSeq[id]; seen && in.Sequence <= last {
		return
	}
	s.inputs[id] = in.Input()
	s.lastSeq[id] = in.Sequence
}

// ChooseUpgrade applies a level-up pick for the slot that is leveling.
func (s *Session) ChooseUpgrade(id components.ID, upgrade string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.IsLevelingUp || s.state.LevelingActorID != id {
		return ErrNotLeveling
	}
	uid := config.UpgradeID(upgrade)
	if !slices.Contains(s.state.AvailableUpgrades, uid) {
		return fmt.Errorf("%w: %q", ErrUnknownUpgrade, upgrade)
	}
	s.state = systems.ApplyUpgrade(s.state, uid)
	return nil
}

// Tick advances the match by dt seconds. After game over the final state is
// held for RestartDelay, then a new match starts with the same players.
func (s *Session) Tick(dt float64) Frame {
	s.mu.Lock()
	defer s.mu.Unlock()

	var msgs []any
	if s.state.IsGameOver {
		s.sinceOver += dt
		if s.sinceOver >= s.opts.RestartDelay {
			s.restart()
			msgs = append(msgs, s.startEvents()...)
		}
		return s.frame(msgs)
	}

	s.state = systems.Step(s.state, dt, s.inputs)
	for _, e := range s.state.Events {
		msgs = append(msgs, messages.NewGameEvent(e, s.state.Tick))
	}

	if s.state.IsGameOver && !s.reported {
		s.reported = true
		msgs = append(msgs, s.report())
	}
	return s.frame(msgs)
}

func (s *Session) startEvents() []any {
	var msgs []any
	for _, e := range s.state.Events {
		msgs = append(msgs, messages.NewGameEvent(e, s.state.Tick))
	}
	return msgs
}

func (s *Session) report() messages.MatchOver {
	result := persistence.ResultFromState(s.matchID, s.state, time.Now())
	if s.sink != nil {
		if err := s.sink.Record(result); err != nil {
			log.Printf("Warning: Could not record match %s: %v", s.matchID, err)
		}
	}
	log.Printf("[session] match %s over after %.1fs: winner=%q score=%d waves=%d",
		s.matchID, s.state.Time, result.Winner, result.Score, result.WavesCleared)

	return messages.MatchOver{
		MatchID:      s.matchID,
		Mode:         int(s.state.Mode),
		Winner:       uint32(s.state.Winner),
		Score:        s.state.Score,
		WavesCleared: s.state.WavesCleared,
		Duration:     s.state.Time,
		NextMatchIn:  s.opts.RestartDelay,
	}
}

func (s *Session) frame(msgs []any) Frame {
	return Frame{
		MatchID:  s.matchID,
		State:    s.state,
		LastSeq:  maps.Clone(s.lastSeq),
		Messages: msgs,
	}
}

// Snapshot returns the current state. Callers must not modify it.
func (s *Session) Snapshot() *components.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// MatchID identifies the running match.
func (s *Session) MatchID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.matchID
}

// Players returns the number of joined players.
func (s *Session) Players() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.humans)
}

func takeOver(a *components.Actor, name string) {
	a.Bot = nil
	a.Name = name
	a.Controls = components.Controls{}
}
