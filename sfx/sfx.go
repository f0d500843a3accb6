// Package sfx synthesizes short sound effects for simulation events.
package sfx

import (
	"encoding/binary"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const SampleRate = 44100

// Tone is a pitch sweep with an exponential decay.
type Tone struct {
	From, To float64 // Hz
	Duration float64 // Seconds
	Volume   float64 // 0..1
	Noise    bool    // Mix in noise for explosions and thuds
}

// Tones maps event names to their sound.
var Tones = map[string]Tone{
	"shot":          {From: 660, To: 440, Duration: 0.08, Volume: 0.25},
	"weak_shot":     {From: 300, To: 250, Duration: 0.06, Volume: 0.15},
	"special_shot":  {From: 880, To: 220, Duration: 0.2, Volume: 0.3},
	"hit":           {From: 200, To: 120, Duration: 0.06, Volume: 0.3, Noise: true},
	"kill":          {From: 520, To: 1040, Duration: 0.15, Volume: 0.25},
	"actor_down":    {From: 300, To: 80, Duration: 0.4, Volume: 0.35},
	"dash":          {From: 400, To: 800, Duration: 0.08, Volume: 0.15, Noise: true},
	"explosion":     {From: 120, To: 40, Duration: 0.35, Volume: 0.4, Noise: true},
	"stomp":         {From: 90, To: 50, Duration: 0.3, Volume: 0.4, Noise: true},
	"level_up":      {From: 523, To: 1046, Duration: 0.3, Volume: 0.25},
	"upgrade":       {From: 660, To: 990, Duration: 0.15, Volume: 0.2},
	"wave_start":    {From: 330, To: 660, Duration: 0.25, Volume: 0.25},
	"wave_complete": {From: 440, To: 880, Duration: 0.3, Volume: 0.25},
	"game_over":     {From: 440, To: 110, Duration: 0.8, Volume: 0.3},
}

// Player renders every tone once and plays them on demand.
type Player struct {
	ctx   *audio.Context
	clips map[string][]byte
	Muted bool
}

// New creates the audio context. Only one may exist per process.
func New() *Player {
	p := &Player{
		ctx:   audio.NewContext(SampleRate),
		clips: make(map[string][]byte, len(Tones)),
	}
	for name, t := range Tones {
		p.clips[name] = Render(t, SampleRate, uint32(len(name)))
	}
	return p
}

// Play starts the clip for an event name. Unknown names are ignored.
func (p *Player) Play(name string) {
	if p == nil || p.Muted {
		return
	}
	clip, ok := p.clips[name]
	if !ok {
		return
	}
	player := p.ctx.NewPlayerFromBytes(clip)
	player.Play()
}

// PlayAll plays each distinct name once.
func (p *Player) PlayAll(names []string) {
	played := make(map[string]bool, len(names))
	for _, n := range names {
		if played[n] {
			continue
		}
		played[n] = true
		p.Play(n)
	}
}

// Render synthesizes t as 16-bit little-endian stereo PCM.
func Render(t Tone, sampleRate int, seed uint32) []byte {
	n := int(t.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	out := make([]byte, n*4)
	phase := 0.0
	noise := seed | 1
	for i := 0; i < n; i++ {
		f := float64(i) / float64(n)
		freq := t.From + (t.To-t.From)*f
		phase += 2 * math.Pi * freq / float64(sampleRate)

		v := math.Sin(phase)
		if t.Noise {
			// xorshift32
			noise ^= noise << 13
			noise ^= noise >> 17
			noise ^= noise << 5
			v = 0.5*v + 0.5*(float64(noise)/math.MaxUint32*2-1)
		}
		v *= t.Volume * math.Exp(-4*f)

		s := int16(max(-1, min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(out[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(out[i*4+2:], uint16(s))
	}
	return out
}

