// Package input polls keyboard, mouse and gamepads into the simulation's
// control vector.
package input

import (
	"math"
	"strings"

	"github.com/automoto/archer-arena/components"
	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
	"github.com/automoto/archer-arena/shared/messages"
	"github.com/hajimehoshi/ebiten/v2"
)

// Binding represents every key or button bound to one action
type Binding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// Bindings maps actions to their default bindings
var Bindings = map[cfg.ActionID]Binding{
	cfg.ActionMoveUp: {
		Keys:                   []ebiten.Key{ebiten.KeyW, ebiten.KeyUp},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
	},
	cfg.ActionMoveDown: {
		Keys:                   []ebiten.Key{ebiten.KeyS, ebiten.KeyDown},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
	},
	cfg.ActionMoveLeft: {
		Keys:                   []ebiten.Key{ebiten.KeyA, ebiten.KeyLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
	},
	cfg.ActionMoveRight: {
		Keys:                   []ebiten.Key{ebiten.KeyD, ebiten.KeyRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
	},
	cfg.ActionShoot: {
		Keys:                   []ebiten.Key{ebiten.KeyJ},
		MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomRight},
	},
	cfg.ActionDash: {
		Keys:                   []ebiten.Key{ebiten.KeySpace, ebiten.KeyShiftLeft},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
	},
	cfg.ActionSpecial: {
		Keys:                   []ebiten.Key{ebiten.KeyK},
		MouseButtons:           []ebiten.MouseButton{ebiten.MouseButtonRight},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontBottomLeft},
	},
	cfg.ActionExplosiveArrow: {
		Keys:                   []ebiten.Key{ebiten.KeyE},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightTop},
	},
	cfg.ActionPause: {
		Keys:                   []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
		StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
	},
}

// Method is the device that produced the most recent input.
type Method int

const (
	MethodKeyboard Method = iota
	MethodXbox
	MethodPlayStation
)

// Poller keeps the current and previous frame's action states.
type Poller struct {
	Current, Previous [cfg.ActionCount]bool
	Aim               float64
	LastMethod        Method

	gamepadIDs  []ebiten.GamepadID
	methodCache map[ebiten.GamepadID]Method
	seq         uint32
}

func NewPoller() *Poller {
	return &Poller{methodCache: make(map[ebiten.GamepadID]Method)}
}

// Update polls all devices. origin is the local archer's screen position
// and is used to turn the cursor into an aim angle.
func (p *Poller) Update(origin gamemath.Vec2) {
	p.Previous = p.Current
	p.Current = [cfg.ActionCount]bool{}

	p.gamepadIDs = ebiten.AppendGamepadIDs(p.gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepad ebiten.GamepadID

	for action, b := range Bindings {
		for _, key := range b.Keys {
			if ebiten.IsKeyPressed(key) {
				p.Current[action] = true
				keyboardUsed = true
			}
		}
		for _, btn := range b.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				p.Current[action] = true
				keyboardUsed = true
			}
		}
		for _, id := range p.gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(id) {
				continue
			}
			for _, btn := range b.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(id, btn) {
					p.Current[action] = true
					gamepadUsed = true
					activeGamepad = id
				}
			}
		}
	}

	if id, ok := p.pollSticks(); ok {
		gamepadUsed = true
		activeGamepad = id
	} else {
		cx, cy := ebiten.CursorPosition()
		if angle, ok := gamemath.V(float64(cx), float64(cy)).Sub(origin).Angle(); ok {
			p.Aim = angle
		}
	}

	if gamepadUsed {
		p.LastMethod = p.controllerType(activeGamepad)
	} else if keyboardUsed {
		p.LastMethod = MethodKeyboard
	}
}

// pollSticks merges the left stick into movement and the right stick into
// aim. It reports whether any stick was outside its deadzone.
func (p *Poller) pollSticks() (ebiten.GamepadID, bool) {
	dead := cfg.Input.AnalogDeadzone
	for _, id := range p.gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		used := false
		h := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		v := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if h < -dead {
			p.Current[cfg.ActionMoveLeft], used = true, true
		}
		if h > dead {
			p.Current[cfg.ActionMoveRight], used = true, true
		}
		if v < -dead {
			p.Current[cfg.ActionMoveUp], used = true, true
		}
		if v > dead {
			p.Current[cfg.ActionMoveDown], used = true, true
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if math.Hypot(rx, ry) > cfg.Input.AimDeadzone {
			p.Aim = math.Atan2(ry, rx)
			used = true
		}
		if used {
			return id, true
		}
	}
	return 0, false
}

func (p *Poller) controllerType(id ebiten.GamepadID) Method {
	if m, ok := p.methodCache[id]; ok {
		return m
	}
	name := strings.ToLower(ebiten.GamepadName(id))
	m := MethodXbox
	for _, tag := range []string{"ps4", "ps5", "playstation", "dualshock", "dualsense"} {
		if strings.Contains(name, tag) {
			m = MethodPlayStation
			break
		}
	}
	p.methodCache[id] = m
	return m
}

func (p *Poller) Pressed(id cfg.ActionID) bool {
	return p.Current[id]
}

func (p *Poller) JustPressed(id cfg.ActionID) bool {
	return p.Current[id] && !p.Previous[id]
}

// PlayerInput packs the current frame for the network, numbering it.
func (p *Poller) PlayerInput() messages.PlayerInput {
	p.seq++
	in := messages.NewPlayerInput(p.seq)
	for id, pressed := range p.Current {
		if pressed {
			in.Actions[cfg.ActionID(id)] = true
		}
	}
	in.Aim = p.Aim
	return in
}

// Input returns the current frame as simulation input.
func (p *Poller) Input() components.Input {
	in := messages.PlayerInput{Actions: make(map[cfg.ActionID]bool), Aim: p.Aim}
	for id, pressed := range p.Current {
		if pressed {
			in.Actions[cfg.ActionID(id)] = true
		}
	}
	return in.Input()
}
