package systems

import (
	"math"

	"github.com/automoto/archer-arena/components"
	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/shared/gamemath"
)

// UpdateBots writes Controls and Aim for every bot-controlled actor.
// Must run before UpdateCombat so bot input is consumed on the same tick.
func UpdateBots(s *components.State, dt float64) {
	for i := range s.Actors {
		a := &s.Actors[i]
		if a.Bot == nil {
			continue
		}
		updateBotAI(s, a, dt)
	}
}

func updateBotAI(s *components.State, a *components.Actor, dt float64) {
	bot := a.Bot
	diff := cfg.Bot.Difficulties[bot.Difficulty]

	// Decrement cooldowns
	bot.DecisionTimer = gamemath.ApproachZero(bot.DecisionTimer, dt)
	bot.ActionCooldown = gamemath.ApproachZero(bot.ActionCooldown, dt)
	bot.ShotCooldown = gamemath.ApproachZero(bot.ShotCooldown, dt)

	if !a.Alive() {
		a.Controls = components.Controls{}
		return
	}

	targetPos, hasTarget := botTargetPos(s, bot)
	if !hasTarget && bot.State == components.BotStateAttacking {
		bot.State = components.BotStatePatrolling
		bot.TargetID = 0
	}

	if bot.DecisionTimer <= 0 {
		decideBotState(s, a, diff)
		bot.DecisionTimer = diff.DecisionInterval
		targetPos, hasTarget = botTargetPos(s, bot)
	}

	var move gamemath.Vec2
	var controls components.Controls

	switch {
	case bot.State == components.BotStateAttacking && hasTarget:
		move, controls = attackInputs(s, a, diff, targetPos)
	default:
		dropDraw(a)
		move = patrolInputs(s, a)
	}

	// Movement is replayed unchanged right after a shot or a dash
	if bot.ActionCooldown > 0 {
		controls.Up = bot.HeldMove.Up
		controls.Down = bot.HeldMove.Down
		controls.Left = bot.HeldMove.Left
		controls.Right = bot.HeldMove.Right
	} else {
		setMoveControls(&controls, move)
	}

	if controls.Dash {
		bot.ActionCooldown = diff.ActionCooldown
		bot.HeldMove = controls
	}

	a.Controls = controls
}

// botTargetPos resolves the remembered target. Dead or missing targets
// report false.
func botTargetPos(s *components.State, bot *components.BotData) (gamemath.Vec2, bool) {
	if bot.TargetID == 0 {
		return gamemath.Vec2{}, false
	}
	if bot.TargetIsEnemy {
		if e := s.Enemy(bot.TargetID); e != nil && e.Health > 0 {
			return e.Pos, true
		}
		return gamemath.Vec2{}, false
	}
	if t := s.Actor(bot.TargetID); t != nil && t.Alive() {
		return t.Pos, true
	}
	return gamemath.Vec2{}, false
}

func decideBotState(s *components.State, a *components.Actor, diff cfg.BotDifficultyConfig) {
	bot := a.Bot
	r := s.Rand()

	bot.TargetID = 0
	bot.TargetIsEnemy = false
	if s.Mode == cfg.ModePvE {
		if e := nearestEnemy(s, a.Pos, math.Inf(1)); e != nil {
			bot.TargetID = e.ID
			bot.TargetIsEnemy = true
		}
	} else if t := nearestLivingActor(s, a.Pos, a.ID); t != nil {
		bot.TargetID = t.ID
	}

	if bot.TargetID == 0 {
		bot.State = components.BotStatePatrolling
	} else {
		bot.State = components.BotStateAttacking
	}

	bot.StrafeSign = 1
	if r.IntN(2) == 0 {
		bot.StrafeSign = -1
	}
	bot.WantsDash = diff.CanDash && r.Float64() < diff.DashChance
}

// patrolInputs walks toward the patrol point, picking a new one on arrival.
func patrolInputs(s *components.State, a *components.Actor) gamemath.Vec2 {
	bot := a.Bot
	if !bot.HasPatrolPoint || a.Pos.Dist(bot.PatrolPoint) < cfg.Bot.PatrolReach {
		bot.PatrolPoint = randomPatrolPoint(s)
		bot.HasPatrolPoint = true
	}

	move := bot.PatrolPoint.Sub(a.Pos).Normalize()
	if angle, ok := move.Angle(); ok {
		a.Aim = angle
	}
	return move
}

func randomPatrolPoint(s *components.State) gamemath.Vec2 {
	r := s.Rand()
	margin := cfg.Bot.PatrolMargin
	w := max(s.Arena.Width-2*margin, 0)
	h := max(s.Arena.Height-2*margin, 0)
	return gamemath.V(margin+r.Float64()*w, margin+r.Float64()*h)
}

// attackInputs keeps the bot inside the preferred distance band, aims at
// the target and runs press-hold-release on the bow.
func attackInputs(s *components.State, a *components.Actor, diff cfg.BotDifficultyConfig, target gamemath.Vec2) (gamemath.Vec2, components.Controls) {
	bot := a.Bot
	var controls components.Controls

	toTarget := target.Sub(a.Pos)
	dist := toTarget.Len()
	dir := toTarget.Normalize()
	if angle, ok := dir.Angle(); ok {
		a.Aim = angle
	}

	var move gamemath.Vec2
	switch {
	case dist > cfg.Bot.PreferredMax:
		move = dir
	case dist < cfg.Bot.PreferredMin:
		move = dir.Scale(-1)
	default:
		move = gamemath.V(-dir.Y, dir.X).Scale(bot.StrafeSign)
	}

	// Dash away when crowded
	if bot.WantsDash && diff.CanDash && dist < cfg.Bot.PreferredMin*0.6 && a.DashCooldown <= 0 && !a.IsDashing {
		move = dir.Scale(-1)
		controls.Dash = true
		bot.WantsDash = false
	}

	hasLOS := !s.Arena.Blocked(a.Pos, target, s.Rules.Projectile.Radius)

	if a.IsDrawingBow {
		if !hasLOS {
			// Lost sight mid-draw; cancel without firing.
			dropDraw(a)
			bot.ActionCooldown = diff.ActionCooldown
			setMoveControls(&bot.HeldMove, move)
			return move, controls
		}
		if s.Time-a.DrawStartTime >= diff.OptimalDraw*a.MaxDrawTime {
			// Release: leave Shoot unset this tick
			bot.ShotCooldown = diff.ShotCooldown
			bot.ActionCooldown = diff.ActionCooldown
			setMoveControls(&bot.HeldMove, move)
			return move, controls
		}
		controls.Shoot = true
		return move, controls
	}

	bowReady := s.Time-a.LastShotTime >= s.Rules.Bow.ShotCooldown
	if hasLOS && bot.ShotCooldown <= 0 && bowReady {
		controls.Shoot = true
	}
	return move, controls
}

// dropDraw abandons a bow draw without firing. Only bots use it; a human
// release always fires.
func dropDraw(a *components.Actor) {
	a.IsDrawingBow = false
	a.DrawStartTime = 0
}

// setMoveControls converts a direction into the four movement buttons.
func setMoveControls(c *components.Controls, move gamemath.Vec2) {
	dz := cfg.Bot.AimDeadzone
	c.Up = move.Y < -dz
	c.Down = move.Y > dz
	c.Left = move.X < -dz
	c.Right = move.X > dz
}
