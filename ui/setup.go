// Package ui builds the ebitenui screens shown outside a match.
package ui

import (
	"strings"

	cfg "github.com/automoto/archer-arena/config"
	"github.com/automoto/archer-arena/persistence"
)

const (
	MaxBots       = 7
	MaxNameLength = 16
	MaxAddrLength = 64
)

// Mode returns the saved game mode, falling back to PvP.
func Mode(s *persistence.SavedSettings) cfg.GameMode {
	m, _ := cfg.ParseGameMode(s.Mode)
	return m
}

// Difficulty returns the saved bot difficulty.
func Difficulty(s *persistence.SavedSettings) cfg.BotDifficulty {
	d, _ := cfg.ParseBotDifficulty(s.Difficulty)
	return d
}

func CycleMode(s *persistence.SavedSettings) {
	if Mode(s) == cfg.ModePvP {
		s.Mode = cfg.ModePvE.String()
	} else {
		s.Mode = cfg.ModePvP.String()
	}
}

// CycleArena steps through names; "" is the built-in arena and always
// comes first.
func CycleArena(s *persistence.SavedSettings, names []string) {
	all := append([]string{""}, names...)
	idx := 0
	for i, name := range all {
		if name == s.Arena {
			idx = i
		}
	}
	s.Arena = all[(idx+1)%len(all)]
}

func CycleBots(s *persistence.SavedSettings) {
	s.Bots = (max(s.Bots, 0) + 1) % (MaxBots + 1)
}

func CycleDifficulty(s *persistence.SavedSettings) {
	s.Difficulty = cfg.BotDifficulty((int(Difficulty(s)) + 1) % 3).String()
}

// Title is the heading shown for a mode.
func Title(m cfg.GameMode) string {
	if m == cfg.ModePvE {
		return "LAST STAND"
	}
	return "ARCHER ARENA"
}

// ArenaLabel names an arena setting for display.
func ArenaLabel(name string) string {
	if name == "" {
		return "open field"
	}
	return name
}

// fieldValue cleans typed text. Blank input keeps fallback.
func fieldValue(typed, fallback string, limit int) string {
	typed = strings.TrimSpace(typed)
	if typed == "" {
		return fallback
	}
	if r := []rune(typed); len(r) > limit {
		typed = string(r[:limit])
	}
	return typed
}
