package persistence

import "log"

const settingsKey = "settings"

// SavedSettings represents the local client's settings stored on disk
type SavedSettings struct {
	PlayerName    string `json:"playerName"`
	ServerAddress string `json:"serverAddress"`
	Mode          string `json:"mode"`
	Arena         string `json:"arena"`
	Difficulty    string `json:"difficulty"`
	Bots          int    `json:"bots"`
	ShowDebug     bool   `json:"showDebug"`
}

// LoadSettings returns saved settings, or nil when none exist or they
// cannot be read.
func LoadSettings(store ItemStore) *SavedSettings {
	var s SavedSettings
	found, err := loadJSON(store, settingsKey, &s)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil
	}
	if !found {
		return nil
	}
	return &s
}

// SaveSettings saves settings to disk
func SaveSettings(store ItemStore, s *SavedSettings) error {
	if err := saveJSON(store, settingsKey, s); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}
