package systems

import (
	"encoding/json"
	"fmt"

	cfg "github.com/automoto/maverick2d/config"
	"github.com/automoto/maverick2d/logging"
	"github.com/automoto/maverick2d/shared/protocol"
	"github.com/quasilyte/gdata"
)

const settingsKey = "connection"

// SavedSettings represents the connection settings stored on disk
type SavedSettings struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Format string `json:"format"`
}

// settingsStore is the part of gdata.Manager used here.
type settingsStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store settingsStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return fmt.Errorf("open persistence: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without error when
// persistence is unavailable or nothing was saved yet.
func LoadSettings() (*SavedSettings, error) {
	if store == nil {
		return nil, nil
	}

	data, err := store.LoadItem(settingsKey)
	if err != nil {
		logging.Named("persistence").Warnw("could not load settings", "err", err)
		return nil, nil
	}
	if len(data) == 0 {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("parse saved settings: %w", err)
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	if store == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("serialize settings: %w", err)
	}
	if err := store.SaveItem(settingsKey, data); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// SaveCurrentSettings stores the connection settings in effect.
func SaveCurrentSettings() {
	saved := &SavedSettings{
		Host:   cfg.Net.Host,
		Port:   cfg.Net.Port,
		Format: cfg.Net.Format.String(),
	}
	if err := SaveSettings(saved); err != nil {
		logging.Named("persistence").Warnw("could not save settings", "err", err)
	}
}

// ApplySavedSettings copies well-formed saved values into the network
// configuration. Invalid values are skipped.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.Host != "" {
		cfg.Net.Host = saved.Host
	}
	if saved.Port > 0 && saved.Port <= 65535 {
		cfg.Net.Port = saved.Port
	}
	if f, err := protocol.ParseFormat(saved.Format); err == nil && saved.Format != "" {
		cfg.Net.Format = f
	}
}
