package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Settings holds the few host-side tunables that are not compiled in: which
// MIDI ports to attach to and debug behavior. Hardware layout, IDs and the
// CC map stay compile-time data.
type Settings struct {
	// RigID identifies this rig in logs and SysEx handshakes.
	RigID string `json:"rig_id"`

	// MidiInPort / MidiOutPort are transport port names; empty means "run
	// without that side of the transport" (degraded but functional).
	MidiInPort  string `json:"midi_in_port"`
	MidiOutPort string `json:"midi_out_port"`

	// Debug enables verbose input/bus logging.
	Debug bool `json:"debug"`

	// ShowWindow opens the rig window at launch instead of starting in the
	// tray.
	ShowWindow bool `json:"show_window"`

	// OpenAtStartup mirrors the OS login-item registration.
	OpenAtStartup bool `json:"open_at_startup"`
}

// configDir returns the platform-appropriate config directory.
func configDir() (string, error) {
	configHome, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configHome, "midi-studio"), nil
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.json"), nil
}

// Load reads the settings from disk, returning defaults if not found.
func Load() (*Settings, error) {
	path, err := SettingsPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Settings{
			RigID:      uuid.New().String(),
			ShowWindow: true,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.RigID == "" {
		s.RigID = uuid.New().String()
	}
	return &s, nil
}

// Save writes the settings to disk.
func (s *Settings) Save() error {
	path, err := SettingsPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
