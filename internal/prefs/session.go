package prefs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const sessionFile = "session.json"

// Session is the UI state restored on the next start.
type Session struct {
	LastPath  string    `json:"last_path"`
	UpdatedAt time.Time `json:"updated_at"`
}

func sessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "starterkit")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, sessionFile), nil
}

// SaveLastPath records path as the last visited location.
func SaveLastPath(path string) error {
	file, err := sessionPath()
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(Session{LastPath: path, UpdatedAt: time.Now().UTC()}, "", "  ")
	if err != nil {
		return err
	}
	tmp := file + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, file)
}

// LoadLastPath returns the last visited location, or "" when none was saved.
func LoadLastPath() (string, error) {
	file, err := sessionPath()
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(file)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", err
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return "", err
	}
	return s.LastPath, nil
}
