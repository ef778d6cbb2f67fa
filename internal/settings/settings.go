package settings

import (
	"bufio"
	"os"

	"github.com/BurntSushi/toml"
	"pbxscope.dev/analyzer/internal/pattern"
)

// Settings holds the tunables persisted between console sessions.
type Settings struct {
	DatabasePath string `toml:"database_path"`
	ChunkSize    int    `toml:"chunk_size"`
	MaxWorkers   int    `toml:"max_workers"`
}

func Default() Settings {
	return Settings{
		DatabasePath: pattern.DefaultDatabaseName,
		ChunkSize:    10000,
		MaxWorkers:   0,
	}
}

// Load reads the settings file, filling missing keys with defaults.
// A missing file is not an error.
func Load(settingsFilePath string) (loaded Settings, err error) {
	loaded = Default()
	if _, err = os.Stat(settingsFilePath); os.IsNotExist(err) {
		err = nil
		return
	}
	var settingsFileData []byte
	if settingsFileData, err = os.ReadFile(settingsFilePath); err != nil {
		return
	}
	err = toml.Unmarshal(settingsFileData, &loaded)
	return
}

// Save writes the settings file, creating it if needed.
func Save(settingsFilePath string, current Settings) (err error) {
	var file *os.File
	if file, err = os.OpenFile(settingsFilePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644); err != nil {
		return
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err = toml.NewEncoder(writer).Encode(current); err != nil {
		return
	}
	return writer.Flush()
}

// Sync merges the saved file over the defaults and writes the result
// back, so new keys appear in the file after an upgrade.
func Sync(settingsFilePath string) (synced Settings, err error) {
	if synced, err = Load(settingsFilePath); err != nil {
		return
	}
	err = Save(settingsFilePath, synced)
	return
}
