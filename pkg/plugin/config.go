package plugin

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Per-plugin configuration lives as {name}.json in the plugin config
// directories. Reads search every directory in order; writes go to the
// first and are best-effort.

// LoadConfig reads the plugin's config file. A missing file yields an empty
// map.
func (m *Manager) LoadConfig(name string) map[string]any {
	for _, dir := range m.configDirs {
		data, err := os.ReadFile(filepath.Join(dir, name+".json"))
		if err != nil {
			continue
		}
		var cfg map[string]any
		if err := json.Unmarshal(data, &cfg); err != nil {
			m.logger.Warn("Discarding corrupt plugin config", "plugin", name, "error", err)
			continue
		}
		return cfg
	}
	return map[string]any{}
}

// SaveConfig writes the plugin's config file. Failures are logged.
func (m *Manager) SaveConfig(name string, cfg map[string]any) {
	if len(m.configDirs) == 0 {
		return
	}
	dir := m.configDirs[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("Failed to create plugin config directory", "plugin", name, "error", err)
		return
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		m.logger.Warn("Failed to marshal plugin config", "plugin", name, "error", err)
		return
	}
	if err := os.WriteFile(filepath.Join(dir, name+".json"), data, 0o644); err != nil {
		m.logger.Warn("Failed to write plugin config", "plugin", name, "error", err)
	}
}

// GetConfigValue returns one key from the plugin's config.
func (m *Manager) GetConfigValue(name, key string) (any, bool) {
	cfg := m.LoadConfig(name)
	v, ok := cfg[key]
	return v, ok
}

// SetConfigValue updates one key in the plugin's config and saves it.
func (m *Manager) SetConfigValue(name, key string, value any) {
	cfg := m.LoadConfig(name)
	cfg[key] = value
	m.SaveConfig(name, cfg)
}

// DeleteConfig removes the plugin's config file from every config
// directory.
func (m *Manager) DeleteConfig(name string) {
	for _, dir := range m.configDirs {
		path := filepath.Join(dir, name+".json")
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			m.logger.Warn("Failed to remove plugin config", "plugin", name, "error", err)
		}
	}
}
