package registry

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mcp-router/mcp-router/pkg/models"
)

// document is the on-disk registry format. Capabilities and health are
// stored alongside the specs so a restart restores the full picture
// without reprobing.
type document struct {
	Servers      map[string]models.ServerSpec     `json:"servers"`
	Capabilities map[string][]string              `json:"server_capabilities"`
	Health       map[string]models.HealthSnapshot `json:"server_health"`
}

// persister owns the registry file. Saves are atomic: marshal, write to a
// temp file in the same directory, rename over the target. The previous
// file is kept as .bak so a corrupt primary still has a recovery path.
type persister struct {
	file   string
	logger *slog.Logger
}

func newPersister(file string) (*persister, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create registry directory: %w", err)
	}
	return &persister{
		file:   file,
		logger: slog.With("subsystem", "registry"),
	}, nil
}

func (p *persister) backupFile() string {
	return p.file + ".bak"
}

// load reads the registry document, falling back to the backup and then to
// an empty document. Only an unreadable directory is a hard error.
func (p *persister) load() (document, error) {
	for _, path := range []string{p.file, p.backupFile()} {
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return document{}, fmt.Errorf("failed to read registry file %s: %w", path, err)
		}
		var doc document
		if err := json.Unmarshal(data, &doc); err != nil {
			p.logger.Warn("Discarding corrupt registry file", "file", path, "error", err)
			continue
		}
		if doc.Servers == nil {
			doc.Servers = make(map[string]models.ServerSpec)
		}
		if doc.Capabilities == nil {
			doc.Capabilities = make(map[string][]string)
		}
		if doc.Health == nil {
			doc.Health = make(map[string]models.HealthSnapshot)
		}
		return doc, nil
	}
	return document{
		Servers:      make(map[string]models.ServerSpec),
		Capabilities: make(map[string][]string),
		Health:       make(map[string]models.HealthSnapshot),
	}, nil
}

// save persists the document. The registry calls it while holding its write
// lock, which keeps the temp-write/backup-rotate/rename sequence strictly
// serialized. Failures are logged, not returned; the in-memory registry
// remains the source of truth and the next mutation retries the write.
func (p *persister) save(doc document) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		p.logger.Error("Failed to marshal registry", "error", err)
		return
	}

	tmp, err := os.CreateTemp(filepath.Dir(p.file), ".registry-*.json")
	if err != nil {
		p.logger.Error("Failed to create temp registry file", "error", err)
		return
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		p.logger.Error("Failed to write registry file", "error", err)
		return
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		p.logger.Error("Failed to close registry file", "error", err)
		return
	}

	// Refresh the backup from the current primary before replacing it.
	if _, err := os.Stat(p.file); err == nil {
		if err := os.Rename(p.file, p.backupFile()); err != nil {
			p.logger.Warn("Failed to rotate registry backup", "error", err)
		}
	}
	if err := os.Rename(tmpName, p.file); err != nil {
		os.Remove(tmpName)
		p.logger.Error("Failed to replace registry file", "error", err)
	}
}
