// Package registry keeps the in-process authoritative map of registered
// servers: launch spec, capability set, and current health snapshot. Every
// mutation is eagerly persisted to a JSON file with an atomic
// write-temp-then-rename, so a crash never leaves a torn registry behind.
package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/mcp-router/mcp-router/pkg/ewma"
	"github.com/mcp-router/mcp-router/pkg/models"
)

// ErrServerNotFound indicates a lookup for an unregistered server id.
var ErrServerNotFound = errors.New("server not found in registry")

// entry is the registry's view of one server.
type entry struct {
	spec         models.ServerSpec
	capabilities map[string]struct{}
	health       models.HealthSnapshot
}

// Registry is the in-process server index. One writer at a time; readers
// receive copies so a snapshot never observes a half-applied mutation.
// Mutations persist before releasing the write lock, so documents land on
// disk in mutation order.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]*entry

	persister *persister
	logger    *slog.Logger
}

// New creates a registry persisted at file. An existing registry file is
// loaded; a corrupt one falls back to its .bak and then to empty.
func New(file string) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]*entry),
		logger:  slog.With("subsystem", "registry"),
	}

	p, err := newPersister(file)
	if err != nil {
		return nil, err
	}
	r.persister = p

	doc, err := p.load()
	if err != nil {
		return nil, err
	}
	for id, spec := range doc.Servers {
		e := &entry{
			spec:         spec,
			capabilities: make(map[string]struct{}),
			health:       models.HealthSnapshot{Status: models.StatusUnknown},
		}
		for _, cap := range doc.Capabilities[id] {
			e.capabilities[cap] = struct{}{}
		}
		if h, ok := doc.Health[id]; ok {
			e.health = h
		}
		r.entries[id] = e
	}
	if len(r.entries) > 0 {
		r.logger.Info("Loaded server registry", "servers", len(r.entries))
	}
	return r, nil
}

// Register adds or replaces a server. A new server always starts with an
// Unknown health snapshot, even when the spec carries no capabilities.
func (r *Registry) Register(spec models.ServerSpec) error {
	if spec.ID == "" {
		return fmt.Errorf("server id must not be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e := &entry{
		spec:         spec,
		capabilities: make(map[string]struct{}),
		health:       models.HealthSnapshot{Status: models.StatusUnknown},
	}
	for _, cap := range spec.Capabilities {
		e.capabilities[strings.ToLower(cap)] = struct{}{}
	}
	if prev, ok := r.entries[spec.ID]; ok {
		// Re-registration keeps the health history.
		e.health = prev.health
	}
	r.entries[spec.ID] = e
	r.persister.save(r.documentLocked())
	r.logger.Info("Registered server", "server", spec.ID)
	return nil
}

// Unregister removes a server. Reports whether it was present.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.entries[id]
	if ok {
		delete(r.entries, id)
		r.persister.save(r.documentLocked())
		r.logger.Info("Unregistered server", "server", id)
	}
	return ok
}

// Lookup returns a copy of the server's spec and health.
func (r *Registry) Lookup(id string) (models.ServerSpec, models.HealthSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return models.ServerSpec{}, models.HealthSnapshot{}, fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}
	return copySpec(e), e.health, nil
}

// ListAll returns a consistent snapshot of all registered servers, sorted
// by id.
func (r *Registry) ListAll() []models.ServerSpec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]models.ServerSpec, 0, len(r.entries))
	for _, e := range r.entries {
		specs = append(specs, copySpec(e))
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].ID < specs[j].ID })
	return specs
}

// ByCapability returns ids of online servers providing the capability.
func (r *Registry) ByCapability(cap string) []string {
	return r.ByCapabilities([]string{cap}, false)
}

// ByCapabilities returns ids of online servers providing the capabilities.
// With requireAll, a server must provide every capability; otherwise any
// one suffices.
func (r *Registry) ByCapabilities(caps []string, requireAll bool) []string {
	lowered := make([]string, len(caps))
	for i, cap := range caps {
		lowered[i] = strings.ToLower(cap)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, e := range r.entries {
		if e.health.Status != models.StatusOnline {
			continue
		}
		if matchesCapabilities(e.capabilities, lowered, requireAll) {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

func matchesCapabilities(have map[string]struct{}, want []string, requireAll bool) bool {
	if len(want) == 0 {
		return false
	}
	for _, cap := range want {
		_, ok := have[cap]
		if requireAll && !ok {
			return false
		}
		if !requireAll && ok {
			return true
		}
	}
	return requireAll
}

// UpdateCapabilities replaces a server's capability set.
func (r *Registry) UpdateCapabilities(id string, caps []string) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}
	e.capabilities = make(map[string]struct{}, len(caps))
	e.spec.Capabilities = slices.Clone(caps)
	for _, cap := range caps {
		e.capabilities[strings.ToLower(cap)] = struct{}{}
	}
	r.persister.save(r.documentLocked())
	r.mu.Unlock()
	return nil
}

// UpdateTags replaces a server's tag set.
func (r *Registry) UpdateTags(id string, tags []string) error {
	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}
	e.spec.Tags = slices.Clone(tags)
	r.persister.save(r.documentLocked())
	r.mu.Unlock()
	return nil
}

// UpdateHealth applies a new probe result. responseTime carries the
// measured seconds for online probes; pass a negative value when no
// measurement is available.
//
// Online resets the error streak, stamps the success time, and folds the
// measurement into the EWMA. Any other status extends the error streak and
// leaves the success time and EWMA untouched.
func (r *Registry) UpdateHealth(id string, status models.HealthStatus, responseTime float64) error {
	now := time.Now()

	r.mu.Lock()
	e, ok := r.entries[id]
	if !ok {
		r.mu.Unlock()
		return fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}

	e.health.Status = status
	e.health.LastProbeAt = now
	if status == models.StatusOnline {
		e.health.ConsecutiveErrors = 0
		e.health.LastSuccessAt = now
		if responseTime >= 0 {
			e.health.EWMAResponseTime = ewma.Update(e.health.EWMAResponseTime, responseTime)
		}
	} else {
		e.health.ConsecutiveErrors++
	}
	r.persister.save(r.documentLocked())
	r.mu.Unlock()
	return nil
}

// Health returns a copy of the server's health snapshot.
func (r *Registry) Health(id string) (models.HealthSnapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[id]
	if !ok {
		return models.HealthSnapshot{}, fmt.Errorf("%w: %s", ErrServerNotFound, id)
	}
	return e.health, nil
}

// AllHealth returns health snapshots for every server.
func (r *Registry) AllHealth() map[string]models.HealthSnapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]models.HealthSnapshot, len(r.entries))
	for id, e := range r.entries {
		out[id] = e.health
	}
	return out
}

// OnlineIDs returns ids of servers currently Online, sorted.
func (r *Registry) OnlineIDs() []string {
	return r.idsByStatus(models.StatusOnline)
}

// OfflineIDs returns ids of servers not currently Online, sorted.
func (r *Registry) OfflineIDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, e := range r.entries {
		if e.health.Status != models.StatusOnline {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// AllCapabilities returns the distinct capability names across all servers.
func (r *Registry) AllCapabilities() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set := make(map[string]struct{})
	for _, e := range r.entries {
		for cap := range e.capabilities {
			set[cap] = struct{}{}
		}
	}
	caps := make([]string, 0, len(set))
	for cap := range set {
		caps = append(caps, cap)
	}
	sort.Strings(caps)
	return caps
}

// Has reports whether a server id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.entries[id]
	return ok
}

func (r *Registry) idsByStatus(status models.HealthStatus) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []string
	for id, e := range r.entries {
		if e.health.Status == status {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// documentLocked assembles the persistence document. Caller holds mu.
func (r *Registry) documentLocked() document {
	doc := document{
		Servers:      make(map[string]models.ServerSpec, len(r.entries)),
		Capabilities: make(map[string][]string, len(r.entries)),
		Health:       make(map[string]models.HealthSnapshot, len(r.entries)),
	}
	for id, e := range r.entries {
		doc.Servers[id] = copySpec(e)
		caps := make([]string, 0, len(e.capabilities))
		for cap := range e.capabilities {
			caps = append(caps, cap)
		}
		sort.Strings(caps)
		doc.Capabilities[id] = caps
		doc.Health[id] = e.health
	}
	return doc
}

func copySpec(e *entry) models.ServerSpec {
	spec := e.spec
	spec.Capabilities = slices.Clone(e.spec.Capabilities)
	spec.Tags = slices.Clone(e.spec.Tags)
	return spec
}
