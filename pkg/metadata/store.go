package metadata

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mcp-router/mcp-router/ent"
	"github.com/mcp-router/mcp-router/ent/capability"
	"github.com/mcp-router/mcp-router/ent/healthrecord"
	"github.com/mcp-router/mcp-router/ent/predicate"
	"github.com/mcp-router/mcp-router/ent/server"
	"github.com/mcp-router/mcp-router/ent/servercapability"
	"github.com/mcp-router/mcp-router/ent/servertag"
	"github.com/mcp-router/mcp-router/ent/tool"
	"github.com/mcp-router/mcp-router/ent/usagerecord"
	"github.com/mcp-router/mcp-router/pkg/ewma"
	"github.com/mcp-router/mcp-router/pkg/models"
)

// ErrNotFound indicates an operation against an unknown server id.
var ErrNotFound = errors.New("server not found in metadata store")

// minTokenLength filters noise words out of task-search tokenization.
const minTokenLength = 4

// ServerRecord is a server as the store returns it: the spec plus its
// advertised tools and durable health row.
type ServerRecord struct {
	Spec   models.ServerSpec
	Tools  []models.ToolInfo
	Health models.HealthSnapshot
}

// Store exposes the metadata operations over an open Client.
type Store struct {
	client *Client
	logger *slog.Logger
}

// NewStore creates a store over an open metadata client.
func NewStore(client *Client) *Store {
	return &Store{
		client: client,
		logger: slog.With("subsystem", "metadata"),
	}
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.client.Close()
}

// withTx runs fn inside a transaction, rolling back on error.
func (s *Store) withTx(ctx context.Context, fn func(tx *ent.Tx) error) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	return tx.Commit()
}

// UpsertServer writes the server row, its capability links, tools, and tags
// in one transaction, replacing whatever was there before. A missing health
// row is created at Unknown; an existing one is preserved.
func (s *Store) UpsertServer(ctx context.Context, spec models.ServerSpec, tools []models.ToolInfo) error {
	if spec.ID == "" {
		return fmt.Errorf("server id must not be empty")
	}

	return s.withTx(ctx, func(tx *ent.Tx) error {
		exists, err := tx.Server.Query().Where(server.ID(spec.ID)).Exist(ctx)
		if err != nil {
			return err
		}
		if exists {
			err = tx.Server.UpdateOneID(spec.ID).
				SetName(spec.Name).
				SetDescription(spec.Description).
				SetTransportKind(string(spec.Launch.Kind)).
				SetCommand(spec.Launch.Command).
				SetArgs(spec.Launch.Args).
				SetEnv(spec.Launch.Env).
				SetURL(spec.Launch.URL).
				Exec(ctx)
		} else {
			err = tx.Server.Create().
				SetID(spec.ID).
				SetName(spec.Name).
				SetDescription(spec.Description).
				SetTransportKind(string(spec.Launch.Kind)).
				SetCommand(spec.Launch.Command).
				SetArgs(spec.Launch.Args).
				SetEnv(spec.Launch.Env).
				SetURL(spec.Launch.URL).
				Exec(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to write server row: %w", err)
		}

		if err := replaceCapabilities(ctx, tx, spec.ID, spec.Capabilities); err != nil {
			return err
		}
		if err := replaceTools(ctx, tx, spec.ID, tools); err != nil {
			return err
		}
		if err := replaceTags(ctx, tx, spec.ID, spec.Tags); err != nil {
			return err
		}

		hasHealth, err := tx.HealthRecord.Query().
			Where(healthrecord.ServerID(spec.ID)).
			Exist(ctx)
		if err != nil {
			return err
		}
		if !hasHealth {
			if err := tx.HealthRecord.Create().SetServerID(spec.ID).Exec(ctx); err != nil {
				return fmt.Errorf("failed to create health row: %w", err)
			}
		}
		return nil
	})
}

func replaceCapabilities(ctx context.Context, tx *ent.Tx, serverID string, caps []string) error {
	if _, err := tx.ServerCapability.Delete().
		Where(servercapability.ServerID(serverID)).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear capability links: %w", err)
	}
	for _, name := range caps {
		name = strings.ToLower(name)
		capRow, err := tx.Capability.Query().Where(capability.Name(name)).Only(ctx)
		if ent.IsNotFound(err) {
			capRow, err = tx.Capability.Create().SetName(name).Save(ctx)
		}
		if err != nil {
			return fmt.Errorf("failed to resolve capability %q: %w", name, err)
		}
		if err := tx.ServerCapability.Create().
			SetServerID(serverID).
			SetCapabilityID(capRow.ID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to link capability %q: %w", name, err)
		}
	}
	return nil
}

func replaceTools(ctx context.Context, tx *ent.Tx, serverID string, tools []models.ToolInfo) error {
	if _, err := tx.Tool.Delete().Where(tool.ServerID(serverID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear tools: %w", err)
	}
	for _, t := range tools {
		if err := tx.Tool.Create().
			SetServerID(serverID).
			SetName(t.Name).
			SetDescription(t.Description).
			SetSchema(t.Schema).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to write tool %q: %w", t.Name, err)
		}
	}
	return nil
}

func replaceTags(ctx context.Context, tx *ent.Tx, serverID string, tags []string) error {
	if _, err := tx.ServerTag.Delete().Where(servertag.ServerID(serverID)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to clear tags: %w", err)
	}
	for _, tag := range tags {
		if err := tx.ServerTag.Create().
			SetServerID(serverID).
			SetTag(tag).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to write tag %q: %w", tag, err)
		}
	}
	return nil
}

// ReadServer loads the full record for one server.
func (s *Store) ReadServer(ctx context.Context, id string) (*ServerRecord, error) {
	srv, err := s.client.Server.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}

	caps, err := srv.QueryCapabilities().Order(ent.Asc(capability.FieldName)).All(ctx)
	if err != nil {
		return nil, err
	}
	toolRows, err := srv.QueryTools().Order(ent.Asc(tool.FieldName)).All(ctx)
	if err != nil {
		return nil, err
	}
	tagRows, err := srv.QueryTags().Order(ent.Asc(servertag.FieldTag)).All(ctx)
	if err != nil {
		return nil, err
	}

	rec := &ServerRecord{
		Spec: models.ServerSpec{
			ID:          srv.ID,
			Name:        srv.Name,
			Description: srv.Description,
			Launch: models.LaunchSpec{
				Kind:    models.TransportKind(srv.TransportKind),
				Command: srv.Command,
				Args:    srv.Args,
				Env:     srv.Env,
				URL:     srv.URL,
			},
		},
		Health: models.HealthSnapshot{Status: models.StatusUnknown},
	}
	for _, c := range caps {
		rec.Spec.Capabilities = append(rec.Spec.Capabilities, c.Name)
	}
	for _, tg := range tagRows {
		rec.Spec.Tags = append(rec.Spec.Tags, tg.Tag)
	}
	for _, t := range toolRows {
		rec.Tools = append(rec.Tools, models.ToolInfo{
			Name:        t.Name,
			Description: t.Description,
			Schema:      t.Schema,
		})
	}

	hr, err := srv.QueryHealth().Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}
	if hr != nil {
		rec.Health = snapshotFromRecord(hr)
	}
	return rec, nil
}

func snapshotFromRecord(hr *ent.HealthRecord) models.HealthSnapshot {
	snap := models.HealthSnapshot{
		Status:            models.HealthStatus(hr.Status),
		ConsecutiveErrors: hr.ErrorCount,
		EWMAResponseTime:  hr.AvgResponseTime,
	}
	if hr.LastCheck != nil {
		snap.LastProbeAt = *hr.LastCheck
	}
	if hr.LastSuccessfulConnection != nil {
		snap.LastSuccessAt = *hr.LastSuccessfulConnection
	}
	return snap
}

// DeleteServer removes the server row; capability links, tools, health,
// usage, and tags go with it via ON DELETE CASCADE. Orphaned capability
// rows are left behind; they are shared and harmless.
func (s *Store) DeleteServer(ctx context.Context, id string) error {
	err := s.client.Server.DeleteOneID(id).Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return err
}

// FindServersForTask matches free task text against capability names and
// tool descriptions. Tokens shorter than four characters are dropped; a
// server qualifies when any token matches and its health is Online or has
// never been probed. Returns distinct ids, sorted.
func (s *Store) FindServersForTask(ctx context.Context, text string) ([]string, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return nil, nil
	}

	textPreds := make([]predicate.Server, 0, len(tokens)*2)
	for _, tok := range tokens {
		textPreds = append(textPreds,
			server.HasCapabilitiesWith(capability.NameContainsFold(tok)),
			server.HasToolsWith(tool.DescriptionContainsFold(tok)),
		)
	}

	ids, err := s.client.Server.Query().
		Where(
			server.Or(textPreds...),
			server.Or(
				server.Not(server.HasHealth()),
				server.HasHealthWith(healthrecord.StatusIn(
					healthrecord.StatusOnline,
					healthrecord.StatusUnknown,
				)),
			),
		).
		IDs(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9') && r != '_'
	})
	seen := make(map[string]struct{})
	var tokens []string
	for _, f := range fields {
		if len(f) < minTokenLength {
			continue
		}
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		tokens = append(tokens, f)
	}
	return tokens
}

// UpdateHealth applies a probe result to the server's durable health row,
// mirroring the registry's update algorithm so the two never drift.
func (s *Store) UpdateHealth(ctx context.Context, id string, status models.HealthStatus, responseTime float64) error {
	exists, err := s.client.Server.Query().Where(server.ID(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	now := time.Now()
	hr, err := s.client.HealthRecord.Query().Where(healthrecord.ServerID(id)).Only(ctx)
	if ent.IsNotFound(err) {
		hr, err = s.client.HealthRecord.Create().SetServerID(id).Save(ctx)
	}
	if err != nil {
		return err
	}

	upd := s.client.HealthRecord.UpdateOne(hr).
		SetStatus(healthrecord.Status(status)).
		SetLastCheck(now)
	if status == models.StatusOnline {
		upd.SetErrorCount(0).SetLastSuccessfulConnection(now)
		if responseTime >= 0 {
			upd.SetAvgResponseTime(ewma.Update(hr.AvgResponseTime, responseTime))
		}
	} else {
		upd.SetErrorCount(hr.ErrorCount + 1)
	}
	return upd.Exec(ctx)
}

// AppendUsage records one tool invocation.
func (s *Store) AppendUsage(ctx context.Context, rec models.UsageRecord) error {
	ts := rec.StartedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	err := s.client.UsageRecord.Create().
		SetServerID(rec.ServerID).
		SetToolName(rec.ToolName).
		SetDuration(rec.Duration).
		SetSuccess(rec.Succeeded).
		SetTimestamp(ts).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to append usage record: %w", err)
	}
	return nil
}

// PruneUsage deletes usage rows older than the cutoff across all servers.
// Returns the number of rows removed.
func (s *Store) PruneUsage(ctx context.Context, olderThan time.Time) (int, error) {
	n, err := s.client.UsageRecord.Delete().
		Where(usagerecord.TimestampLT(olderThan)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune usage records: %w", err)
	}
	return n, nil
}

// UsageStats aggregates the server's usage rows over the trailing window.
func (s *Store) UsageStats(ctx context.Context, id string, windowDays int) (*models.UsageStats, error) {
	if windowDays <= 0 {
		windowDays = 30
	}
	cutoff := time.Now().AddDate(0, 0, -windowDays)

	rows, err := s.client.UsageRecord.Query().
		Where(
			usagerecord.ServerID(id),
			usagerecord.TimestampGTE(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.UsageStats{
		ServerID:   id,
		WindowDays: windowDays,
		TotalCalls: len(rows),
		ByTool:     make(map[string]int),
	}
	if len(rows) == 0 {
		return stats, nil
	}

	successes := 0
	var totalDuration float64
	for _, row := range rows {
		if row.Success {
			successes++
		}
		totalDuration += row.Duration
		stats.ByTool[row.ToolName]++
		if row.Timestamp.After(stats.LastUsedAt) {
			stats.LastUsedAt = row.Timestamp
		}
	}
	stats.SuccessRate = float64(successes) / float64(len(rows))
	stats.AvgDuration = totalDuration / float64(len(rows))
	return stats, nil
}

// ByTag returns ids of servers carrying the tag, sorted.
func (s *Store) ByTag(ctx context.Context, tag string) ([]string, error) {
	ids, err := s.client.Server.Query().
		Where(server.HasTagsWith(servertag.Tag(tag))).
		IDs(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// ByCapability returns ids of servers providing the capability, sorted.
func (s *Store) ByCapability(ctx context.Context, cap string) ([]string, error) {
	ids, err := s.client.Server.Query().
		Where(server.HasCapabilitiesWith(capability.Name(strings.ToLower(cap)))).
		IDs(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(ids)
	return ids, nil
}

// AllCapabilities returns every known capability name with the number of
// servers providing it. Capabilities no server references count zero.
func (s *Store) AllCapabilities(ctx context.Context) (map[string]int, error) {
	caps, err := s.client.Capability.Query().All(ctx)
	if err != nil {
		return nil, err
	}
	links, err := s.client.ServerCapability.Query().All(ctx)
	if err != nil {
		return nil, err
	}

	countByID := make(map[int]int)
	for _, link := range links {
		countByID[link.CapabilityID]++
	}
	out := make(map[string]int, len(caps))
	for _, c := range caps {
		out[c.Name] = countByID[c.ID]
	}
	return out, nil
}

// AllTags returns the distinct tags across all servers, sorted.
func (s *Store) AllTags(ctx context.Context) ([]string, error) {
	tags, err := s.client.ServerTag.Query().
		GroupBy(servertag.FieldTag).
		Strings(ctx)
	if err != nil {
		return nil, err
	}
	sort.Strings(tags)
	return tags, nil
}

// UpdateTools replaces the server's tool rows, used when a live connection
// refreshes the advertised tool list.
func (s *Store) UpdateTools(ctx context.Context, id string, tools []models.ToolInfo) error {
	exists, err := s.client.Server.Query().Where(server.ID(id)).Exist(ctx)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return s.withTx(ctx, func(tx *ent.Tx) error {
		return replaceTools(ctx, tx, id, tools)
	})
}
