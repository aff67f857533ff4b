package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/db"
)

type pollerRow struct {
	ID      string `db:"id"`
	NodeID  string `db:"node_id"`
	Command string `db:"command"`
}

// PollerRepo stores pollers and the results they cache.
type PollerRepo struct {
	*db.SQL
}

// NewPollerRepo -.
func NewPollerRepo(database *db.SQL) *PollerRepo {
	return &PollerRepo{database}
}

// FindPollers returns the pollers matching filter.
func (r *PollerRepo) FindPollers(ctx context.Context, filter entity.PollerFilter) ([]entity.Poller, error) {
	q := r.Builder.Select("id", "node_id", "command").From("pollers").OrderBy("id")

	if filter.NodeID != "" {
		q = q.Where(squirrel.Eq{"node_id": filter.NodeID})
	}

	if filter.Command != "" {
		q = q.Where(squirrel.Eq{"command": filter.Command})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("PollerRepo - FindPollers - ToSql: %w", err)
	}

	var rows []pollerRow
	if err := r.Pool.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("PollerRepo - FindPollers - SelectContext: %w", err)
	}

	pollers := make([]entity.Poller, 0, len(rows))
	for _, row := range rows {
		pollers = append(pollers, entity.Poller{
			ID:     row.ID,
			NodeID: row.NodeID,
			Config: entity.PollerConfig{Command: row.Command},
		})
	}

	return pollers, nil
}

// RequestPollerCache returns the cached results of a poller, newest first.
func (r *PollerRepo) RequestPollerCache(ctx context.Context, pollerID string, latestOnly bool) ([]entity.PollerResult, error) {
	q := r.Builder.Select("data").
		From("poller_cache").
		Where(squirrel.Eq{"poller_id": pollerID}).
		OrderBy("created_at DESC")

	if latestOnly {
		q = q.Limit(1)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("PollerRepo - RequestPollerCache - ToSql: %w", err)
	}

	var rows []string
	if err := r.Pool.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("PollerRepo - RequestPollerCache - SelectContext: %w", err)
	}

	results := make([]entity.PollerResult, 0, len(rows))

	for _, data := range rows {
		var result entity.PollerResult
		if err := decodeJSON(data, &result); err != nil {
			return nil, fmt.Errorf("PollerRepo - RequestPollerCache - decode: %w", err)
		}

		results = append(results, result)
	}

	return results, nil
}

// Create stores a poller; the ID is generated when empty.
func (r *PollerRepo) Create(ctx context.Context, p *entity.Poller) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	cfg, err := encodeJSON(p.Config)
	if err != nil {
		return err
	}

	query, args, err := r.Builder.Insert("pollers").
		Columns("id", "node_id", "command", "config").
		Values(p.ID, p.NodeID, p.Config.Command, cfg).
		ToSql()
	if err != nil {
		return fmt.Errorf("PollerRepo - Create - ToSql: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("PollerRepo - Create - ExecContext: %w", err)
	}

	return nil
}

// AppendCache records one poll result at the given time.
func (r *PollerRepo) AppendCache(ctx context.Context, pollerID string, result entity.PollerResult, at time.Time) error {
	data, err := encodeJSON(result)
	if err != nil {
		return err
	}

	query, args, err := r.Builder.Insert("poller_cache").
		Columns("id", "poller_id", "data", "created_at").
		Values(uuid.NewString(), pollerID, data, at.UnixNano()).
		ToSql()
	if err != nil {
		return fmt.Errorf("PollerRepo - AppendCache - ToSql: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("PollerRepo - AppendCache - ExecContext: %w", err)
	}

	return nil
}
