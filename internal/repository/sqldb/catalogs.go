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

type catalogRow struct {
	ID        string `db:"id"`
	NodeID    string `db:"node_id"`
	Source    string `db:"source"`
	Data      string `db:"data"`
	CreatedAt int64  `db:"created_at"`
}

func (row *catalogRow) toEntity() (entity.Catalog, error) {
	c := entity.Catalog{
		ID:        row.ID,
		NodeID:    row.NodeID,
		Source:    row.Source,
		CreatedAt: time.Unix(0, row.CreatedAt).UTC(),
	}

	if err := decodeJSON(row.Data, &c.Data); err != nil {
		return entity.Catalog{}, fmt.Errorf("CatalogRepo - decode %s: %w", row.ID, err)
	}

	return c, nil
}

// CatalogRepo -.
type CatalogRepo struct {
	*db.SQL
}

// NewCatalogRepo -.
func NewCatalogRepo(database *db.SQL) *CatalogRepo {
	return &CatalogRepo{database}
}

// FindLatestCatalogOfSource returns the newest catalog of source for the node.
func (r *CatalogRepo) FindLatestCatalogOfSource(ctx context.Context, nodeID, source string) (*entity.Catalog, error) {
	catalogs, err := r.find(ctx, entity.CatalogQuery{NodeID: nodeID, Source: source}, 1)
	if err != nil {
		return nil, err
	}

	if len(catalogs) == 0 {
		return nil, fmt.Errorf("%w: %s/%s", entity.ErrCatalogNotFound, nodeID, source)
	}

	return &catalogs[0], nil
}

// Find returns every catalog matching query, newest first.
func (r *CatalogRepo) Find(ctx context.Context, query entity.CatalogQuery) ([]entity.Catalog, error) {
	return r.find(ctx, query, 0)
}

// Create stores a catalog. ID and CreatedAt are filled when empty.
func (r *CatalogRepo) Create(ctx context.Context, c *entity.Catalog) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}

	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}

	data, err := encodeJSON(c.Data)
	if err != nil {
		return err
	}

	query, args, err := r.Builder.Insert("catalogs").
		Columns("id", "node_id", "source", "data", "created_at").
		Values(c.ID, c.NodeID, c.Source, data, c.CreatedAt.UnixNano()).
		ToSql()
	if err != nil {
		return fmt.Errorf("CatalogRepo - Create - ToSql: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("CatalogRepo - Create - ExecContext: %w", err)
	}

	return nil
}

func (r *CatalogRepo) find(ctx context.Context, cq entity.CatalogQuery, limit uint64) ([]entity.Catalog, error) {
	q := r.Builder.Select("id", "node_id", "source", "data", "created_at").
		From("catalogs").
		OrderBy("created_at DESC")

	if cq.NodeID != "" {
		q = q.Where(squirrel.Eq{"node_id": cq.NodeID})
	}

	if cq.Source != "" {
		q = q.Where(squirrel.Eq{"source": cq.Source})
	}

	if limit > 0 {
		q = q.Limit(limit)
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("CatalogRepo - find - ToSql: %w", err)
	}

	var rows []catalogRow
	if err := r.Pool.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("CatalogRepo - find - SelectContext: %w", err)
	}

	out := make([]entity.Catalog, 0, len(rows))

	for i := range rows {
		c, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}

		out = append(out, c)
	}

	return out, nil
}
