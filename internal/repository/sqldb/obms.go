package sqldb

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/db"
)

type obmRow struct {
	ID      string `db:"id"`
	NodeID  string `db:"node_id"`
	Service string `db:"service"`
	Config  string `db:"config"`
}

func (row *obmRow) toEntity() (entity.Obm, error) {
	obm := entity.Obm{ID: row.ID, NodeID: row.NodeID, Service: row.Service}

	if err := decodeJSON(row.Config, &obm.Config); err != nil {
		return entity.Obm{}, fmt.Errorf("ObmRepo - decode config of %s: %w", row.ID, err)
	}

	return obm, nil
}

// ObmRepo persists OBM settings. Secrets are encrypted on the way in.
type ObmRepo struct {
	*db.SQL
	enc entity.Encryptor
}

// NewObmRepo -.
func NewObmRepo(database *db.SQL, enc entity.Encryptor) *ObmRepo {
	return &ObmRepo{SQL: database, enc: enc}
}

// Create validates defaults, encrypts the secrets and stores the OBM.
func (r *ObmRepo) Create(ctx context.Context, nodeID string, defaults entity.Obm) (*entity.Obm, error) {
	obm, err := entity.NewObm(defaults)
	if err != nil {
		return nil, err
	}

	obm.NodeID = nodeID
	if obm.ID == "" {
		obm.ID = uuid.NewString()
	}

	if _, err := obm.Deserialize(nil, r.enc); err != nil {
		return nil, err
	}

	cfg, err := encodeJSON(obm.Config)
	if err != nil {
		return nil, err
	}

	query, args, err := r.Builder.Insert("obms").
		Columns("id", "node_id", "service", "config").
		Values(obm.ID, obm.NodeID, obm.Service, cfg).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ObmRepo - Create - ToSql: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("ObmRepo - Create - ExecContext: %w", err)
	}

	return obm, nil
}

// FindByNodes returns the stored OBMs of every node in ids, keyed by node.
func (r *ObmRepo) FindByNodes(ctx context.Context, ids []string) (map[string][]entity.Obm, error) {
	out := make(map[string][]entity.Obm, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query, args, err := r.Builder.Select("id", "node_id", "service", "config").
		From("obms").
		Where(squirrel.Eq{"node_id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("ObmRepo - FindByNodes - ToSql: %w", err)
	}

	var rows []obmRow
	if err := r.Pool.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("ObmRepo - FindByNodes - SelectContext: %w", err)
	}

	for i := range rows {
		obm, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}

		out[obm.NodeID] = append(out[obm.NodeID], obm)
	}

	return out, nil
}
