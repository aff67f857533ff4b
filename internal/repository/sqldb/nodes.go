package sqldb

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/db"
)

type nodeRow struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Type        string `db:"type"`
	SKU         string `db:"sku"`
	Identifiers string `db:"identifiers"`
	Relations   string `db:"relations"`
}

// NodeRepo -.
type NodeRepo struct {
	*db.SQL
	obms *ObmRepo
}

// NewNodeRepo reads nodes and attaches their OBMs through obms.
func NewNodeRepo(database *db.SQL, obms *ObmRepo) *NodeRepo {
	return &NodeRepo{SQL: database, obms: obms}
}

// FindNodes returns the nodes matching filter, with their OBMs.
func (r *NodeRepo) FindNodes(ctx context.Context, filter entity.NodeFilter) ([]entity.Node, error) {
	q := r.Builder.Select("id", "name", "type", "sku", "identifiers", "relations").From("nodes").OrderBy("id")

	if filter.ID != "" {
		q = q.Where(squirrel.Eq{"id": filter.ID})
	}

	if filter.Type != "" {
		q = q.Where(squirrel.Eq{"type": filter.Type})
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("NodeRepo - FindNodes - ToSql: %w", err)
	}

	var rows []nodeRow
	if err := r.Pool.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("NodeRepo - FindNodes - SelectContext: %w", err)
	}

	nodes := make([]entity.Node, 0, len(rows))
	ids := make([]string, 0, len(rows))

	for i := range rows {
		node, err := rows[i].toEntity()
		if err != nil {
			return nil, err
		}

		nodes = append(nodes, node)
		ids = append(ids, node.ID)
	}

	obms, err := r.obms.FindByNodes(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range nodes {
		nodes[i].Obms = obms[nodes[i].ID]
	}

	return nodes, nil
}

// GetNodeByID returns the node with its OBMs or entity.ErrNodeNotFound.
func (r *NodeRepo) GetNodeByID(ctx context.Context, id string) (*entity.Node, error) {
	nodes, err := r.FindNodes(ctx, entity.NodeFilter{ID: id})
	if err != nil {
		return nil, err
	}

	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrNodeNotFound, id)
	}

	return &nodes[0], nil
}

// NeedByIdentifier resolves a node by id or by one of its identifiers.
// Identifiers match whole elements, case-sensitively.
func (r *NodeRepo) NeedByIdentifier(ctx context.Context, identifier string) (*entity.Node, error) {
	element, err := encodeJSON(identifier)
	if err != nil {
		return nil, fmt.Errorf("NodeRepo - NeedByIdentifier - encode: %w", err)
	}

	query, args, err := r.Builder.Select("id", "identifiers").From("nodes").
		Where(squirrel.Or{
			squirrel.Eq{"id": identifier},
			squirrel.Expr(`identifiers LIKE ? ESCAPE '\'`, "%"+escapeLike(element)+"%"),
		}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("NodeRepo - NeedByIdentifier - ToSql: %w", err)
	}

	var rows []nodeRow
	if err := r.Pool.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("NodeRepo - NeedByIdentifier - SelectContext: %w", err)
	}

	id, err := matchIdentifier(rows, identifier)
	if err != nil {
		return nil, err
	}

	return r.GetNodeByID(ctx, id)
}

// matchIdentifier prefers a node id match over an identifier match.
func matchIdentifier(rows []nodeRow, identifier string) (string, error) {
	for i := range rows {
		if rows[i].ID == identifier {
			return rows[i].ID, nil
		}
	}

	for i := range rows {
		var identifiers []string
		if err := decodeJSON(rows[i].Identifiers, &identifiers); err != nil {
			return "", fmt.Errorf("NodeRepo - decode identifiers of %s: %w", rows[i].ID, err)
		}

		if slices.Contains(identifiers, identifier) {
			return rows[i].ID, nil
		}
	}

	return "", fmt.Errorf("%w: %s", entity.ErrNodeNotFound, identifier)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Upsert stores the node without touching its OBMs.
func (r *NodeRepo) Upsert(ctx context.Context, node *entity.Node) error {
	identifiers, err := encodeJSON(nonNilStrings(node.Identifiers))
	if err != nil {
		return err
	}

	relations, err := encodeJSON(nonNilRelations(node.Relations))
	if err != nil {
		return err
	}

	query, args, err := r.Builder.Insert("nodes").
		Columns("id", "name", "type", "sku", "identifiers", "relations").
		Values(node.ID, node.Name, node.Type, node.SKU, identifiers, relations).
		Suffix("ON CONFLICT (id) DO UPDATE SET name = excluded.name, type = excluded.type, sku = excluded.sku, identifiers = excluded.identifiers, relations = excluded.relations").
		ToSql()
	if err != nil {
		return fmt.Errorf("NodeRepo - Upsert - ToSql: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("NodeRepo - Upsert - ExecContext: %w", err)
	}

	return nil
}

func (row *nodeRow) toEntity() (entity.Node, error) {
	node := entity.Node{
		ID:   row.ID,
		Name: row.Name,
		Type: row.Type,
		SKU:  row.SKU,
	}

	if err := decodeJSON(row.Identifiers, &node.Identifiers); err != nil {
		return entity.Node{}, fmt.Errorf("NodeRepo - decode identifiers of %s: %w", row.ID, err)
	}

	if err := decodeJSON(row.Relations, &node.Relations); err != nil {
		return entity.Node{}, fmt.Errorf("NodeRepo - decode relations of %s: %w", row.ID, err)
	}

	return node, nil
}

func nonNilStrings(in []string) []string {
	if in == nil {
		return []string{}
	}

	return in
}

func nonNilRelations(in []entity.Relation) []entity.Relation {
	if in == nil {
		return []entity.Relation{}
	}

	return in
}
