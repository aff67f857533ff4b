package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/rackhd/redfish-gateway/internal/entity"
	"github.com/rackhd/redfish-gateway/pkg/db"
)

type workflowRow struct {
	InstanceID string `db:"instance_id"`
	NodeID     string `db:"node_id"`
	Name       string `db:"name"`
	Options    string `db:"options"`
	CreatedAt  int64  `db:"created_at"`
}

// Publisher hands a started graph to the workflow engine.
type Publisher interface {
	Publish(ctx context.Context, wf *entity.WorkflowInstance) error
}

// WorkflowRepo records graph requests and forwards them to a Publisher when one is set.
type WorkflowRepo struct {
	*db.SQL
	publisher Publisher
}

// NewWorkflowRepo -.
func NewWorkflowRepo(database *db.SQL, publisher Publisher) *WorkflowRepo {
	return &WorkflowRepo{SQL: database, publisher: publisher}
}

// Run stores the graph request and returns the new instance.
func (r *WorkflowRepo) Run(ctx context.Context, nodeID string, graph entity.GraphRequest) (*entity.WorkflowInstance, error) {
	wf := &entity.WorkflowInstance{
		InstanceID: uuid.NewString(),
		NodeID:     nodeID,
		Name:       graph.Name,
		Options:    graph.Options,
		CreatedAt:  time.Now().UTC(),
	}

	if wf.Options == nil {
		wf.Options = map[string]interface{}{}
	}

	options, err := encodeJSON(wf.Options)
	if err != nil {
		return nil, err
	}

	query, args, err := r.Builder.Insert("workflows").
		Columns("instance_id", "node_id", "name", "options", "created_at").
		Values(wf.InstanceID, wf.NodeID, wf.Name, options, wf.CreatedAt.UnixNano()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("WorkflowRepo - Run - ToSql: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("WorkflowRepo - Run - ExecContext: %w", err)
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, wf); err != nil {
			return nil, fmt.Errorf("WorkflowRepo - Run - Publish: %w", err)
		}
	}

	return wf, nil
}

// Get returns a recorded workflow instance.
func (r *WorkflowRepo) Get(ctx context.Context, instanceID string) (*entity.WorkflowInstance, error) {
	query, args, err := r.Builder.Select("instance_id", "node_id", "name", "options", "created_at").
		From("workflows").
		Where("instance_id = ?", instanceID).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("WorkflowRepo - Get - ToSql: %w", err)
	}

	var rows []workflowRow
	if err := r.Pool.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("WorkflowRepo - Get - SelectContext: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: %s", entity.ErrWorkflowNotFound, instanceID)
	}

	wf := &entity.WorkflowInstance{
		InstanceID: rows[0].InstanceID,
		NodeID:     rows[0].NodeID,
		Name:       rows[0].Name,
		CreatedAt:  time.Unix(0, rows[0].CreatedAt).UTC(),
	}

	if err := decodeJSON(rows[0].Options, &wf.Options); err != nil {
		return nil, fmt.Errorf("WorkflowRepo - Get - decode: %w", err)
	}

	return wf, nil
}
