package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/rackhd/redfish-gateway/pkg/db"
)

// LookupRepo maps MAC addresses seen by DHCP to IP addresses.
type LookupRepo struct {
	*db.SQL
}

// NewLookupRepo -.
func NewLookupRepo(database *db.SQL) *LookupRepo {
	return &LookupRepo{database}
}

// MacAddressToIP returns the IP leased to mac, or "" when unknown.
func (r *LookupRepo) MacAddressToIP(ctx context.Context, mac string) (string, error) {
	query, args, err := r.Builder.Select("ip_address").
		From("lookups").
		Where(squirrel.Eq{"mac_address": strings.ToLower(mac)}).
		Limit(1).
		ToSql()
	if err != nil {
		return "", fmt.Errorf("LookupRepo - MacAddressToIP - ToSql: %w", err)
	}

	var ips []string
	if err := r.Pool.SelectContext(ctx, &ips, query, args...); err != nil {
		return "", fmt.Errorf("LookupRepo - MacAddressToIP - SelectContext: %w", err)
	}

	if len(ips) == 0 {
		return "", nil
	}

	return ips[0], nil
}

// Upsert records the IP leased to mac.
func (r *LookupRepo) Upsert(ctx context.Context, mac, ip, nodeID string) error {
	query, args, err := r.Builder.Insert("lookups").
		Columns("mac_address", "ip_address", "node_id").
		Values(strings.ToLower(mac), ip, nodeID).
		Suffix("ON CONFLICT (mac_address) DO UPDATE SET ip_address = excluded.ip_address, node_id = excluded.node_id").
		ToSql()
	if err != nil {
		return fmt.Errorf("LookupRepo - Upsert - ToSql: %w", err)
	}

	if _, err := r.Pool.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("LookupRepo - Upsert - ExecContext: %w", err)
	}

	return nil
}
