// Package sqldb implements the inventory, catalog, poller, workflow and lookup
// stores on top of pkg/db.
package sqldb

import (
	"embed"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// registers the pgx5:// scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	jsoniter "github.com/json-iterator/go"

	"github.com/rackhd/redfish-gateway/pkg/db"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Migrate applies every pending migration. Postgres migrations run on their own
// connection so the shared pool is never pinned.
func Migrate(database *db.SQL, url string) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("sqldb - Migrate - iofs.New: %w", err)
	}

	var m *migrate.Migrate

	if database.IsEmbedded {
		driver, dErr := sqlitemigrate.WithInstance(database.Pool.DB, &sqlitemigrate.Config{})
		if dErr != nil {
			return fmt.Errorf("sqldb - Migrate - WithInstance: %w", dErr)
		}

		m, err = migrate.NewWithInstance("iofs", src, "sqlite", driver)
	} else {
		m, err = migrate.NewWithSourceInstance("iofs", src, pgx5URL(url))
		if err == nil {
			defer m.Close()
		}
	}

	if err != nil {
		return fmt.Errorf("sqldb - Migrate - New: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("sqldb - Migrate - Up: %w", err)
	}

	return nil
}

// pgx5URL rewrites a postgres url to the scheme registered by the migrate pgx/v5 driver.
func pgx5URL(url string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(url, prefix) {
			return "pgx5://" + strings.TrimPrefix(url, prefix)
		}
	}

	return url
}

func encodeJSON(v interface{}) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func decodeJSON(s string, v interface{}) error {
	if s == "" {
		return nil
	}

	return json.UnmarshalFromString(s, v)
}
