package db

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Embedded(t *testing.T) {
	t.Parallel()

	database, err := New("", sql.Open, EmbeddedPath(":memory:"), EnableForeignKeys(true))
	require.NoError(t, err)

	defer database.Close()

	assert.True(t, database.IsEmbedded)
	assert.Equal(t, DriverSQLite, database.Driver)

	query, args, err := database.Builder.Select("id").From("nodes").Where("id = ?", "n1").ToSql()
	require.NoError(t, err)
	assert.Equal(t, "SELECT id FROM nodes WHERE id = ?", query)
	assert.Equal(t, []interface{}{"n1"}, args)
}

func TestNew_PostgresPlaceholders(t *testing.T) {
	t.Parallel()

	opened := ""
	open := func(driverName, _ string) (*sql.DB, error) {
		opened = driverName

		return nil, errors.New("unreachable")
	}

	_, err := New("postgres://u:p@localhost:5432/db", open, ConnAttempts(1), ConnTimeout(0))
	require.Error(t, err)
	assert.Equal(t, DriverPostgres, opened)
}
