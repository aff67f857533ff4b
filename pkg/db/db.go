// Package db implements the SQL connection pool for the embedded sqlite store or postgres.
package db

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	// database/sql drivers.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const (
	_defaultMaxPoolSize  = 1
	_defaultConnAttempts = 10
	_defaultConnTimeout  = time.Second
	_defaultEmbeddedPath = "rackhd.db"

	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

// SQL -.
type SQL struct {
	maxPoolSize       int
	connAttempts      int
	connTimeout       time.Duration
	embeddedPath      string
	enableForeignKeys bool

	Builder    squirrel.StatementBuilderType
	Pool       *sqlx.DB
	Driver     string
	IsEmbedded bool
}

// OpenFunc matches sql.Open so tests can inject failures.
type OpenFunc func(driverName, dataSourceName string) (*sql.DB, error)

// New opens postgres when url is set, otherwise the embedded sqlite file.
func New(url string, open OpenFunc, opts ...Option) (*SQL, error) {
	s := &SQL{
		maxPoolSize:  _defaultMaxPoolSize,
		connAttempts: _defaultConnAttempts,
		connTimeout:  _defaultConnTimeout,
		embeddedPath: _defaultEmbeddedPath,
	}

	for _, opt := range opts {
		opt(s)
	}

	dsn := url
	if url == "" || strings.HasPrefix(url, "file:") {
		s.IsEmbedded = true
		s.Driver = DriverSQLite
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

		if dsn == "" {
			dsn = s.embeddedPath
		}
	} else {
		s.Driver = DriverPostgres
		s.Builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}

	var (
		pool *sql.DB
		err  error
	)

	for s.connAttempts > 0 {
		pool, err = open(s.Driver, dsn)
		if err == nil {
			err = pool.Ping()
		}

		if err == nil {
			break
		}

		log.Printf("db: trying to connect, attempts left: %d", s.connAttempts)

		time.Sleep(s.connTimeout)

		s.connAttempts--
	}

	if err != nil {
		return nil, fmt.Errorf("db - New - connAttempts == 0: %w", err)
	}

	if s.IsEmbedded {
		// sqlite pragmas are per connection, so the pool stays at one.
		pool.SetMaxOpenConns(1)

		if err := s.applyPragmas(pool); err != nil {
			pool.Close()

			return nil, err
		}
	} else {
		pool.SetMaxOpenConns(s.maxPoolSize)
	}

	s.Pool = sqlx.NewDb(pool, s.Driver)

	return s, nil
}

func (s *SQL) applyPragmas(pool *sql.DB) error {
	pragmas := []string{"PRAGMA journal_mode = WAL;"}
	if s.enableForeignKeys {
		pragmas = append(pragmas, "PRAGMA foreign_keys = ON;")
	}

	for _, p := range pragmas {
		if _, err := pool.Exec(p); err != nil {
			return fmt.Errorf("db - New - %s: %w", p, err)
		}
	}

	return nil
}

// Close -.
func (s *SQL) Close() {
	if s.Pool != nil {
		s.Pool.Close()
	}
}
