// Package postgres implements the storage interfaces on PostgreSQL with pgx
// and the goqu query builder.
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"gmao/pkg/storage"
	"net/url"
	"strconv"
	"time"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

const dialect = "postgres"

// Options defines the configuration parameters for PostgreSQL database connection.
type Options struct {
	// Username is the PostgreSQL user to connect as
	Username string
	// Password is the password for the specified user
	Password string
	// Host is the PostgreSQL server hostname or IP address
	Host string
	// SslMode specifies the SSL mode for the connection (e.g., "disable", "require")
	SslMode string
	// Port is the PostgreSQL server port number
	Port int
	// Database is the name of the database to connect to
	Database string
	// ConnMaxLifetime is the maximum amount of time a connection may be reused
	ConnMaxLifetime time.Duration
	// ConnMaxIdleTime is the maximum amount of time a connection may be idle
	ConnMaxIdleTime time.Duration
	// MaxOpenConnections is the maximum number of open connections to the database
	MaxOpenConnections int
	// MaxIdleConnections is the maximum number of connections in the idle connection pool
	MaxIdleConnections int
}

// ConnString renders the options as a postgres:// URL. Credentials are
// escaped so passwords may contain any character.
func (o Options) ConnString() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(o.Username, o.Password),
		Host:   o.Host + ":" + strconv.Itoa(o.Port),
		Path:   "/" + o.Database,
	}
	if o.SslMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{o.SslMode}}.Encode()
	}

	return u.String()
}

// DB defines the subset of database/sql methods used by this package. Both
// *sql.DB and *sql.Tx satisfy this interface, allowing the same code paths to be
// used within and outside transactions.
type DB interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	PrepareContext(ctx context.Context, query string) (*sql.Stmt, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Builder abstracts the subset of goqu used to construct queries. Both a goqu
// database handle and a transaction handle implement it.
type Builder interface {
	From(table ...any) *goqu.SelectDataset
	Insert(table any) *goqu.InsertDataset
	Update(table any) *goqu.UpdateDataset
}

// PgSQL implements storage.Storage and storage.TxStorage.
type PgSQL struct {
	// DB is either a *sql.DB (when not in a transaction) or a *sql.Tx.
	DB DB
	// Builder is the goqu handle used to construct SQL queries bound to DB.
	Builder Builder
	// Pool is the underlying pgx connection pool. It is nil on transactional
	// handles.
	Pool *pgxpool.Pool
}

var (
	_ storage.Storage   = (*PgSQL)(nil)
	_ storage.TxStorage = (*PgSQL)(nil)
)

// Close closes the underlying pgx connection pool.
func (p *PgSQL) Close() error {
	if db, ok := p.DB.(*sql.DB); ok {
		_ = db.Close()
	}
	if p.Pool != nil {
		p.Pool.Close()
	}

	return nil
}

// Ping checks that the database is reachable.
func (p *PgSQL) Ping(ctx context.Context) error {
	if p.Pool == nil {
		return storage.ErrAlreadyInTx
	}

	if err := p.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("could not ping pg: %w", err)
	}

	return nil
}

// Commit commits the current transaction. It returns storage.ErrNotInTx if
// called when PgSQL is not in a transactional context.
func (p *PgSQL) Commit() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("could not commit tx: %w", err)
	}

	return nil
}

// Rollback aborts the current transaction. It returns storage.ErrNotInTx if
// called when PgSQL is not in a transactional context.
func (p *PgSQL) Rollback() error {
	tx, ok := p.DB.(*sql.Tx)
	if !ok {
		return storage.ErrNotInTx
	}

	if err := tx.Rollback(); err != nil {
		return fmt.Errorf("could not rollback tx: %w", err)
	}

	return nil
}

// Begin starts a new database transaction. If called while already inside a
// transaction, storage.ErrAlreadyInTx is returned.
func (p *PgSQL) Begin(ctx context.Context) (storage.TxStorage, error) {
	db, ok := p.DB.(*sql.DB)
	if !ok {
		return nil, storage.ErrAlreadyInTx
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not begin tx: %w", err)
	}

	return &PgSQL{
		DB:      tx,
		Builder: goqu.NewTx(dialect, tx),
	}, nil
}

// WithTx runs cb inside a transaction. The transaction is committed when cb
// returns nil and rolled back otherwise; cb's error is returned unchanged.
func (p *PgSQL) WithTx(ctx context.Context, cb func(storage storage.AllStorage) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}

	if err := cb(tx); err != nil {
		_ = tx.Rollback()

		return err
	}

	return tx.Commit()
}

// New creates a PostgreSQL storage backed by pgxpool, with a database/sql
// wrapper for goqu and goose.
func New(ctx context.Context, options Options) (*PgSQL, error) {
	cfg, err := pgxpool.ParseConfig(options.ConnString())
	if err != nil {
		return nil, fmt.Errorf("could not parse pgxpool config: %w", err)
	}
	if options.MaxOpenConnections > 0 {
		cfg.MaxConns = int32(options.MaxOpenConnections) //nolint: gosec
	}
	if options.MaxIdleConnections > 0 {
		cfg.MinConns = int32(options.MaxIdleConnections) //nolint: gosec
	}
	if options.ConnMaxLifetime > 0 {
		cfg.MaxConnLifetime = options.ConnMaxLifetime
	}
	if options.ConnMaxIdleTime > 0 {
		cfg.MaxConnIdleTime = options.ConnMaxIdleTime
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("could not create pgx pool: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)

	return &PgSQL{
		DB:      sqlDB,
		Builder: goqu.Dialect(dialect).DB(sqlDB),
		Pool:    pool,
	}, nil
}
