package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

var (
	ErrConnectFailed = errors.New("database connect failed")
	ErrMigrateFailed = errors.New("database migration failed")
)

type Config struct {
	ConnString     string
	MigrationsPath string
}

type DB struct {
	connString     string
	migrationsPath string
	pool           *pgxpool.Pool
}

func (db *DB) Migrate(ctx context.Context) error {
	const fn = "DB:Migrate"
	slog.InfoContext(ctx, "Running device directory migrations...", "path", db.migrationsPath)
	m, err := migrate.New(
		"file://"+db.migrationsPath,
		db.connString,
	)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrMigrateFailed, err)
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s:%w:%w", fn, ErrMigrateFailed, err)
	}
	return nil
}

// Init connects to the device directory and brings its schema up to date.
func Init(ctx context.Context, cfg Config) (*DB, error) {
	const fn = "DB:Init"
	pool, err := pgxpool.Connect(ctx, cfg.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrConnectFailed, err)
	}

	db := &DB{
		pool:           pool,
		connString:     cfg.ConnString,
		migrationsPath: cfg.MigrationsPath,
	}
	if err := db.Migrate(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return db, nil
}

func (db *DB) Close() {
	db.pool.Close()
}
