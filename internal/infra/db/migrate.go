package db

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

const migrationsDir = "migrations"

func init() {
	goose.SetBaseFS(migrations)
}

// Migrate applies all pending migrations.
func Migrate(pool *pgxpool.Pool) error {
	return runGoose(pool, func(sqlDB *sql.DB) error {
		return goose.Up(sqlDB, migrationsDir)
	})
}

// Rollback reverts the most recent migration.
func Rollback(pool *pgxpool.Pool) error {
	return runGoose(pool, func(sqlDB *sql.DB) error {
		return goose.Down(sqlDB, migrationsDir)
	})
}

// Status prints applied and pending migrations through goose's logger.
func Status(pool *pgxpool.Pool) error {
	return runGoose(pool, func(sqlDB *sql.DB) error {
		return goose.Status(sqlDB, migrationsDir)
	})
}

func runGoose(pool *pgxpool.Pool, fn func(*sql.DB) error) error {
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}

	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := fn(sqlDB); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
