package database

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/fruit_shop_app/migrations"
	migrate "github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// RunPostgresMigrations applies the embedded postgres migrations to databaseURL.
func RunPostgresMigrations(databaseURL string) error {
	// A separate database/sql handle over the pgx stdlib driver, closed by migrate.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	if err := migrationDB.Ping(); err != nil {
		migrationDB.Close()
		return fmt.Errorf("ping migration database: %w", err)
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		migrationDB.Close()
		return fmt.Errorf("create postgres driver: %w", err)
	}
	return runMigrations(migrations.PostgresDir, "postgres", driver)
}

// RunSQLiteMigrations applies the embedded sqlite migrations to the database file at dbPath.
func RunSQLiteMigrations(dbPath string) error {
	// Separate connection so closing the migrator leaves the application's handle open.
	migrationDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}

	driver, err := sqlite.WithInstance(migrationDB, &sqlite.Config{})
	if err != nil {
		migrationDB.Close()
		return fmt.Errorf("create sqlite driver: %w", err)
	}
	return runMigrations(migrations.SQLiteDir, "sqlite", driver)
}

func runMigrations(dir, databaseName string, driver migratedb.Driver) error {
	src, err := iofs.New(migrations.FS, dir)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, databaseName, driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("create migrate instance: %w", err)
	}

	upErr := m.Up()
	sourceErr, dbErr := m.Close()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", upErr)
	}
	if sourceErr != nil {
		return fmt.Errorf("migration source error: %w", sourceErr)
	}
	if dbErr != nil {
		return fmt.Errorf("migration database error: %w", dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		slog.Info("No new migrations to apply.", slog.String("database", databaseName))
	} else {
		slog.Info("Database migrations applied successfully.", slog.String("database", databaseName))
	}
	return nil
}
