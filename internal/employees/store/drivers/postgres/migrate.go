package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/staffdb/internal/employees/store/drivers/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/stdlib"
)

// ApplyMigrations applies any pending embedded migrations. golang-migrate
// needs a database/sql handle, so one is borrowed from the pool for the
// duration of the run.
func (s *Store) ApplyMigrations(ctx context.Context) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	db := stdlib.OpenDBFromPool(s.pool)

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		_ = db.Close()
		return err
	}

	source, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		_ = driver.Close()
		return err
	}

	instance, err := migrate.NewWithInstance("iofs", source, "pgx5", driver)
	if err != nil {
		_ = driver.Close()
		return err
	}
	defer func() {
		srcErr, dbErr := instance.Close()
		if err == nil {
			err = errors.Join(srcErr, dbErr)
		}
	}()

	if err := instance.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
