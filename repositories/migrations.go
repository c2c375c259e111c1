package repositories

import (
	"database/sql"
	"embed"
	"log/slog"

	"github.com/cockroachdb/errors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

func RunMigrations(connectionString string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", connectionString)
	if err != nil {
		return errors.Wrap(err, "unable to connect to database")
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return errors.Wrap(err, "unable to ping database")
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	logger.Info("running database migrations")
	if err := goose.Up(db, "migrations"); err != nil {
		return errors.Wrap(err, "goose.Up failed")
	}
	return nil
}
