package infra

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxConnections = 50

// NewPostgresConnectionPool tags every connection with instanceId (read by
// the row-change triggers), so this instance can recognize and drop its own
// NOTIFY round-trips.
func NewPostgresConnectionPool(ctx context.Context, connectionString, instanceId string) (*pgxpool.Pool, error) {
	cfg, err := pgxpool.ParseConfig(connectionString)
	if err != nil {
		return nil, errors.Wrap(err, "parse postgres connection string")
	}
	cfg.MaxConns = maxConnections
	cfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		_, err := conn.Exec(ctx,
			"SELECT set_config('replyflow.instance_id', $1, false)", instanceId)
		return err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "create postgres connection pool")
	}
	return pool, nil
}
