package db

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Open connects to postgres and verifies the connection before returning.
func Open(ctx context.Context, dsn string) (*bun.DB, error) {
	connector := pgdriver.NewConnector(pgdriver.WithDSN(dsn))
	sqlDB := sql.OpenDB(connector)
	bunDB := bun.NewDB(sqlDB, pgdialect.New())

	if err := bunDB.PingContext(ctx); err != nil {
		_ = bunDB.Close()
		return nil, errors.Wrap(err, "db.Open.Ping: ")
	}
	return bunDB, nil
}
