package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/logger"
)

var (
	ErrBuildingSQLQuery    = errors.New("error building SQL query")
	ErrAcquiringConnection = errors.New("error acquiring database connection")
)

type Repos struct {
	Readings ReadingRepository
	Commands CommandRepository
	Houses   HouseRepository
}

func New(db *sqlx.DB) *Repos {
	return &Repos{
		Readings: NewReadingRepository(db),
		Commands: NewCommandRepository(db),
		Houses:   NewHouseRepository(db),
	}
}

// withConn borrows one connection for the duration of fn and releases it on
// every exit path.
func withConn(ctx context.Context, db *sqlx.DB, fn func(conn *sqlx.Conn) error) error {
	conn, err := db.Connx(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrAcquiringConnection, err)
	}
	defer conn.Close()

	return fn(conn)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// errorClass labels a driver error for operators; callers never see it.
func errorClass(err error) string {
	code := postgresError(err)
	switch {
	case code == "":
		return "driver"
	case pgerrcode.IsConnectionException(code):
		return "connection"
	case pgerrcode.IsIntegrityConstraintViolation(code):
		return "constraint"
	case pgerrcode.IsDataException(code):
		return "data"
	default:
		return "postgres"
	}
}

func logDBError(ctx context.Context, op string, err error) {
	logger.FromContext(ctx).Error().
		Err(err).
		Str("op", op).
		Str("pg_code", postgresError(err)).
		Str("error_class", errorClass(err)).
		Msg("database operation failed")
}
