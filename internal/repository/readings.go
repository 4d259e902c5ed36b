package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

type readingRepository struct {
	db *sqlx.DB
}

func NewReadingRepository(db *sqlx.DB) ReadingRepository {
	return &readingRepository{db: db}
}

func (r *readingRepository) Latest(ctx context.Context, deviceID string) (domain.Reading, error) {
	query, args, err := buildLatestReadingQuery(deviceID)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var out domain.Reading
	err = withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &out, query, args...)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.Reading{}, domain.ErrNotFound
	case err != nil:
		logDBError(ctx, "readings.latest", err)
		return domain.Reading{}, fmt.Errorf("select latest reading for %q: %w", deviceID, err)
	}

	return out, nil
}

func (r *readingRepository) Insert(ctx context.Context, in domain.Reading) (domain.Reading, error) {
	query, args, err := buildInsertReadingQuery(in)
	if err != nil {
		return domain.Reading{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var out domain.Reading
	err = withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.QueryRowxContext(ctx, query, args...).StructScan(&out)
	})
	if err != nil {
		logDBError(ctx, "readings.insert", err)
		return domain.Reading{}, fmt.Errorf("insert reading: %w", err)
	}

	return out, nil
}
