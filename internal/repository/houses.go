package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

type houseRepository struct {
	db *sqlx.DB
}

func NewHouseRepository(db *sqlx.DB) HouseRepository {
	return &houseRepository{db: db}
}

func (r *houseRepository) Insert(ctx context.Context, in domain.NewHouse) (domain.House, error) {
	query, args, err := buildInsertHouseQuery(in)
	if err != nil {
		return domain.House{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var out domain.House
	err = withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.QueryRowxContext(ctx, query, args...).StructScan(&out)
	})
	if postgresError(err) == pgerrcode.UniqueViolation {
		return domain.House{}, fmt.Errorf("house for device %q: %w", in.DeviceID, domain.ErrAlreadyExists)
	}
	if err != nil {
		logDBError(ctx, "houses.insert", err)
		return domain.House{}, fmt.Errorf("insert house: %w", err)
	}

	return out, nil
}

func (r *houseRepository) Get(ctx context.Context, deviceID string) (domain.House, error) {
	query, args, err := buildHouseQuery(deviceID)
	if err != nil {
		return domain.House{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var out domain.House
	err = withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.GetContext(ctx, &out, query, args...)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.House{}, domain.ErrNotFound
	case err != nil:
		logDBError(ctx, "houses.get", err)
		return domain.House{}, fmt.Errorf("select house for %q: %w", deviceID, err)
	}

	return out, nil
}
