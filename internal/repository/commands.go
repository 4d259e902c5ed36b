package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

type commandRepository struct {
	db *sqlx.DB
}

func NewCommandRepository(db *sqlx.DB) CommandRepository {
	return &commandRepository{db: db}
}

func (r *commandRepository) Insert(ctx context.Context, in domain.NewCommand) (domain.Command, error) {
	query, args, err := buildInsertCommandQuery(in)
	if err != nil {
		return domain.Command{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var out domain.Command
	err = withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.QueryRowxContext(ctx, query, args...).StructScan(&out)
	})
	if err != nil {
		logDBError(ctx, "commands.insert", err)
		return domain.Command{}, fmt.Errorf("insert command: %w", err)
	}

	return out, nil
}

func (r *commandRepository) Pending(ctx context.Context, deviceID string) ([]domain.Command, error) {
	query, args, err := buildPendingCommandsQuery(deviceID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	out := []domain.Command{}
	err = withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		return conn.SelectContext(ctx, &out, query, args...)
	})
	if err != nil {
		logDBError(ctx, "commands.pending", err)
		return nil, fmt.Errorf("select pending commands: %w", err)
	}

	return out, nil
}

func (r *commandRepository) MarkExecuted(ctx context.Context, deviceID string, commandID int64) error {
	query, args, err := buildMarkExecutedQuery(deviceID, commandID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var affected int64
	err = withConn(ctx, r.db, func(conn *sqlx.Conn) error {
		res, err := conn.ExecContext(ctx, query, args...)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		logDBError(ctx, "commands.mark_executed", err)
		return fmt.Errorf("mark command %d executed: %w", commandID, err)
	}

	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
