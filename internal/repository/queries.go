package repository

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/domain"
)

const (
	readingsTable = "device_data"
	commandsTable = "device_commands"
	housesTable   = "houses"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var readingColumns = []string{
	"id",
	"device_id",
	"voltage",
	"current1",
	"current2",
	"energy1",
	"energy2",
	"relay1_status",
	"relay2_status",
	"timestamp",
}

var commandColumns = []string{
	"id",
	"device_id",
	"command_type",
	"parameters",
	"status",
	"created_at",
	"executed_at",
}

var houseColumns = []string{
	"id",
	"device_id",
	"name",
	"address",
	"created_at",
}

func returning(cols []string) string {
	return "RETURNING " + strings.Join(cols, ", ")
}

// buildLatestReadingQuery picks the newest row; id breaks timestamp ties.
func buildLatestReadingQuery(deviceID string) (string, []any, error) {
	return psql.
		Select(readingColumns...).
		From(readingsTable).
		Where(sq.Eq{"device_id": deviceID}).
		OrderBy("timestamp DESC", "id DESC").
		Limit(1).
		ToSql()
}

// id and timestamp are left to the column defaults.
func buildInsertReadingQuery(r domain.Reading) (string, []any, error) {
	return psql.
		Insert(readingsTable).
		Columns("device_id", "voltage", "current1", "current2", "energy1", "energy2", "relay1_status", "relay2_status").
		Values(r.DeviceID, r.Voltage, r.Current1, r.Current2, r.Energy1, r.Energy2, r.Relay1Status, r.Relay2Status).
		Suffix(returning(readingColumns)).
		ToSql()
}

func buildInsertCommandQuery(c domain.NewCommand) (string, []any, error) {
	return psql.
		Insert(commandsTable).
		Columns("device_id", "command_type", "parameters").
		Values(c.DeviceID, c.CommandType, c.Parameters).
		Suffix(returning(commandColumns)).
		ToSql()
}

func buildPendingCommandsQuery(deviceID string) (string, []any, error) {
	q := psql.
		Select(commandColumns...).
		From(commandsTable).
		Where(sq.Eq{"status": domain.CommandPending})

	if deviceID != "" {
		q = q.Where(sq.Eq{"device_id": deviceID})
	}

	return q.OrderBy("created_at", "id").ToSql()
}

func buildMarkExecutedQuery(deviceID string, commandID int64) (string, []any, error) {
	return psql.
		Update(commandsTable).
		Set("status", domain.CommandExecuted).
		Set("executed_at", sq.Expr("clock_timestamp()")).
		Where(sq.Eq{"id": commandID}).
		Where(sq.Eq{"device_id": deviceID}).
		Where(sq.Eq{"status": domain.CommandPending}).
		ToSql()
}

func buildInsertHouseQuery(h domain.NewHouse) (string, []any, error) {
	return psql.
		Insert(housesTable).
		Columns("device_id", "name", "address").
		Values(h.DeviceID, h.Name, h.Address).
		Suffix(returning(houseColumns)).
		ToSql()
}

func buildHouseQuery(deviceID string) (string, []any, error) {
	return psql.
		Select(houseColumns...).
		From(housesTable).
		Where(sq.Eq{"device_id": deviceID}).
		ToSql()
}
