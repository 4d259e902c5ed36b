package service

import (
	"github.com/jmoiron/sqlx"

	"github.com/ANIKETSHETTY47/telemetry-gateway/internal/repository"
)

type Services struct {
	Readings ReadingService
	Commands CommandService
	Houses   HouseService
}

// New wires the services over db. publisher may be nil when MQTT is disabled.
func New(db *sqlx.DB, publisher CommandPublisher) *Services {
	repos := repository.New(db)
	return &Services{
		Readings: NewReadingService(repos.Readings),
		Commands: NewCommandService(repos.Commands, publisher),
		Houses:   NewHouseService(repos.Houses, repos.Readings),
	}
}
