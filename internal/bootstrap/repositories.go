package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/TribalScore_Go/internal/database/postgres"
	"github.com/osse101/TribalScore_Go/internal/repository"
)

// Repositories holds every repository implementation the services use
type Repositories struct {
	Season   repository.Season
	Roster   repository.Roster
	Override repository.Override
	Price    repository.Price
	EventLog repository.EventLog
}

// InitializeRepositories creates the postgres repositories
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		Season:   postgres.NewSeasonRepository(dbPool),
		Roster:   postgres.NewRosterRepository(dbPool),
		Override: postgres.NewOverrideRepository(dbPool),
		Price:    postgres.NewPriceRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
