// Command setup prepares the database: it creates it when missing
// (dropping it first with -reset), applies the embedded migrations and seeds
// the default scoring configuration.
//
//	go run ./cmd/setup            # create + migrate up + seed
//	go run ./cmd/setup -reset     # drop, create, migrate, seed
//	go run ./cmd/setup -down      # roll back the latest migration
//	go run ./cmd/setup -status    # print migration status
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/osse101/TribalScore_Go/internal/bootstrap"
	"github.com/osse101/TribalScore_Go/internal/config"
	"github.com/osse101/TribalScore_Go/internal/database"
	"github.com/osse101/TribalScore_Go/internal/database/postgres"
	"github.com/osse101/TribalScore_Go/internal/season"
)

const setupTimeout = 2 * time.Minute

func main() {
	reset := flag.Bool("reset", false, "drop and recreate the database first")
	down := flag.Bool("down", false, "roll back the most recent migration and exit")
	status := flag.Bool("status", false, "print migration status and exit")
	seed := flag.Bool("seed", true, "store default scoring configs when none exist")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	if !*down && !*status {
		if err := ensureDatabase(ctx, cfg, *reset); err != nil {
			log.Fatalf("Failed to prepare database: %v", err)
		}
	}

	pool, err := database.NewPool(ctx, database.PoolConfig{
		ConnString:      cfg.GetDBConnString(),
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxConnIdleTime,
		MaxConnLifetime: cfg.DBMaxConnLifetime,
		ApplicationName: cfg.ServiceName,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	switch {
	case *status:
		if err := database.MigrationStatus(ctx, pool); err != nil {
			log.Fatalf("Failed to read migration status: %v", err)
		}
		return
	case *down:
		if err := database.MigrateDown(ctx, pool); err != nil {
			log.Fatalf("Failed to roll back migration: %v", err)
		}
		log.Println("Rolled back one migration.")
		return
	}

	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("Failed to migrate: %v", err)
	}
	log.Println("Migrations applied.")

	if *seed {
		svc := season.NewService(postgres.NewSeasonRepository(pool), nil)
		if _, err := bootstrap.SyncScoringDefaults(ctx, cfg.ScoringConfigPath, svc); err != nil {
			log.Fatalf("Failed to seed scoring configuration: %v", err)
		}
		log.Println("Scoring configuration seeded.")
	}
}

// ensureDatabase connects to the server's postgres database and creates
// cfg.DBName when it does not exist, dropping it first when reset is set
func ensureDatabase(ctx context.Context, cfg *config.Config, reset bool) error {
	serverConn := fmt.Sprintf("postgres://%s:%s@%s:%s/postgres?sslmode=disable",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort)
	conn, err := pgx.Connect(ctx, serverConn)
	if err != nil {
		return fmt.Errorf("connect to server: %w", err)
	}
	defer conn.Close(ctx)

	name := pgx.Identifier{cfg.DBName}.Sanitize()

	if reset {
		log.Printf("Dropping database %s...", cfg.DBName)
		if _, err := conn.Exec(ctx, `
			SELECT pg_terminate_backend(pid)
			FROM pg_stat_activity
			WHERE datname = $1 AND pid <> pg_backend_pid()`, cfg.DBName); err != nil {
			log.Printf("Warning: failed to terminate connections: %v", err)
		}
		if _, err := conn.Exec(ctx, "DROP DATABASE IF EXISTS "+name); err != nil {
			return fmt.Errorf("drop database: %w", err)
		}
	}

	var exists bool
	if err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists); err != nil {
		return fmt.Errorf("check database: %w", err)
	}
	if exists {
		log.Printf("Database %s already exists.", cfg.DBName)
		return nil
	}

	log.Printf("Creating database %s...", cfg.DBName)
	if _, err := conn.Exec(ctx, "CREATE DATABASE "+name); err != nil {
		return fmt.Errorf("create database: %w", err)
	}
	return nil
}
