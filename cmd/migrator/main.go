package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"net/url"

	"github.com/YusovID/defect-tracker/internal/config"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type MigrationCfg struct {
	DatabaseURL     string
	MigrationsPath  string
	MigrationsTable string
}

func main() {
	migrationsPath := flag.String("migrations-path", "./migrations", "directory with *.sql migrations")
	migrationsTable := flag.String("migrations-table", "schema_migrations", "table recording the applied version")
	steps := flag.Int("steps", 0, "apply (or with down, revert) only this many migrations")
	flag.Parse()

	migration, err := Load(*migrationsPath, *migrationsTable)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	m, err := migrate.New("file://"+migration.MigrationsPath, migration.DatabaseURL)
	if err != nil {
		log.Fatalf("can't create new migration: %v", err)
	}
	defer m.Close()

	switch cmd := flag.Arg(0); cmd {
	case "down":
		if err := down(m, *steps); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations rolled back successfully")
	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("can't read version: %v", err)
		}

		fmt.Printf("version %d (dirty: %t)\n", version, dirty)
	case "", "up":
		if err := up(m, *steps); err != nil {
			log.Fatal(err)
		}

		fmt.Println("migrations applied successfully")
	default:
		log.Fatalf("unknown command %q, expected up, down or version", cmd)
	}
}

// Load reads the service config from CONFIG_PATH and derives the database URL
// the migrations run against.
func Load(migrationsPath, migrationsTable string) (*MigrationCfg, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbURL, err := url.Parse(cfg.Postgres.DSN())
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}

	q := dbURL.Query()
	q.Set("x-migrations-table", migrationsTable)
	dbURL.RawQuery = q.Encode()

	return &MigrationCfg{
		DatabaseURL:     dbURL.String(),
		MigrationsPath:  migrationsPath,
		MigrationsTable: migrationsTable,
	}, nil
}

func up(m *migrate.Migrate, steps int) error {
	var err error
	if steps > 0 {
		err = m.Steps(steps)
	} else {
		err = m.Up()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("no new migrations to apply")
			return nil
		}

		return fmt.Errorf("can't do migrations: %w", err)
	}

	return nil
}

func down(m *migrate.Migrate, steps int) error {
	var err error
	if steps > 0 {
		err = m.Steps(-steps)
	} else {
		err = m.Down()
	}

	if err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("no migrations to roll back")
		}

		return fmt.Errorf("can't down migrations: %w", err)
	}

	return nil
}
