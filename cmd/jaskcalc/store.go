package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/service"
)

type store struct {
	db          *sql.DB
	tape        *service.TapeService
	maintenance *service.MaintenanceService
}

// openStore prepares the tape database: directory, migrations, connection.
func openStore(cfg config.Config) (*store, error) {
	path := cfg.Database.Path
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	if err := database.RunMigrations(path); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	return &store{
		db:          db,
		tape:        service.NewTapeService(db, cfg.History.Keep),
		maintenance: &service.MaintenanceService{DB: db},
	}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}
