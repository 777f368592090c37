package service

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
)

// MaintenanceService houses destructive actions surfaced through the TUI and CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes the tape and returns how many entries were removed. The schema
// is kept so the calculator can continue recording.
func (s *MaintenanceService) Reset(ctx context.Context) (int64, error) {
	if s == nil || s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var removed int64
	if err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		n, err := repository.NewHistoryRepo(s.DB).WithTx(tx).Clear(ctx)
		if err != nil {
			return fmt.Errorf("reset tape: %w", err)
		}
		removed = n
		return nil
	}); err != nil {
		return 0, err
	}
	if _, err := s.DB.ExecContext(ctx, "VACUUM"); err != nil {
		log.Printf("warn: vacuum after reset: %v", err)
	}
	return removed, nil
}
