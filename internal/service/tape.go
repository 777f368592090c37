package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/database/repository"
)

// TapeService appends finalized computations to the tape. A nil service, or
// one without a database, records nothing so the calculator keeps working
// with history disabled.
type TapeService struct {
	DB      *sql.DB
	History *repository.HistoryRepo
	// Keep bounds the tape length; zero keeps everything.
	Keep int
}

// NewTapeService builds a service over db.
func NewTapeService(db *sql.DB, keep int) *TapeService {
	return &TapeService{DB: db, History: repository.NewHistoryRepo(db), Keep: keep}
}

func (s *TapeService) enabled() bool {
	return s != nil && s.DB != nil && s.History != nil
}

// Record stores ev and trims the tape in one transaction.
func (s *TapeService) Record(ctx context.Context, ev calc.Evaluation) (repository.Entry, error) {
	e := repository.Entry{
		ID:        uuid.NewString(),
		Operator:  ev.Operator.String(),
		Left:      ev.Left,
		Right:     ev.Right,
		Result:    ev.Text,
		Chained:   ev.Chained,
		CreatedAt: database.Now(),
	}
	if !s.enabled() {
		return e, nil
	}
	err := database.WithTx(ctx, s.DB, func(tx *sql.Tx) error {
		repo := s.History.WithTx(tx)
		if err := repo.Insert(ctx, e); err != nil {
			return fmt.Errorf("insert tape entry: %w", err)
		}
		if _, err := repo.Trim(ctx, s.Keep); err != nil {
			return fmt.Errorf("trim tape: %w", err)
		}
		return nil
	})
	if err != nil {
		return repository.Entry{}, err
	}
	return e, nil
}

// Recent returns up to limit entries, newest first.
func (s *TapeService) Recent(ctx context.Context, limit int) ([]repository.Entry, error) {
	if !s.enabled() {
		return nil, nil
	}
	return s.History.Recent(ctx, limit)
}
