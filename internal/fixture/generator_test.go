package fixture

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/database"
	"github.com/jask/jaskcalc/internal/service"
)

func TestRandomButtonsIsDeterministic(t *testing.T) {
	t.Parallel()

	a := RandomButtons(rand.New(rand.NewSource(1)), 50)
	b := RandomButtons(rand.New(rand.NewSource(1)), 50)
	require.Len(t, a, 50)
	require.Equal(t, a, b)
}

func TestSeedFillsTape(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "tape.db")
	require.NoError(t, database.RunMigrations(dbPath))
	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	tape := service.NewTapeService(db, 0)
	evs, err := Seed(ctx, tape, rand.New(rand.NewSource(3)), 5)
	require.NoError(t, err)
	require.Len(t, evs, 5)

	entries, err := tape.Recent(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 5)
	require.Equal(t, evs[4].Text, entries[0].Result)
}
