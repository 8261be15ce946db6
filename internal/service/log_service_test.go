package service

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"carbon-tracker/internal/domain"
	"carbon-tracker/internal/emissions"
	"carbon-tracker/internal/repository/sqlite"
)

func newTestLogService(t *testing.T) (LogService, func(email, username string) *domain.User) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	logRepo := sqlite.NewLogRepository(db)
	require.NoError(t, logRepo.Init(ctx))

	users := NewUserService(userRepo, 4)
	logs := NewLogService(logRepo, emissions.NewEngine(emissions.DefaultFactors()))

	mkUser := func(email, username string) *domain.User {
		user, err := users.Register(ctx, email, username, "password1")
		require.NoError(t, err)
		return user
	}
	return logs, mkUser
}

func TestLogService_AppendComputesAndStores(t *testing.T) {
	ctx := context.Background()
	logs, mkUser := newTestLogService(t)
	owner := mkUser("a@example.com", "alice")

	entry, err := logs.Append(ctx, owner.ID, LogInputs{
		Date:           "2024-05-01",
		TravelKm:       10,
		TravelMode:     "car",
		ElectricityKwh: 5,
		Diet:           "mixed",
	})
	require.NoError(t, err)
	require.Positive(t, entry.ID)
	require.Equal(t, owner.ID, entry.UserID)
	require.Equal(t, "2024-05-01", entry.Date)
	require.Equal(t, 2.10, entry.TravelKg)
	require.Equal(t, 4.10, entry.ElectricityKg)
	require.Equal(t, 3.0, entry.FoodKg)
	require.Equal(t, 9.20, entry.TotalKg)

	// stored values match what Append returned
	listed, err := logs.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, entry.ID, listed[0].ID)
	require.Equal(t, entry.TotalKg, listed[0].TotalKg)
}

func TestLogService_AppendRequiresOwner(t *testing.T) {
	ctx := context.Background()
	logs, _ := newTestLogService(t)

	_, err := logs.Append(ctx, "", LogInputs{TravelMode: "car"})
	require.Error(t, err)
}

func TestLogService_ListIsOwnerScoped(t *testing.T) {
	ctx := context.Background()
	logs, mkUser := newTestLogService(t)
	alice := mkUser("a@example.com", "alice")
	bob := mkUser("b@example.com", "bob")

	_, err := logs.Append(ctx, bob.ID, LogInputs{Date: "before", TravelMode: "bus", TravelKm: 5})
	require.NoError(t, err)
	_, err = logs.Append(ctx, alice.ID, LogInputs{Date: "mine", TravelMode: "walk"})
	require.NoError(t, err)
	_, err = logs.Append(ctx, bob.ID, LogInputs{Date: "after", TravelMode: "bus", TravelKm: 7})
	require.NoError(t, err)

	mine, err := logs.List(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	require.Equal(t, "mine", mine[0].Date)

	theirs, err := logs.List(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, theirs, 2)
	require.Equal(t, "before", theirs[0].Date)
	require.Equal(t, "after", theirs[1].Date)
}

func TestLogService_ListEmptyForFreshUser(t *testing.T) {
	ctx := context.Background()
	logs, mkUser := newTestLogService(t)
	owner := mkUser("a@example.com", "alice")

	entries, err := logs.List(ctx, owner.ID)
	require.NoError(t, err)
	require.Empty(t, entries)
}
