package repository

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafaelqm/barber-agenda/internal/database"
	"github.com/rafaelqm/barber-agenda/internal/model"
)

// setupDB connects to the database named by the DB_* variables, or
// skips the test when they are absent so the suite stays runnable
// without MySQL.
func setupDB(t *testing.T) *AppointmentRepo {
	t.Helper()
	_ = godotenv.Load("../../.env")
	user, host, port, name := os.Getenv("DB_USER"), os.Getenv("DB_HOST"), os.Getenv("DB_PORT"), os.Getenv("DB_NAME")
	if user == "" || host == "" || port == "" || name == "" {
		t.Skip("DB_USER/DB_HOST/DB_PORT/DB_NAME not set")
	}
	db, err := database.Open(user, os.Getenv("DB_PASS"), host, port, name)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewAppointmentRepo(db)
}

// createTestUser inserts a throwaway owner account and schedules its
// removal; the users FK cascades to appointments and refresh tokens.
func createTestUser(t *testing.T, r *AppointmentRepo, tag string) uint64 {
	t.Helper()
	email := fmt.Sprintf("%s-%d@test.local", tag, time.Now().UnixNano())
	uid, err := NewUserRepo(r.db).Create(context.Background(), email, "s3nha-forte", "OWNER", 4)
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = r.db.Exec("DELETE FROM users WHERE id=?", uid)
	})
	return uid
}

func testAppointment(userID uint64) model.Appointment {
	return model.Appointment{
		Date:       time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
		Time:       "14:30",
		Type:       "social",
		Attendant:  "Marcos",
		PriceCents: 5000,
		Payment:    model.PaymentPix,
		Status:     model.StatusScheduled,
		UserID:     userID,
	}
}

// A row owned by one user must be invisible to every other user:
// reads, updates and deletes against someone else's id all come back
// as ErrNotFound and leave the row intact for its owner.
func TestAppointmentOwnershipScoping(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, "owner")
	intruder := createTestUser(t, repo, "intruder")

	a := testAppointment(owner)
	require.NoError(t, repo.Create(ctx, &a))
	require.NotZero(t, a.ID)

	// reads
	_, err := repo.GetByID(ctx, a.ID, intruder)
	assert.ErrorIs(t, err, ErrNotFound)

	// updates
	stolen := a
	stolen.UserID = intruder
	stolen.Attendant = "Hacker"
	assert.ErrorIs(t, repo.Update(ctx, &stolen), ErrNotFound)

	// deletes
	assert.ErrorIs(t, repo.Delete(ctx, a.ID, intruder), ErrNotFound)

	// the row survives untouched for its owner
	got, err := repo.GetByID(ctx, a.ID, owner)
	require.NoError(t, err)
	assert.Equal(t, "Marcos", got.Attendant)

	// and the intruder's listing never shows it
	list, err := repo.ListByUser(ctx, intruder)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestAppointmentDeleteByOwner(t *testing.T) {
	repo := setupDB(t)
	ctx := context.Background()

	owner := createTestUser(t, repo, "owner")
	a := testAppointment(owner)
	require.NoError(t, repo.Create(ctx, &a))

	require.NoError(t, repo.Delete(ctx, a.ID, owner))
	// second delete finds nothing
	assert.ErrorIs(t, repo.Delete(ctx, a.ID, owner), ErrNotFound)
	_, err := repo.GetByID(ctx, a.ID, owner)
	assert.ErrorIs(t, err, ErrNotFound)
}
