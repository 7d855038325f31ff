//go:build e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"roombook/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plaintext of every seeded user's password.
const TestPassword = "password123"

// hashed once per process; bcrypt is slow enough to matter in loops
var testPasswordHash string

func testHash(t *testing.T) string {
	t.Helper()
	if testPasswordHash == "" {
		hashed, err := password.Hash(TestPassword)
		require.NoError(t, err, "Failed to hash test password")
		testPasswordHash = hashed
	}
	return testPasswordHash
}

func CreateTestUser(t *testing.T, db *pgxpool.Pool, username, email, role string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO users (id, username, email, password_hash, first_name, last_name, role, is_active)
		VALUES ($1, $2, $3, $4, 'Test', 'User', $5, TRUE)`,
		id, username, email, testHash(t), role)
	require.NoError(t, err, "Failed to create test user")
	return id
}

func CreateTestRoom(t *testing.T, db *pgxpool.Pool, name string, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO rooms (name, location, capacity, amenities, image_urls)
		VALUES ($1, '2F North', $2, '{}', '{}')
		RETURNING id`,
		name, capacity).Scan(&id)
	require.NoError(t, err, "Failed to create test room")
	return id
}

func CreateTestBooking(t *testing.T, db *pgxpool.Pool, employeeID uuid.UUID, roomID int64, date time.Time, startTime, endTime, status string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO booking_requests (employee_id, employee_name, room_id, date, start_time, end_time, purpose, status)
		VALUES ($1, 'Test User', $2, $3, $4, $5, 'Seeded booking for tests', $6)
		RETURNING id`,
		employeeID, roomID, date.Format("2006-01-02"), startTime, endTime, status).Scan(&id)
	require.NoError(t, err, "Failed to create test booking")
	return id
}

func CountBookedForRoom(t *testing.T, db *pgxpool.Pool, roomID int64, date time.Time) int {
	t.Helper()

	var count int
	err := db.QueryRow(context.Background(), `
		SELECT count(*) FROM booking_requests
		WHERE room_id = $1 AND date = $2 AND status = 'booked'`,
		roomID, date.Format("2006-01-02")).Scan(&count)
	require.NoError(t, err, "Failed to count booked requests")
	return count
}

// ResetDB truncates all mutable tables between subtests.
func ResetDB(db *pgxpool.Pool) error {
	_, err := db.Exec(context.Background(), `
		TRUNCATE TABLE notification_jobs, notifications, booking_requests, rooms, users
		RESTART IDENTITY CASCADE`)
	return err
}
