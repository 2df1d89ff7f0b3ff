//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"seatslabs/internal/pkg/password"
)

// Hashing once per run keeps user creation cheap while still storing a
// verifiable credential.
var testPasswordHash = sync.OnceValue(func() string {
	hash, err := password.Hash("password123")
	if err != nil {
		panic(err)
	}
	return hash
})

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role)
		VALUES ($1, $2, $3, 'Test', 'User', '+94771234567', $4)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash(), role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestVehicle(t *testing.T, db DBLike, customerID uuid.UUID, registration string) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO vehicles (id, customer_id, registration_no, make, model, year)
		VALUES ($1, $2, $3, 'Toyota', 'Corolla', 2021)
		ON CONFLICT (registration_no) DO NOTHING`,
		vehicleID, customerID, registration)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM vehicles WHERE registration_no = $1", registration).Scan(&vehicleID)
	}

	return vehicleID
}

func CreateTestService(t *testing.T, db DBLike, name string, priceCents int64) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO services (id, name, description, base_price_cents, duration_min)
		VALUES ($1, $2, '', $3, 60)`,
		serviceID, name, priceCents)
	require.NoError(t, err)

	return serviceID
}

func CreateTestTechnician(t *testing.T, db DBLike, email string, available bool) uuid.UUID {
	t.Helper()

	userID := CreateTestUser(t, db, email, "technician")
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO technicians (id, name, specialty, is_available)
		VALUES ($1, 'Test Technician', 'general', $2)
		ON CONFLICT (id) DO UPDATE SET is_available = $2`,
		userID, available)
	require.NoError(t, err)

	return userID
}

func CreateTestSlot(t *testing.T, db DBLike, date time.Time, startHour int, maxCapacity int32) uuid.UUID {
	t.Helper()

	slotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO time_slots (id, slot_date, start_time, end_time, max_capacity)
		VALUES ($1, $2, make_interval(hours => $3)::time, make_interval(hours => $3 + 1)::time, $4)`,
		slotID, date, startHour, maxCapacity)
	require.NoError(t, err)

	return slotID
}

// inserts basic reference data needed by tests
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (id, name, description, base_price_cents, duration_min)
		VALUES (gen_random_uuid(), 'Default Service', '', 5000, 60)
		ON CONFLICT DO NOTHING;
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
