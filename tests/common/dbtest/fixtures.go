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
)

func CreateTestUser(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, name, email) VALUES ($1, $2, $3) ON CONFLICT (email) DO NOTHING",
		userID, name, email)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestBusiness(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	businessID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO businesses (id, owner_id, name) VALUES ($1, $2, $3)",
		businessID, ownerID, name)
	require.NoError(t, err)

	return businessID
}

func CreateTestOffering(t *testing.T, db DBLike, businessID uuid.UUID, name string, durationMinutes int) uuid.UUID {
	t.Helper()

	offeringID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx,
		"INSERT INTO offerings (id, business_id, name, price, duration_minutes) VALUES ($1, $2, $3, 25.00, $4)",
		offeringID, businessID, name, durationMinutes)
	require.NoError(t, err)

	return offeringID
}

// CreateTestSchedule provisions a week that is open every day 00:00-23:59
// with no breaks and no advance-booking limits, so reservation tests are
// independent of the wall-clock weekday they run on.
func CreateTestSchedule(t *testing.T, db DBLike, businessID uuid.UUID, autoConfirm bool) uuid.UUID {
	t.Helper()

	scheduleID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO schedule_settings (id, business_id, default_slot_duration_minutes, auto_confirm_appointments)
		VALUES ($1, $2, 30, $3)`,
		scheduleID, businessID, autoConfirm)
	require.NoError(t, err)

	for dow := 0; dow < 7; dow++ {
		_, err := db.Exec(ctx, `
			INSERT INTO working_days (schedule_id, day_of_week, open_time, close_time, day_off)
			VALUES ($1, $2, '00:00', '23:59', false)`,
			scheduleID, dow)
		require.NoError(t, err)
	}

	return scheduleID
}

func CreateTestReservation(t *testing.T, db DBLike, businessID, offeringID, userID uuid.UUID, startAt, endAt time.Time, status string) uuid.UUID {
	t.Helper()

	reservationID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO reservations (id, business_id, offering_id, user_id, start_at, end_at, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		reservationID, businessID, offeringID, userID, startAt, endAt, status)
	require.NoError(t, err)

	return reservationID
}

func CreateTestTimeOff(t *testing.T, db DBLike, scheduleID uuid.UUID, startAt, endAt time.Time, reason string) uuid.UUID {
	t.Helper()

	timeOffID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO time_off (id, schedule_id, start_at, end_at, reason)
		VALUES ($1, $2, $3, $4, $5)`,
		timeOffID, scheduleID, startAt, endAt, reason)
	require.NoError(t, err)

	return timeOffID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between subtests
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

	return nil
}
