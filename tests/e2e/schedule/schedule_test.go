//go:build e2e

package schedule_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	resdto "github.com/notfound999/reservations/internal/handler/dto/response"
	"github.com/notfound999/reservations/tests/common/authtest"
	"github.com/notfound999/reservations/tests/common/dbtest"
	commonhttp "github.com/notfound999/reservations/tests/common/httptest"
	"github.com/notfound999/reservations/tests/e2e"
)

type ScheduleE2ETestSuite struct {
	e2e.SharedSuite
}

func TestScheduleE2E(t *testing.T) {
	suite.Run(t, new(ScheduleE2ETestSuite))
}

func (s *ScheduleE2ETestSuite) seedSchedule() (businessID, scheduleID uuid.UUID, ownerToken string) {
	ownerID := dbtest.CreateTestUser(s.T(), s.DB, "Marta Silva", "marta@example.com")
	businessID = dbtest.CreateTestBusiness(s.T(), s.DB, ownerID, "Fade Factory")
	scheduleID = dbtest.CreateTestSchedule(s.T(), s.DB, businessID, true)
	ownerToken = authtest.TokenFor(s.T(), s.Config, ownerID)
	return businessID, scheduleID, ownerToken
}

func weekdayBody() []map[string]any {
	days := []string{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}
	body := make([]map[string]any, 0, len(days))
	for _, d := range days {
		entry := map[string]any{
			"day_of_week": d,
			"start_time":  "09:00",
			"end_time":    "18:00",
		}
		if d == "SUNDAY" || d == "SATURDAY" {
			entry["day_off"] = true
		}
		body = append(body, entry)
	}
	return body
}

func (s *ScheduleE2ETestSuite) TestSchedule() {
	s.Run("schedule is publicly readable", func() {
		businessID, _, _ := s.seedSchedule()

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/businesses/%s/schedule", businessID), nil, "")

		var view resdto.ScheduleResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		s.Equal(businessID, view.BusinessID)
		s.Len(view.WorkingDays, 7)
	})

	s.Run("owner reshapes the working week", func() {
		businessID, _, ownerToken := s.seedSchedule()

		minAdvance := 4
		body := map[string]any{
			"min_advance_booking_hours": minAdvance,
			"auto_confirm_appointments": false,
			"working_days":              weekdayBody(),
		}

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPut,
			fmt.Sprintf("/api/businesses/%s/schedule", businessID), body, ownerToken)

		var updated resdto.ScheduleResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &updated)
		s.Require().NotNil(updated.MinAdvanceBookingHours)
		s.Equal(minAdvance, *updated.MinAdvanceBookingHours)
		s.False(updated.AutoConfirmAppointments)

		for _, day := range updated.WorkingDays {
			switch day.DayOfWeek {
			case "SUNDAY", "SATURDAY":
				s.True(day.DayOff)
			default:
				s.False(day.DayOff)
				s.Equal("09:00", day.StartTime)
				s.Equal("18:00", day.EndTime)
			}
		}
	})

	s.Run("owner provisions the default week for a fresh business", func() {
		ownerID := dbtest.CreateTestUser(s.T(), s.DB, "Marta Silva", "marta@example.com")
		businessID := dbtest.CreateTestBusiness(s.T(), s.DB, ownerID, "Fade Factory")
		ownerToken := authtest.TokenFor(s.T(), s.Config, ownerID)

		path := fmt.Sprintf("/api/businesses/%s/schedule", businessID)
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, ownerToken)

		var created resdto.ScheduleResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Len(created.WorkingDays, 7)
		for _, day := range created.WorkingDays {
			switch day.DayOfWeek {
			case "SUNDAY", "SATURDAY":
				s.True(day.DayOff)
			default:
				s.False(day.DayOff)
			}
		}

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, ownerToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "Business already has a schedule")
	})

	s.Run("unknown business yields 404", func() {
		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/businesses/%s/schedule", uuid.New()), nil, "")

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Schedule not found")
	})
}

func (s *ScheduleE2ETestSuite) TestTimeOff() {
	s.Run("owner adds, lists and removes a time-off window", func() {
		businessID, _, ownerToken := s.seedSchedule()

		start := time.Now().UTC().AddDate(0, 0, 3).Truncate(time.Hour)
		body := map[string]any{
			"start_time": start.Format(time.RFC3339),
			"end_time":   start.Add(4 * time.Hour).Format(time.RFC3339),
			"reason":     "staff training",
		}

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/businesses/%s/time-off", businessID), body, ownerToken)

		var created resdto.TimeOffResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &created)
		s.Equal("staff training", created.Reason)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/businesses/%s/time-off", businessID), nil, "")

		var listed []resdto.TimeOffResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &listed)
		s.Require().Len(listed, 1)
		s.Equal(created.ID, listed[0].ID)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodDelete,
			fmt.Sprintf("/api/time-off/%s", created.ID), nil, ownerToken)
		s.Equal(http.StatusNoContent, w.Code)

		w = commonhttp.PerformRequest(s.T(), s.Router, http.MethodGet,
			fmt.Sprintf("/api/businesses/%s/time-off", businessID), nil, "")
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &listed)
		s.Empty(listed)
	})

	s.Run("window ending before it starts is rejected", func() {
		businessID, _, ownerToken := s.seedSchedule()

		start := time.Now().UTC().AddDate(0, 0, 3)
		body := map[string]any{
			"start_time": start.Format(time.RFC3339),
			"end_time":   start.Add(-time.Hour).Format(time.RFC3339),
		}

		w := commonhttp.PerformRequest(s.T(), s.Router, http.MethodPost,
			fmt.Sprintf("/api/businesses/%s/time-off", businessID), body, ownerToken)

		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "End time cannot be before start time")
	})
}
