//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/handler/api"
	resdto "github.com/notfound999/reservations/internal/handler/dto/response"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/queries"
	"github.com/notfound999/reservations/tests/common/builder"
	"github.com/notfound999/reservations/tests/common/httptest"
	commandsmock "github.com/notfound999/reservations/tests/mock/commands"
	queriesmock "github.com/notfound999/reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ScheduleHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockCtrl        *gomock.Controller
	mockCommands    *commandsmock.MockScheduleCommands
	mockTimeOffCmds *commandsmock.MockTimeOffCommands
	mockQueries     *queriesmock.MockScheduleQueries
	handler         *api.ScheduleHandler
}

func (s *ScheduleHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockScheduleCommands(s.mockCtrl)
	s.mockTimeOffCmds = commandsmock.NewMockTimeOffCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockScheduleQueries(s.mockCtrl)
	s.handler = api.NewScheduleHandler(s.mockCommands, s.mockTimeOffCmds, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", uuid.New())
		c.Next()
	}

	s.router.GET("/businesses/:businessId/schedule", s.handler.Get)
	s.router.POST("/businesses/:businessId/schedule", authMiddleware, s.handler.CreateDefault)
	s.router.PUT("/businesses/:businessId/schedule", authMiddleware, s.handler.Update)
	s.router.GET("/businesses/:businessId/time-off", s.handler.ListTimeOff)
	s.router.POST("/businesses/:businessId/time-off", authMiddleware, s.handler.AddTimeOff)
	s.router.DELETE("/time-off/:id", authMiddleware, s.handler.DeleteTimeOff)
}

func (s *ScheduleHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestScheduleHandlerSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestGet() {
	view := builder.NewScheduleBuilder().BuildView()
	url := "/businesses/" + view.BusinessID.String() + "/schedule"

	s.Run("success: returns the weekly configuration", func() {
		s.mockQueries.EXPECT().GetByBusiness(gomock.Any(), view.BusinessID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.BusinessID, body.BusinessID)
		s.Len(body.WorkingDays, 7)
		s.Equal("SUNDAY", body.WorkingDays[0].DayOfWeek)
		s.Equal("09:00", body.WorkingDays[0].StartTime)
	})

	s.Run("error: 404 when no schedule exists", func() {
		s.mockQueries.EXPECT().GetByBusiness(gomock.Any(), view.BusinessID).
			Return(nil, errs.ErrScheduleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Schedule not found")
	})

	s.Run("error: 400 on malformed business id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/businesses/xyz/schedule", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid business id")
	})
}

// ================================================================================
// TestCreateDefault
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestCreateDefault() {
	view := builder.NewScheduleBuilder().BuildView()
	url := "/businesses/" + view.BusinessID.String() + "/schedule"

	s.Run("success: provisions the standard week", func() {
		s.mockCommands.EXPECT().
			CreateDefaultSchedule(gomock.Any(), view.BusinessID).
			Return(view.ID, nil).Times(1)
		s.mockQueries.EXPECT().GetByBusiness(gomock.Any(), view.BusinessID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")

		var got resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &got)
		s.Equal(view.BusinessID, got.BusinessID)
		s.Len(got.WorkingDays, 7)
	})

	s.Run("error: 409 when the business already has a schedule", func() {
		s.mockCommands.EXPECT().
			CreateDefaultSchedule(gomock.Any(), view.BusinessID).
			Return(uuid.Nil, errs.ErrScheduleExists).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Business already has a schedule")
	})

	s.Run("error: 404 when the business does not exist", func() {
		s.mockCommands.EXPECT().
			CreateDefaultSchedule(gomock.Any(), view.BusinessID).
			Return(uuid.Nil, errs.ErrBusinessNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Business not found")
	})
}

// ================================================================================
// TestUpdate
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestUpdate() {
	view := builder.NewScheduleBuilder().BuildView()
	url := "/businesses/" + view.BusinessID.String() + "/schedule"

	validBody := map[string]any{
		"auto_confirm_appointments": false,
		"working_days": []map[string]any{
			{"day_of_week": "SUNDAY", "day_off": true},
			{"day_of_week": "MONDAY", "start_time": "08:00", "end_time": "16:00"},
			{"day_of_week": "TUESDAY", "start_time": "08:00", "end_time": "16:00"},
			{"day_of_week": "WEDNESDAY", "start_time": "08:00", "end_time": "16:00"},
			{"day_of_week": "THURSDAY", "start_time": "08:00", "end_time": "16:00", "break_start": "12:00", "break_end": "13:00"},
			{"day_of_week": "FRIDAY", "start_time": "08:00", "end_time": "16:00"},
			{"day_of_week": "SATURDAY", "day_off": true},
		},
	}

	s.Run("success: returns the updated schedule", func() {
		s.mockCommands.EXPECT().UpdateSchedule(gomock.Any(), view.BusinessID, gomock.Any()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "bearer-token")

		var body resdto.ScheduleResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("error: 400 on unknown weekday name", func() {
		bad := map[string]any{
			"working_days": []map[string]any{
				{"day_of_week": "FUNDAY", "start_time": "08:00", "end_time": "16:00"},
			},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid working day configuration")
	})

	s.Run("error: 400 on malformed clock time", func() {
		bad := map[string]any{
			"working_days": []map[string]any{
				{"day_of_week": "MONDAY", "start_time": "8am", "end_time": "16:00"},
			},
		}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid working day configuration")
	})

	s.Run("error: 400 when domain validation rejects the week", func() {
		s.mockCommands.EXPECT().UpdateSchedule(gomock.Any(), view.BusinessID, gomock.Any()).
			Return(nil, errs.Mark(schedule.ErrOpenNotBeforeClose, errs.ErrInvalidWorkingDay)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid working day configuration")
	})

	s.Run("error: 404 when the business has no schedule", func() {
		s.mockCommands.EXPECT().UpdateSchedule(gomock.Any(), view.BusinessID, gomock.Any()).
			Return(nil, errs.ErrScheduleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, validBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Schedule not found")
	})
}

// ================================================================================
// TestTimeOff
// ================================================================================

func (s *ScheduleHandlerTestSuite) TestListTimeOff() {
	businessID := uuid.New()
	url := "/businesses/" + businessID.String() + "/time-off"

	s.Run("success: returns blocks", func() {
		start := time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
		views := []*queries.TimeOffView{
			{ID: uuid.New(), StartAt: start, EndAt: start.AddDate(0, 0, 3), Reason: "holiday"},
		}
		s.mockQueries.EXPECT().ListTimeOff(gomock.Any(), businessID).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var body []resdto.TimeOffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 1)
		s.Equal("holiday", body[0].Reason)
	})
}

func (s *ScheduleHandlerTestSuite) TestAddTimeOff() {
	businessID := uuid.New()
	url := "/businesses/" + businessID.String() + "/time-off"

	reqBody := map[string]any{
		"start_time": "2026-10-01T00:00:00Z",
		"end_time":   "2026-10-04T00:00:00Z",
		"reason":     "renovation",
	}

	s.Run("success: returns 201 with the created block", func() {
		id := uuid.New()
		s.mockTimeOffCmds.EXPECT().AddTimeOff(gomock.Any(), businessID, gomock.Any()).
			Return(id, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.TimeOffResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(id, body.ID)
		s.Equal("renovation", body.Reason)
		s.Equal(time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC), body.StartTime.UTC())
	})

	s.Run("error: 400 when the interval is inverted", func() {
		// The command marks the domain error rather than returning the bare
		// sentinel; the handler must still map it to 400.
		s.mockTimeOffCmds.EXPECT().AddTimeOff(gomock.Any(), businessID, gomock.Any()).
			Return(uuid.Nil, errs.Mark(schedule.ErrTimeOffOrder, errs.ErrInvalidTimeOff)).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "End time cannot be before start time")
	})

	s.Run("error: 404 when the business has no schedule", func() {
		s.mockTimeOffCmds.EXPECT().AddTimeOff(gomock.Any(), businessID, gomock.Any()).
			Return(uuid.Nil, errs.ErrScheduleNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Schedule not found")
	})
}

func (s *ScheduleHandlerTestSuite) TestDeleteTimeOff() {
	id := uuid.New()
	url := "/time-off/" + id.String()

	s.Run("success: returns 204", func() {
		s.mockTimeOffCmds.EXPECT().DeleteTimeOff(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when the block does not exist", func() {
		s.mockTimeOffCmds.EXPECT().DeleteTimeOff(gomock.Any(), id).
			Return(errs.ErrTimeOffNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Time off not found")
	})

	s.Run("error: 500 on storage failure", func() {
		s.mockTimeOffCmds.EXPECT().DeleteTimeOff(gomock.Any(), id).
			Return(errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "")
	})
}
