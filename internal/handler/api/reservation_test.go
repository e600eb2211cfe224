//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/notfound999/reservations/internal/domain/schedule"
	"github.com/notfound999/reservations/internal/handler/api"
	resdto "github.com/notfound999/reservations/internal/handler/dto/response"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/queries"
	"github.com/notfound999/reservations/tests/common/builder"
	"github.com/notfound999/reservations/tests/common/httptest"
	"github.com/notfound999/reservations/tests/common/testutil"
	commandsmock "github.com/notfound999/reservations/tests/mock/commands"
	queriesmock "github.com/notfound999/reservations/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler
	actorID      uuid.UUID
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)
	s.actorID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.actorID)
		c.Next()
	}

	s.router.POST("/reservations", authMiddleware, s.handler.Create)
	s.router.GET("/reservations", authMiddleware, s.handler.ListMine)
	s.router.GET("/reservations/:id", authMiddleware, s.handler.Get)
	s.router.POST("/reservations/:id/cancel", authMiddleware, s.handler.Cancel)
	s.router.POST("/reservations/:id/confirm", authMiddleware, s.handler.Confirm)
	s.router.POST("/reservations/:id/reject", authMiddleware, s.handler.Reject)
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"

	b := builder.NewReservationBuilder()
	reqBody := b.BuildCreateRequestDTO()
	returnView := b.BuildView()

	s.Run("success: returns 201 Created for valid request", func() {
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actorID, gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.Status, body.Status)
		s.Equal(returnView.BusinessName, body.BusinessName)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		missing := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: business_id", mutate: testutil.Field("business_id", nil)},
			{name: "missing field: offering_id", mutate: testutil.Field("offering_id", nil)},
			{name: "missing field: start_time", mutate: testutil.Field("start_time", nil)},
			{name: "malformed start_time", mutate: testutil.Field("start_time", "tomorrow at ten")},
		}
		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 422 with violation code on policy rejection", func() {
		pv := &schedule.PolicyViolation{
			Code:   schedule.ViolationOutsideHours,
			Reason: "selected time is outside of business working hours (09:00-17:00)",
		}
		s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actorID, gomock.Any()).
			Return(nil, pv).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, pv.Reason)
		s.Contains(rec.Body.String(), string(schedule.ViolationOutsideHours))
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "offering not found",
				commandsError:  errs.ErrOfferingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Offering not found",
			},
			{
				name:           "schedule not found",
				commandsError:  errs.ErrScheduleNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Schedule not found",
			},
			{
				name:           "slot already taken",
				commandsError:  errs.ErrSlotTaken,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already reserved",
			},
			{
				name:           "business unavailable",
				commandsError:  errs.ErrBusinessUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "unavailable",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Failed to create reservation",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateReservation(gomock.Any(), s.actorID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 401 Unauthorized when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *ReservationHandlerTestSuite) TestGet() {
	returnView := builder.NewReservationBuilder().BuildView()

	s.Run("success: returns reservation detail", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), returnView.ID).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+returnView.ID.String(), nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(returnView.ID, body.ID)
		s.Equal(returnView.OfferingName, body.OfferingName)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: 404 when reservation does not exist", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), id).Return(nil, errs.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})
}

// ================================================================================
// TestListMine
// ================================================================================

func (s *ReservationHandlerTestSuite) TestListMine() {
	s.Run("success: returns the actor's reservations", func() {
		first := builder.NewReservationBuilder().BuildView()
		second := builder.NewReservationBuilder().BuildView()
		s.mockQueries.EXPECT().ListMine(gomock.Any(), s.actorID).
			Return([]*queries.ReservationView{first, second}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/reservations", nil, "bearer-token")

		var body []resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body, 2)
		s.Equal(first.ID, body[0].ID)
	})
}

// ================================================================================
// TestCancel
// ================================================================================

func (s *ReservationHandlerTestSuite) TestCancel() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/cancel"

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().CancelReservation(gomock.Any(), s.actorID, id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: errs.ErrReservationNotFound, expectedStatus: http.StatusNotFound},
			{name: "forbidden", commandsError: errs.ErrForbidden, expectedStatus: http.StatusForbidden},
			{name: "already cancelled", commandsError: errs.ErrAlreadyCancelled, expectedStatus: http.StatusConflict},
			{name: "internal", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CancelReservation(gomock.Any(), s.actorID, id).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

// ================================================================================
// TestConfirm / TestReject
// ================================================================================

func (s *ReservationHandlerTestSuite) TestConfirm() {
	b := builder.NewReservationBuilder()
	url := "/reservations/" + b.ID.String() + "/confirm"

	s.Run("success: returns the confirmed reservation", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), s.actorID, b.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Status, body.Status)
	})

	s.Run("error: 409 when reservation is not pending", func() {
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), s.actorID, b.ID).
			Return(nil, errs.ErrNotPending).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "pending")
	})

	s.Run("error: 403 for non-owner", func() {
		s.mockCommands.EXPECT().ConfirmReservation(gomock.Any(), s.actorID, b.ID).
			Return(nil, errs.ErrForbidden).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "business owner")
	})
}

func (s *ReservationHandlerTestSuite) TestReject() {
	b := builder.NewReservationBuilder()
	url := "/reservations/" + b.ID.String() + "/reject"

	s.Run("success: passes an optional reason through", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().RejectReservation(gomock.Any(), s.actorID, b.ID, "fully booked that week").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]string{"reason": "fully booked that week"}, "bearer-token")

		var body resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID, body.ID)
	})

	s.Run("success: body is optional", func() {
		view := b.BuildView()
		s.mockCommands.EXPECT().RejectReservation(gomock.Any(), s.actorID, b.ID, "").
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
