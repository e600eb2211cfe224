package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/notfound999/reservations/internal/domain/schedule"
	reqdto "github.com/notfound999/reservations/internal/handler/dto/request"
	resdto "github.com/notfound999/reservations/internal/handler/dto/response"
	"github.com/notfound999/reservations/internal/handler/httperr"
	"github.com/notfound999/reservations/internal/handler/middleware"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/commands"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Book a slot for an offering; the offering duration fixes the end time
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.cmds.CreateReservation(c.Request.Context(), userID, req.ToInput())
	if err != nil {
		if pv, ok := schedule.AsPolicyViolation(err); ok {
			middleware.IncBookingRejected(string(pv.Code))
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, pv.Reason, gin.H{"code": pv.Code})
			return
		}
		switch {
		case errors.Is(err, errs.ErrOfferingNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Offering not found", nil)
		case errors.Is(err, errs.ErrBusinessNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Business not found", nil)
		case errors.Is(err, errs.ErrScheduleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found", nil)
		case errors.Is(err, errs.ErrUserNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "User not found", nil)
		case errors.Is(err, errs.ErrSlotTaken):
			middleware.IncBookingRejected("slot_taken")
			httperr.AbortWithError(c, http.StatusConflict, err, "This time slot is already reserved by another customer", nil)
		case errors.Is(err, errs.ErrBusinessUnavailable):
			middleware.IncBookingRejected("time_off")
			httperr.AbortWithError(c, http.StatusConflict, err, "The business is unavailable during this time", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create reservation", nil)
		}
		return
	}

	middleware.IncBookingAdmitted(view.Status)
	c.JSON(http.StatusCreated, resdto.FromReservationView(view))
}

// @Summary Get reservation
// @Description Get a reservation by ID
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, errs.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load reservation", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary List my reservations
// @Description List reservations made by the authenticated user
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ReservationResponse
// @Failure 401 {object} map[string]string
// @Router /reservations [get]
func (h *ReservationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	views, err := h.q.ListMine(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List business reservations
// @Description List reservations taken by a business
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Router /businesses/{businessId}/reservations [get]
func (h *ReservationHandler) ListByBusiness(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}
	views, err := h.q.ListByBusiness(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list reservations", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary Cancel reservation
// @Description Cancel a reservation as its customer or the business owner
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/cancel [post]
func (h *ReservationHandler) Cancel(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.cmds.CancelReservation(c.Request.Context(), userID, id); err != nil {
		switch {
		case errors.Is(err, errs.ErrReservationNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
		case errors.Is(err, errs.ErrForbidden):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to cancel this reservation", nil)
		case errors.Is(err, errs.ErrAlreadyCancelled):
			httperr.AbortWithError(c, http.StatusConflict, err, "Reservation is already cancelled", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to cancel reservation", nil)
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Confirm reservation
// @Description Confirm a pending reservation as the business owner
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/confirm [post]
func (h *ReservationHandler) Confirm(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	view, err := h.cmds.ConfirmReservation(c.Request.Context(), userID, id)
	if err != nil {
		h.abortStatusChange(c, err, "Failed to confirm reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Reject reservation
// @Description Reject a pending reservation as the business owner
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.RejectReservationRequest false "Optional rejection reason"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /reservations/{id}/reject [post]
func (h *ReservationHandler) Reject(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errs.New("missing user context"), "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	var req reqdto.RejectReservationRequest
	if c.Request.ContentLength > 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}
	view, err := h.cmds.RejectReservation(c.Request.Context(), userID, id, req.Reason)
	if err != nil {
		h.abortStatusChange(c, err, "Failed to reject reservation")
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) abortStatusChange(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errors.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Only the business owner can perform this action", nil)
	case errors.Is(err, errs.ErrNotPending):
		httperr.AbortWithError(c, http.StatusConflict, err, "Only pending reservations can be confirmed or rejected", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
