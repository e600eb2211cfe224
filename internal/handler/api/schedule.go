package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "github.com/notfound999/reservations/internal/handler/dto/request"
	resdto "github.com/notfound999/reservations/internal/handler/dto/response"
	"github.com/notfound999/reservations/internal/handler/httperr"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/commands"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type ScheduleHandler struct {
	cmds        commands.ScheduleCommands
	timeOffCmds commands.TimeOffCommands
	q           queries.ScheduleQueries
}

func NewScheduleHandler(
	cmds commands.ScheduleCommands,
	timeOffCmds commands.TimeOffCommands,
	q queries.ScheduleQueries,
) *ScheduleHandler {
	return &ScheduleHandler{cmds: cmds, timeOffCmds: timeOffCmds, q: q}
}

// @Summary Get schedule
// @Description Get a business's booking configuration
// @Tags schedules
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /businesses/{businessId}/schedule [get]
func (h *ScheduleHandler) Get(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}
	view, err := h.q.GetByBusiness(c.Request.Context(), businessID)
	if err != nil {
		if errors.Is(err, errs.ErrScheduleNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load schedule", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary Create default schedule
// @Description Provision the standard Monday-to-Friday configuration for a business without one
// @Tags schedules
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Success 201 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /businesses/{businessId}/schedule [post]
func (h *ScheduleHandler) CreateDefault(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}
	if _, err := h.cmds.CreateDefaultSchedule(c.Request.Context(), businessID); err != nil {
		switch {
		case errors.Is(err, errs.ErrScheduleExists):
			httperr.AbortWithError(c, http.StatusConflict, err, "Business already has a schedule", nil)
		case errors.Is(err, errs.ErrBusinessNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Business not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create schedule", nil)
		}
		return
	}
	view, err := h.q.GetByBusiness(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load schedule", nil)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromScheduleView(view))
}

// @Summary Update schedule
// @Description Apply a partial settings update and optionally replace the weekly configuration
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param request body reqdto.UpdateScheduleRequest true "Schedule update"
// @Success 200 {object} resdto.ScheduleResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /businesses/{businessId}/schedule [put]
func (h *ScheduleHandler) Update(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}
	var req reqdto.UpdateScheduleRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}
	in, err := req.ToInput()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid working day configuration", nil)
		return
	}

	view, err := h.cmds.UpdateSchedule(c.Request.Context(), businessID, in)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrScheduleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found", nil)
		case errors.Is(err, errs.ErrInvalidWorkingDay):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid working day configuration", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to update schedule", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromScheduleView(view))
}

// @Summary List time off
// @Description List the ad-hoc blocked intervals of a business
// @Tags schedules
// @Produce json
// @Param businessId path string true "Business ID"
// @Success 200 {array} resdto.TimeOffResponse
// @Failure 400 {object} map[string]string
// @Router /businesses/{businessId}/time-off [get]
func (h *ScheduleHandler) ListTimeOff(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}
	views, err := h.q.ListTimeOff(c.Request.Context(), businessID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list time off", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTimeOffViews(views))
}

// @Summary Add time off
// @Description Block an interval against new reservations
// @Tags schedules
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param businessId path string true "Business ID"
// @Param request body reqdto.AddTimeOffRequest true "Time off interval"
// @Success 201 {object} resdto.TimeOffResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /businesses/{businessId}/time-off [post]
func (h *ScheduleHandler) AddTimeOff(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}
	var req reqdto.AddTimeOffRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
		return
	}

	id, err := h.timeOffCmds.AddTimeOff(c.Request.Context(), businessID, req.ToInput())
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrScheduleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found", nil)
		case errors.Is(err, errs.ErrInvalidTimeOff):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "End time cannot be before start time", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to add time off", nil)
		}
		return
	}
	c.JSON(http.StatusCreated, resdto.TimeOffResponse{
		ID:        id,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Reason:    req.Reason,
	})
}

// @Summary Delete time off
// @Description Remove a blocked interval
// @Tags schedules
// @Security BearerAuth
// @Param id path string true "Time off ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /time-off/{id} [delete]
func (h *ScheduleHandler) DeleteTimeOff(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}
	if err := h.timeOffCmds.DeleteTimeOff(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrTimeOffNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Time off not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to delete time off", nil)
		return
	}
	c.Status(http.StatusNoContent)
}
