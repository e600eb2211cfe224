package api

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	resdto "github.com/notfound999/reservations/internal/handler/dto/response"
	"github.com/notfound999/reservations/internal/handler/httperr"
	"github.com/notfound999/reservations/internal/pkg/errs"
	"github.com/notfound999/reservations/internal/usecase/queries"
)

type AvailabilityHandler struct {
	q queries.AvailabilityQueries
}

func NewAvailabilityHandler(q queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{q: q}
}

// @Summary Get busy blocks
// @Description List the unavailable intervals of a business over a view window
// @Tags availability
// @Produce json
// @Param businessId path string true "Business ID"
// @Param start query string true "Window start (RFC3339)"
// @Param end query string true "Window end (RFC3339)"
// @Success 200 {array} resdto.BusyBlockResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /availabilities/{businessId} [get]
func (h *AvailabilityHandler) GetBusyBlocks(c *gin.Context) {
	businessID, err := uuid.Parse(c.Param("businessId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid business id", nil)
		return
	}
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid start time", nil)
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid end time", nil)
		return
	}

	blocks, err := h.q.BusyBlocks(c.Request.Context(), businessID, start, end)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidWindow):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "View window end must be after start", nil)
		case errors.Is(err, errs.ErrScheduleNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Schedule not found", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to compute availability", nil)
		}
		return
	}
	c.JSON(http.StatusOK, resdto.FromBusyBlocks(blocks))
}
