package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TheSmartAz/instant-coffee-sub001/pkg/services"
)

// errorBody is the uniform error payload.
type errorBody struct {
	Error   string                 `json:"error"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// respondError maps a service error to its HTTP status and payload.
func respondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusUnprocessableEntity, errorBody{
			Error: validation.Error(),
			Details: map[string]interface{}{
				"field": validation.Field,
			},
		})
		return
	}

	var conflict *services.StateConflictError
	if errors.As(err, &conflict) {
		c.JSON(http.StatusConflict, errorBody{
			Error: conflict.Error(),
			Details: map[string]interface{}{
				"entity":  conflict.Entity,
				"id":      conflict.ID,
				"current": conflict.Current,
				"target":  conflict.Target,
			},
		})
		return
	}

	var pinned *services.PinnedLimitError
	if errors.As(err, &pinned) {
		c.JSON(http.StatusConflict, errorBody{
			Error: pinned.Error(),
			Details: map[string]interface{}{
				"limit":          pinned.Limit,
				"current_pinned": pinned.CurrentPinned,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNoWaitingRun):
		c.JSON(http.StatusNotFound, errorBody{Error: err.Error()})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, errorBody{Error: err.Error()})
	case errors.Is(err, services.ErrVersionReleased):
		c.JSON(http.StatusGone, errorBody{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, errorBody{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, errorBody{Error: err.Error()})
	}
}
