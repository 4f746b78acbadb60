package handlers

import (
	"errors"
	"net/http"

	"rocketshoes-cart/internal/services"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// respondCartError maps a cart failure to its HTTP status. The message is
// the user-facing text; internal causes stay in the logs.
func respondCartError(c *gin.Context, err error) {
	var opErr *services.OperationError
	if !errors.As(err, &opErr) {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "Erro inesperado",
		})
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrStockExceeded):
		status = http.StatusConflict
	case errors.Is(err, services.ErrItemNotFound):
		status = http.StatusNotFound
	case errors.Is(err, services.ErrOracleFailure):
		status = http.StatusBadGateway
	}

	c.Error(err)
	c.JSON(status, ErrorResponse{
		Error:   services.KindOf(err),
		Message: opErr.Message(),
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "invalid_request",
		Message: message,
	})
}
