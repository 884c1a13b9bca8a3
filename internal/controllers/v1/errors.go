package v1

import (
	"errors"
	"net/http"

	"github.com/expense-tracker/backend/internal/models"
	"github.com/gin-gonic/gin"
)

type httpError struct {
	Error string `json:"error" example:"there is no expense matching your query"`
}

// respondError writes the response for a failed request.
func respondError(c *gin.Context, err error) {
	c.JSON(status(err), httpError{Error: err.Error()})
}

// status returns the appropriate HTTP status for an error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

var (
	errMonthNotSetInQuery       = errors.New("the month query parameter must be set")
	errExpenseAmountNotPositive = errors.New("the expense amount must be larger than zero")
	errExportWriteFailed        = errors.New("the export file could not be written")
)
