package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	budgetdomain "github.com/kelolahq/anggaran/internal/budget/domain"
	categorybudgetdomain "github.com/kelolahq/anggaran/internal/categorybudget/domain"
	counterdomain "github.com/kelolahq/anggaran/internal/counter/domain"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
)

// Every response carries the same envelope; return_code mirrors the HTTP
// status so clients can branch on the body alone.
type envelope struct {
	ReturnCode    int    `json:"return_code"`
	ReturnMessage string `json:"return_message"`
	Data          any    `json:"data,omitempty"`
}

func respondOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, envelope{
		ReturnCode:    http.StatusOK,
		ReturnMessage: "Success",
		Data:          data,
	})
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, envelope{
			ReturnCode:    status,
			ReturnMessage: message,
		})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, budgetdomain.ErrInvalidRequest),
		errors.Is(err, categorybudgetdomain.ErrInvalidRequest),
		errors.Is(err, masterdomain.ErrInvalidRequest),
		errors.Is(err, masterdomain.ErrInvalidKind):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, masterdomain.ErrNotFound):
		// carries the master label, e.g. "Department data not found"
		return http.StatusNotFound, err.Error()
	case errors.Is(err, budgetdomain.ErrNotFound):
		return http.StatusNotFound, "Budget data not found"
	case errors.Is(err, categorybudgetdomain.ErrNotFound):
		return http.StatusNotFound, "Category Budget data not found"
	case errors.Is(err, categorybudgetdomain.ErrBudgetNotFound):
		return http.StatusNotFound, "Budget data not found"
	case errors.Is(err, budgetdomain.ErrConflict),
		errors.Is(err, categorybudgetdomain.ErrConflict),
		errors.Is(err, masterdomain.ErrConflict):
		return http.StatusConflict, "data already exists"
	case errors.Is(err, budgetdomain.ErrInUse):
		return http.StatusUnprocessableEntity, "budget still has active category budgets"
	case errors.Is(err, counterdomain.ErrScreenNotFound):
		return http.StatusInternalServerError, "sequence not configured"
	case errors.Is(err, counterdomain.ErrCounterExhausted):
		return http.StatusInternalServerError, "sequence exhausted"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}
