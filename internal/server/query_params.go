package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	masterdomain "github.com/kelolahq/anggaran/internal/masterdata/domain"
)

// requireUserID reads the acting user from the query string; deletes carry
// no body so the actor travels as a parameter.
func requireUserID(c *gin.Context) (string, error) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		return "", masterdomain.ErrInvalidRequest
	}
	return userID, nil
}
