package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/domain"
)

// Every error leaves the process through here: engine errors become a
// structured body with a success flag, and nothing internal leaks on
// unexpected failures.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	var stockErr *domain.StockError

	switch {
	case errors.As(err, &vErr):
		body := gin.H{"success": false, "message": vErr.Message}
		if len(vErr.Fields) > 0 {
			body["missingFields"] = vErr.Fields
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.As(err, &stockErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": stockErr.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "not found"})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid credentials"})
	case errors.Is(err, domain.ErrMissingToken):
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authentication required"})
	case errors.Is(err, domain.ErrInvalidToken):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "invalid or expired token"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"success": false, "message": "admin access required"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "internal error"})
	}
}
