package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/domain"
	authsvc "bookstore-api/internal/service/auth"
)

const identityKey = "identity"

// adminRequired authenticates the bearer token and gates on the admin role.
// A missing header is unauthorized; a bad token or wrong role is forbidden.
func adminRequired(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := auth.Authenticate(c.GetHeader("Authorization"))
		if err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		if err := auth.RequireRole(id, domain.RoleAdmin); err != nil {
			respondError(c, err)
			c.Abort()
			return
		}
		c.Set(identityKey, id)
		c.Next()
	}
}

func identityFrom(c *gin.Context) *authsvc.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(*authsvc.Identity); ok {
			return id
		}
	}
	return nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func loginHandler(auth AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, domain.NewValidationError("invalid request body"))
			return
		}
		var missing []string
		if req.Email == "" {
			missing = append(missing, "email")
		}
		if req.Password == "" {
			missing = append(missing, "password")
		}
		if len(missing) > 0 {
			respondError(c, domain.NewValidationError("email and password are required", missing...))
			return
		}

		id, token, err := auth.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "token": token, "user": id})
	}
}
