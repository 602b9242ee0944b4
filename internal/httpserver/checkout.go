package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func createCheckoutSessionHandler(checkout CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checkout == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "checkout is not configured"})
			return
		}
		sess, err := checkout.CreateSession(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "sessionId": sess.ID, "sessionUrl": sess.URL})
	}
}

func checkoutSessionStatusHandler(checkout CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checkout == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"success": false, "message": "checkout is not configured"})
			return
		}
		status, err := checkout.SessionStatus(c.Request.Context(), c.Param("sessionId"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "status": status})
	}
}
