package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/domain"
)

func getCartHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := cart.Get(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": res})
	}
}

type addToCartRequest struct {
	ProductID *int `json:"productId"`
	Quantity  *int `json:"quantity"`
}

func addToCartHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addToCartRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, domain.NewValidationError("invalid request body"))
			return
		}
		if req.ProductID == nil {
			respondError(c, domain.NewValidationError("productId is required", "productId"))
			return
		}
		quantity := 1
		if req.Quantity != nil {
			quantity = *req.Quantity
		}

		res, err := cart.AddItem(c.Request.Context(), *req.ProductID, quantity)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": res})
	}
}

func removeFromCartHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID, err := strconv.Atoi(c.Param("productId"))
		if err != nil {
			respondError(c, domain.NewValidationError("product id must be numeric", "productId"))
			return
		}
		res, err := cart.RemoveItem(c.Request.Context(), productID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": res})
	}
}

func clearCartHandler(cart CartService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := cart.Clear(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "cart": res})
	}
}
