package httpserver

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, deps Deps, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.Store))

	api := router.Group("/api")

	api.GET("/products", listProductsHandler(deps.Catalog))
	api.POST("/auth/login", loginHandler(deps.Auth))

	cart := api.Group("/cart")
	cart.GET("", getCartHandler(deps.Cart))
	cart.POST("/add", addToCartHandler(deps.Cart))
	cart.DELETE("/remove/:productId", removeFromCartHandler(deps.Cart))
	cart.DELETE("/clear", clearCartHandler(deps.Cart))

	co := api.Group("/checkout")
	co.POST("/session", createCheckoutSessionHandler(deps.Checkout))
	co.GET("/session/:sessionId", checkoutSessionStatusHandler(deps.Checkout))

	admin := api.Group("/admin", adminRequired(deps.Auth))
	admin.GET("/products", adminListProductsHandler(deps.Catalog))
	admin.POST("/products", adminCreateProductHandler(deps.Products))
	admin.GET("/products/:id", adminGetProductHandler(deps.Products))
	admin.PUT("/products/:id", adminUpdateProductHandler(deps.Products))
	admin.DELETE("/products/:id", adminDeleteProductHandler(deps.Products))

	return router
}

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}
