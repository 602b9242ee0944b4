package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogsvc "bookstore-api/internal/service/catalog"
)

func listProductsHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := catalog.QueryPublic(c.Request.Context(), catalogsvc.PublicQuery{
			Category: c.Query("category"),
			Search:   c.Query("search"),
			Sort:     c.Query("sort"),
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":  true,
			"products": res.Products,
			"total":    res.Total,
			"filters": gin.H{
				"category": res.Category,
				"search":   res.Search,
				"sort":     res.Sort,
			},
		})
	}
}
