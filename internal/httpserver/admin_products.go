package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bookstore-api/internal/domain"
	catalogsvc "bookstore-api/internal/service/catalog"
	productsvc "bookstore-api/internal/service/product"
)

func adminListProductsHandler(catalog CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Invalid page/limit coerce to 0 here and to the engine defaults
		// there.
		page, _ := strconv.Atoi(c.Query("page"))
		limit, _ := strconv.Atoi(c.Query("limit"))

		res, err := catalog.QueryAdmin(c.Request.Context(), catalogsvc.AdminQuery{
			Status:    c.Query("status"),
			Category:  c.Query("category"),
			Search:    c.Query("search"),
			SortBy:    c.Query("sortBy"),
			SortOrder: c.Query("sortOrder"),
			Page:      page,
			Limit:     limit,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success":    true,
			"products":   res.Products,
			"pagination": res.Pagination,
			"statistics": res.Statistics,
		})
	}
}

func adminGetProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			return
		}
		p, err := products.GetByID(c.Request.Context(), id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
	}
}

func adminCreateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in productsvc.CreateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.NewValidationError("invalid request body"))
			return
		}
		createdBy := ""
		if id := identityFrom(c); id != nil {
			createdBy = id.ID
		}
		p, err := products.Create(c.Request.Context(), in, createdBy)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, gin.H{"success": true, "product": p})
	}
}

func adminUpdateProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			return
		}
		var in productsvc.UpdateInput
		if err := c.ShouldBindJSON(&in); err != nil {
			respondError(c, domain.NewValidationError("invalid request body"))
			return
		}
		p, err := products.Update(c.Request.Context(), id, in)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "product": p})
	}
}

func adminDeleteProductHandler(products ProductService) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := productID(c)
		if !ok {
			return
		}
		permanent := c.Query("permanent") == "true"
		if err := products.Delete(c.Request.Context(), id, permanent); err != nil {
			respondError(c, err)
			return
		}
		message := "product deactivated"
		if permanent {
			message = "product deleted"
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
	}
}

// productID parses the :id path segment; identifiers arrive as strings and
// must be numeric.
func productID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		respondError(c, domain.NewValidationError("product id must be numeric", "id"))
		return 0, false
	}
	return id, true
}
