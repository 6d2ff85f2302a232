package httpserver

import (
	"net/http"
	"strconv"

	"manox/internal/domain"
	catalogsvc "manox/internal/service/catalog"

	"github.com/gin-gonic/gin"
)

func listProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		in := catalogsvc.ListInput{
			Category:    c.Query("category"),
			Subcategory: c.Query("subcategory"),
		}
		if v := c.Query("featured"); v != "" {
			featured := v == "true"
			in.Featured = &featured
		}
		if v := c.Query("page"); v != "" {
			if page, err := strconv.Atoi(v); err == nil {
				in.Page = page
			}
		}
		if v := c.Query("limit"); v != "" {
			if limit, err := strconv.Atoi(v); err == nil {
				in.Limit = limit
			}
		}

		result, err := svc.List(c.Request.Context(), in)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func catalogListInput(page, limit int) catalogsvc.ListInput {
	return catalogsvc.ListInput{Page: page, Limit: limit}
}

func getProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func createProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		created, err := svc.Create(c.Request.Context(), p)
		if err != nil {
			errorJSON(c, http.StatusBadRequest, err.Error())
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
