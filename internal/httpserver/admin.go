package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"manox/internal/domain"
	ordersvc "manox/internal/service/order"

	"github.com/gin-gonic/gin"
)

// adminMiddleware authenticates the bearer token and requires the
// admin role; handlers behind it can assume a valid admin caller.
func adminMiddleware(svc AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "No token, authorization denied"})
			return
		}
		user, err := svc.LookupByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Token is not valid"})
			return
		}
		if user.Role != domain.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Access denied. Admins only."})
			return
		}
		c.Next()
	}
}

func registerAdminRoutes(g *gin.RouterGroup, deps Deps) {
	g.GET("/dashboard", dashboardHandler(deps))

	g.GET("/products", adminListProductsHandler(deps.CatalogSvc))
	g.GET("/products/:id", getProductHandler(deps.CatalogSvc))
	g.POST("/products", createProductHandler(deps.CatalogSvc))
	g.PUT("/products/:id", updateProductHandler(deps.CatalogSvc))
	g.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))

	g.GET("/orders", adminListOrdersHandler(deps.OrderSvc))
	g.GET("/orders/:id", getOrderHandler(deps.OrderSvc))
	g.PUT("/orders/:id", updateOrderStatusHandler(deps.OrderSvc))

	g.GET("/users", listUsersHandler(deps.UserRepo))
	g.GET("/users/:id", getUserHandler(deps.UserRepo))
	g.PUT("/users/:id", updateUserRoleHandler(deps.UserRepo))
}

func dashboardHandler(deps Deps) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		products, err := deps.ProductCount.Count(ctx)
		if err != nil {
			serverError(c, err)
			return
		}
		orders, err := deps.OrderCount.Count(ctx)
		if err != nil {
			serverError(c, err)
			return
		}
		users, err := deps.UserRepo.Count(ctx)
		if err != nil {
			serverError(c, err)
			return
		}
		recent, err := deps.OrderSvc.ListRecent(ctx, 5)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"stats": gin.H{
				"products": products,
				"orders":   orders,
				"users":    users,
			},
			"recentOrders": recent,
		})
	}
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}
	return page, limit
}

func adminListProductsHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		result, err := svc.List(c.Request.Context(), catalogListInput(page, limit))
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"products":   result.Items,
			"pagination": paginate(page, limit, result.Total),
		})
	}
}

func updateProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var p domain.Product
		if err := c.ShouldBindJSON(&p); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		p.ID = c.Param("id")
		updated, err := svc.Update(c.Request.Context(), p)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(svc CatalogService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
	}
}

func adminListOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		orders, total, err := svc.ListPage(c.Request.Context(), page, limit)
		if err != nil {
			serverError(c, err)
			return
		}
		if orders == nil {
			orders = []domain.Order{}
		}
		c.JSON(http.StatusOK, gin.H{
			"orders":     orders,
			"pagination": paginate(page, limit, total),
		})
	}
}

func getOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := svc.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func updateOrderStatusHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		o, err := svc.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
		if err != nil {
			if errors.Is(err, ordersvc.ErrInvalidStatus) {
				errorJSON(c, http.StatusBadRequest, "invalid status")
				return
			}
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func listUsersHandler(repo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit := pageParams(c)
		users, total, err := repo.ListPage(c.Request.Context(), page, limit)
		if err != nil {
			serverError(c, err)
			return
		}
		if users == nil {
			users = []domain.User{}
		}
		c.JSON(http.StatusOK, gin.H{
			"users":      users,
			"pagination": paginate(page, limit, total),
		})
	}
}

func getUserHandler(repo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		u, err := repo.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}

func updateUserRoleHandler(repo UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Role string `json:"role"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid json")
			return
		}
		if req.Role != domain.RoleUser && req.Role != domain.RoleAdmin {
			errorJSON(c, http.StatusBadRequest, "invalid role")
			return
		}
		u, err := repo.UpdateRole(c.Request.Context(), c.Param("id"), req.Role)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, u)
	}
}
