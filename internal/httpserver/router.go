package httpserver

import (
	"context"
	"log"

	"manox/internal/domain"
	authsvc "manox/internal/service/auth"
	catalogsvc "manox/internal/service/catalog"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the services the router depends on, as small
// consumer-side interfaces so handler tests can stub them.
type Deps struct {
	CatalogSvc CatalogService
	OrderSvc   OrderService
	AuthSvc    AuthService
	UserRepo   UserStore

	// Dashboard counters; UserRepo already counts users.
	ProductCount StatsCounter
	OrderCount   StatsCounter
}

type CatalogService interface {
	List(ctx context.Context, in catalogsvc.ListInput) (*catalogsvc.ListResult, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
	Update(ctx context.Context, p domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

type OrderService interface {
	Place(ctx context.Context, o domain.Order) (*domain.Order, error)
	Get(ctx context.Context, id string) (*domain.Order, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Order, error)
	ListPage(ctx context.Context, page, limit int) ([]domain.Order, int, error)
	UpdateStatus(ctx context.Context, id, status string) (*domain.Order, error)
}

type AuthService interface {
	Register(ctx context.Context, in authsvc.RegisterInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	LookupByToken(ctx context.Context, token string) (*domain.User, error)
}

// StatsCounter exposes the document counts the admin dashboard shows.
type StatsCounter interface {
	Count(ctx context.Context) (int, error)
}

// UserStore is the slice of the user repository the admin screens use.
type UserStore interface {
	ListPage(ctx context.Context, page, limit int) ([]domain.User, int, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	UpdateRole(ctx context.Context, id, role string) (*domain.User, error)
	Count(ctx context.Context) (int, error)
}

// buildRouter wires all API routes.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps, frontendURL string) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if frontendURL == "" || frontendURL == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{frontendURL}
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	router.Use(cors.New(corsCfg))

	api := router.Group("/api")
	api.GET("/health", healthHandler)

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	products := api.Group("/products")
	products.GET("", listProductsHandler(deps.CatalogSvc))
	products.GET("/:id", getProductHandler(deps.CatalogSvc))
	products.POST("", createProductHandler(deps.CatalogSvc))

	orders := api.Group("/orders")
	orders.POST("", placeOrderHandler(deps.OrderSvc))
	orders.GET("", listOrdersHandler(deps.OrderSvc))

	auth := api.Group("/auth")
	auth.POST("/register", registerHandler(deps.AuthSvc))
	auth.POST("/login", loginHandler(deps.AuthSvc))

	admin := api.Group("/admin")
	admin.Use(adminMiddleware(deps.AuthSvc))
	registerAdminRoutes(admin, deps)

	return router, nil
}
