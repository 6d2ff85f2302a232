package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"manox/internal/domain"
	catalogsvc "manox/internal/service/catalog"
)

type stubCatalogService struct {
	result    *catalogsvc.ListResult
	listErr   error
	lastInput catalogsvc.ListInput
	product   *domain.Product
	getErr    error
	created   *domain.Product
	createErr error
	deleteErr error
}

func (s *stubCatalogService) List(_ context.Context, in catalogsvc.ListInput) (*catalogsvc.ListResult, error) {
	s.lastInput = in
	return s.result, s.listErr
}

func (s *stubCatalogService) Get(_ context.Context, _ string) (*domain.Product, error) {
	return s.product, s.getErr
}

func (s *stubCatalogService) Create(_ context.Context, p domain.Product) (*domain.Product, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.created != nil {
		return s.created, nil
	}
	cp := p
	return &cp, nil
}

func (s *stubCatalogService) Update(_ context.Context, p domain.Product) (*domain.Product, error) {
	cp := p
	return &cp, nil
}

func (s *stubCatalogService) Delete(_ context.Context, _ string) error {
	return s.deleteErr
}

func TestListProductsHandler_PassesFilters(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogService{result: &catalogsvc.ListResult{Items: []domain.Product{}}}
	router := gin.New()
	router.GET("/api/products", listProductsHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/products?category=Jewelry&subcategory=Bangles&featured=true&page=2&limit=10", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	in := svc.lastInput
	if in.Category != "Jewelry" || in.Subcategory != "Bangles" {
		t.Fatalf("category filters not passed: %+v", in)
	}
	if in.Featured == nil || !*in.Featured {
		t.Fatalf("featured filter not passed: %+v", in.Featured)
	}
	if in.Page != 2 || in.Limit != 10 {
		t.Fatalf("paging not passed: page=%d limit=%d", in.Page, in.Limit)
	}
}

func TestGetProductHandler_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogService{getErr: domain.ErrNotFound}
	router := gin.New()
	router.GET("/api/products/:id", getProductHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/products/ghost", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestGetProductHandler_PriceAsNumber(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubCatalogService{product: &domain.Product{
		ID:    "p1",
		Title: "Bangles",
		Price: decimal.RequireFromString("4.00"),
	}}
	router := gin.New()
	router.GET("/api/products/:id", getProductHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/products/p1", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	// Amounts must serialize as JSON numbers, not quoted strings.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if string(raw["price"]) != "4.00" {
		t.Fatalf("expected unquoted price, got %s", raw["price"])
	}
}
