package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"manox/internal/domain"
	ordersvc "manox/internal/service/order"
)

type stubOrderService struct {
	placed     *domain.Order
	placeErr   error
	lastPlaced domain.Order
	order      *domain.Order
	getErr     error
	recent     []domain.Order
	page       []domain.Order
	pageTotal  int
	updated    *domain.Order
	updateErr  error
	lastStatus string
}

func (s *stubOrderService) Place(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastPlaced = o
	return s.placed, s.placeErr
}

func (s *stubOrderService) Get(_ context.Context, _ string) (*domain.Order, error) {
	return s.order, s.getErr
}

func (s *stubOrderService) ListRecent(_ context.Context, _ int) ([]domain.Order, error) {
	if s.recent == nil {
		return []domain.Order{}, nil
	}
	return s.recent, nil
}

func (s *stubOrderService) ListPage(_ context.Context, _, _ int) ([]domain.Order, int, error) {
	return s.page, s.pageTotal, nil
}

func (s *stubOrderService) UpdateStatus(_ context.Context, _, status string) (*domain.Order, error) {
	s.lastStatus = status
	return s.updated, s.updateErr
}

func orderPayload() string {
	return `{
		"items":[{"productId":"p1","title":"Bangles","price":4.00,"qty":2}],
		"customer":{"name":"Ada","email":"ada@example.com"},
		"subtotal":8.00,"shipping":5.99,"total":13.99
	}`
}

func TestPlaceOrderHandler_Created(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubOrderService{placed: &domain.Order{
		ID:     "ord-1",
		Status: domain.OrderStatusPending,
		Total:  decimal.RequireFromString("13.99"),
	}}
	router := gin.New()
	router.POST("/api/orders", placeOrderHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(orderPayload()))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID != "ord-1" || got.Status != domain.OrderStatusPending {
		t.Fatalf("unexpected response order: %+v", got)
	}
	if len(svc.lastPlaced.Items) != 1 || svc.lastPlaced.Items[0].Qty != 2 {
		t.Fatalf("service did not receive the submitted items: %+v", svc.lastPlaced.Items)
	}
	if !svc.lastPlaced.Total.Equal(decimal.RequireFromString("13.99")) {
		t.Fatalf("expected total passed through, got %s", svc.lastPlaced.Total)
	}
}

func TestPlaceOrderHandler_NoItems(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubOrderService{placeErr: ordersvc.ErrNoItems}
	router := gin.New()
	router.POST("/api/orders", placeOrderHandler(svc))

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(`{"items":[],"customer":{}}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "No items") {
		t.Fatalf("expected 'No items' message, got %s", rec.Body.String())
	}
}

func TestPlaceOrderHandler_InvalidJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/api/orders", placeOrderHandler(&stubOrderService{}))

	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader("{nope"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListOrdersHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &stubOrderService{recent: []domain.Order{{ID: "ord-1"}, {ID: "ord-2"}}}
	router := gin.New()
	router.GET("/api/orders", listOrdersHandler(svc))

	req := httptest.NewRequest(http.MethodGet, "/api/orders", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []domain.Order
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(got))
	}
}
