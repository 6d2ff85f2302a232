package httpserver

import (
	"errors"
	"net/http"

	"manox/internal/domain"
	ordersvc "manox/internal/service/order"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// placeOrderRequest is the submission payload: a snapshot of the cart
// items plus the customer block and the client-computed amounts.
type placeOrderRequest struct {
	Items    []domain.CartItem   `json:"items"`
	Customer domain.CustomerInfo `json:"customer"`
	Subtotal decimal.Decimal     `json:"subtotal"`
	Shipping decimal.Decimal     `json:"shipping"`
	Total    decimal.Decimal     `json:"total"`
}

func placeOrderHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req placeOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			errorJSON(c, http.StatusBadRequest, "invalid json")
			return
		}

		order, err := svc.Place(c.Request.Context(), domain.Order{
			Items:    req.Items,
			Customer: req.Customer,
			Subtotal: req.Subtotal,
			Shipping: req.Shipping,
			Total:    req.Total,
		})
		if err != nil {
			switch {
			case errors.Is(err, ordersvc.ErrNoItems):
				errorJSON(c, http.StatusBadRequest, "No items")
			case errors.Is(err, ordersvc.ErrMissingCustomer):
				errorJSON(c, http.StatusBadRequest, "Customer name and email required")
			case errors.Is(err, ordersvc.ErrInvalidQty):
				errorJSON(c, http.StatusBadRequest, err.Error())
			default:
				serverError(c, err)
			}
			return
		}
		c.JSON(http.StatusCreated, order)
	}
}

func listOrdersHandler(svc OrderService) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := svc.ListRecent(c.Request.Context(), 50)
		if err != nil {
			serverError(c, err)
			return
		}
		c.JSON(http.StatusOK, list)
	}
}
