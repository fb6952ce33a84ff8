package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"greencart-api/internal/dto"
	"greencart-api/internal/service"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
	}
}

// fail reports any error in the response envelope; validation failures and
// store errors share the same shape.
func fail(c echo.Context, err error) error {
	return c.JSON(http.StatusOK, dto.Response{Success: false, Message: err.Error()})
}

func (h *OrderHandler) PlaceOrderCOD(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.New("Invalid data"))
	}

	if err := h.orderService.PlaceOrderCOD(ctx, &req); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Order Placed Successfully"})
}

func (h *OrderHandler) PlaceOrderStripe(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.New("Invalid data"))
	}

	origin := c.Request().Header.Get("Origin")

	url, err := h.orderService.PlaceOrderStripe(ctx, &req, origin)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, URL: url})
}

// StripeWebhook verifies and applies provider payment events. Signature
// failures get a 4xx so the provider knows the delivery was rejected;
// everything else is acknowledged so an already-processed event is not
// redelivered forever.
func (h *OrderHandler) StripeWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.NoContent(http.StatusBadRequest)
	}

	sigHeader := c.Request().Header.Get("Stripe-Signature")

	err = h.orderService.HandleStripeWebhook(ctx, body, sigHeader)
	var sigErr *service.SignatureError
	if errors.As(err, &sigErr) {
		return c.String(http.StatusBadRequest, fmt.Sprintf("Webhook Error: %v", sigErr.Cause))
	}
	if err != nil {
		log.Printf("handle stripe webhook: %v", err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

func (h *OrderHandler) GetUserOrders(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	orders, err := h.orderService.GetUserOrders(ctx, userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Orders: orders})
}

func (h *OrderHandler) GetAllOrders(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orderService.GetAllOrders(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.OrdersResponse{Success: true, Orders: orders})
}
