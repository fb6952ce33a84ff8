package handler

import (
	"errors"
	"net/http"

	"greencart-api/internal/dto"
	"greencart-api/internal/service"

	"github.com/labstack/echo/v4"
)

type CartHandler struct {
	cartService service.CartService
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
	}
}

func (h *CartHandler) UpdateCart(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	var req dto.UpdateCartRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.New("Invalid data"))
	}

	if err := h.cartService.UpdateCart(ctx, userID, req.CartItems); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Cart Updated"})
}

func (h *CartHandler) GetCart(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	cartItems, err := h.cartService.GetCart(ctx, userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.CartResponse{Success: true, CartItems: cartItems})
}
