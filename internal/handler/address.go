package handler

import (
	"errors"
	"net/http"

	"greencart-api/internal/dto"
	"greencart-api/internal/service"

	"github.com/labstack/echo/v4"
)

type AddressHandler struct {
	addressService service.AddressService
}

func NewAddressHandler(addressService service.AddressService) *AddressHandler {
	return &AddressHandler{
		addressService: addressService,
	}
}

func (h *AddressHandler) AddAddress(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	var req dto.AddAddressRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.New("Invalid data"))
	}

	if _, err := h.addressService.AddAddress(ctx, userID, &req); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Address added successfully"})
}

func (h *AddressHandler) GetAddresses(c echo.Context) error {
	ctx := c.Request().Context()
	userID, _ := c.Get("user_id").(string)

	addresses, err := h.addressService.GetUserAddresses(ctx, userID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.AddressesResponse{Success: true, Addresses: addresses})
}
