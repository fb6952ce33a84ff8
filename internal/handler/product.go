package handler

import (
	"errors"
	"net/http"

	"greencart-api/internal/dto"
	"greencart-api/internal/service"

	"github.com/labstack/echo/v4"
)

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
	}
}

func (h *ProductHandler) AddProduct(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.AddProductRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.New("Invalid data"))
	}

	if _, err := h.productService.AddProduct(ctx, &req); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Product Added"})
}

func (h *ProductHandler) ProductList(c echo.Context) error {
	ctx := c.Request().Context()

	products, err := h.productService.ListProducts(ctx)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.ProductsResponse{Success: true, Products: products})
}

func (h *ProductHandler) ProductByID(c echo.Context) error {
	ctx := c.Request().Context()

	productID := c.QueryParam("id")

	product, err := h.productService.GetProduct(ctx, productID)
	if err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.ProductResponse{Success: true, Product: product})
}

func (h *ProductHandler) ChangeStock(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.ChangeStockRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, errors.New("Invalid data"))
	}

	if err := h.productService.ChangeStock(ctx, req.ID, req.Stock); err != nil {
		return fail(c, err)
	}

	return c.JSON(http.StatusOK, dto.Response{Success: true, Message: "Stock Updated"})
}
