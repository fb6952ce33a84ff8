package server

import (
	"greencart-api/internal/config"
	"greencart-api/internal/handler"
	appmiddleware "greencart-api/internal/middleware"
	"greencart-api/internal/service"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type Server struct {
	echo           *echo.Echo
	orderHandler   *handler.OrderHandler
	cartHandler    *handler.CartHandler
	productHandler *handler.ProductHandler
	addressHandler *handler.AddressHandler

	authUser   echo.MiddlewareFunc
	authSeller echo.MiddlewareFunc
}

func NewServer(
	cfg *config.Config,
	orderService service.OrderService,
	cartService service.CartService,
	productService service.ProductService,
	addressService service.AddressService,
) *Server {
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:           e,
		orderHandler:   handler.NewOrderHandler(orderService),
		cartHandler:    handler.NewCartHandler(cartService),
		productHandler: handler.NewProductHandler(productService),
		addressHandler: handler.NewAddressHandler(addressService),
		authUser:       appmiddleware.AuthUser(cfg.JWTSecret),
		authSeller:     appmiddleware.AuthSeller(cfg.JWTSecret, cfg.SellerEmail),
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	// -------- catalog --------
	product := api.Group("/product")
	product.POST("/add", s.productHandler.AddProduct, s.authSeller)
	product.GET("/list", s.productHandler.ProductList)
	product.GET("/id", s.productHandler.ProductByID)
	product.POST("/stock", s.productHandler.ChangeStock, s.authSeller)

	// -------- cart --------
	cart := api.Group("/cart", s.authUser)
	cart.POST("/update", s.cartHandler.UpdateCart)
	cart.GET("", s.cartHandler.GetCart)

	// -------- addresses --------
	address := api.Group("/address", s.authUser)
	address.POST("/add", s.addressHandler.AddAddress)
	address.GET("/get", s.addressHandler.GetAddresses)

	// -------- orders --------
	order := api.Group("/order")
	order.POST("/cod", s.orderHandler.PlaceOrderCOD, s.authUser)
	order.POST("/stripe", s.orderHandler.PlaceOrderStripe, s.authUser)
	order.GET("/user", s.orderHandler.GetUserOrders, s.authUser)
	order.GET("/seller", s.orderHandler.GetAllOrders, s.authSeller)

	// -------- stripe webhook (signature-verified, no session auth) --------
	api.POST("/stripe", s.orderHandler.StripeWebhook)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
