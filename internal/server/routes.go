package server

import (
	"net/http"

	"bookstore/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Handlers struct {
	Account  *handler.AccountHandler
	Books    *handler.BookHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
	Orders   *handler.OrderHandler
}

func RegisterRoutes(e *echo.Echo, h Handlers, gatherer prometheus.Gatherer) {
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	h.Account.RegisterRoutes(e.Group("/account"))

	books := e.Group("/books")
	h.Books.RegisterRoutes(books)
	h.Cart.RegisterRoutes(books)
	h.Checkout.RegisterRoutes(books)

	h.Orders.RegisterRoutes(e.Group("/orders"))
}
