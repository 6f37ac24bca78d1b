package handler

import (
	"net/http"

	"bookstore/internal/metrics"
	"bookstore/internal/middleware"
	"bookstore/internal/session"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /books/checkout のHTTP
type CheckoutHandler struct {
	uc       *usecase.CheckoutUsecase
	sessions *session.Manager
	metrics  *metrics.Metrics
}

// DI
func NewCheckoutHandler(uc *usecase.CheckoutUsecase, sessions *session.Manager, m *metrics.Metrics) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, sessions: sessions, metrics: m}
}

func (h *CheckoutHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/checkout", h.summary)
	g.POST("/checkout", h.checkout)
}

// 確認画面。トークンをフォームに埋めて送り返してもらう
func (h *CheckoutHandler) summary(c echo.Context) error {
	out, err := h.uc.Summary(c.Request().Context(), middleware.MemberID(c))
	if err != nil {
		return writeError(c, err)
	}
	flash := h.sessions.PopFlash(c.Response(), c.Request())
	return c.JSON(http.StatusOK, pageResponse{Flash: flash, Data: out})
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	memberID := middleware.MemberID(c)
	out, err := h.uc.Checkout(c.Request().Context(), memberID, c.FormValue("checkoutToken"))
	if err != nil {
		h.metrics.CheckoutOutcome(usecase.KindOf(err).String())
		return writeError(c, err)
	}

	h.metrics.CheckoutOutcome("ok")
	middleware.Logger(c).Info("checkout completed",
		"member_id", memberID,
		"order_id", out.OrderID,
		"total", out.Total.StringFixed(2),
	)
	return c.JSON(http.StatusOK, out)
}
