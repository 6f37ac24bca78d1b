package handler

import (
	"net/http"

	"bookstore/internal/middleware"
	"bookstore/internal/session"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

const (
	msgAddedToCart = "Book added to cart."
	// リダイレクト先が無い/不正なとき
	defaultReturnPath = "/books/subjects"
)

// /books/cart のHTTP
type CartHandler struct {
	uc       *usecase.CartUsecase
	sessions *session.Manager
}

// DI
func NewCartHandler(uc *usecase.CartUsecase, sessions *session.Manager) *CartHandler {
	return &CartHandler{uc: uc, sessions: sessions}
}

func (h *CartHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/cart", h.getCart)
	g.POST("/cart", h.addToCart)
	g.DELETE("/cart/:isbn", h.removeOne)
}

func (h *CartHandler) getCart(c echo.Context) error {
	out, err := h.uc.ListForMember(c.Request().Context(), middleware.MemberID(c))
	if err != nil {
		return writeError(c, err)
	}
	flash := h.sessions.PopFlash(c.Response(), c.Request())
	return c.JSON(http.StatusOK, pageResponse{Flash: flash, Data: out})
}

// フォーム送信。結果はflashに入れて元のページへ戻す
func (h *CartHandler) addToCart(c echo.Context) error {
	back := safeRedirect(c.FormValue("redirectUrl"), defaultReturnPath)

	err := h.uc.AddOrIncrement(c.Request().Context(), middleware.MemberID(c), c.FormValue("isbn"))
	if err != nil {
		e, _ := usecase.AsError(err)
		if e != nil {
			logFailure(c, statusOf(e.Kind), e)
		} else {
			middleware.Logger(c).Error("add to cart failed", "error", err)
		}

		// 未ログインはトップへ
		if usecase.KindOf(err) == usecase.KindUnauthorized {
			back = "/"
		}
		h.sessions.SetFlash(c.Response(), userMessage(err))
		return c.Redirect(http.StatusSeeOther, back)
	}

	h.sessions.SetFlash(c.Response(), msgAddedToCart)
	return c.Redirect(http.StatusSeeOther, back)
}

func (h *CartHandler) removeOne(c echo.Context) error {
	out, err := h.uc.RemoveOne(c.Request().Context(), middleware.MemberID(c), c.Param("isbn"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
