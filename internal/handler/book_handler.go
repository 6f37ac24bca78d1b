package handler

import (
	"net/http"

	"bookstore/internal/session"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

const msgNoSearchHits = "No books matches your search please try again."

// /books の閲覧API（ログイン不要）
type BookHandler struct {
	uc       *usecase.CatalogUsecase
	sessions *session.Manager
}

// DI
func NewBookHandler(uc *usecase.CatalogUsecase, sessions *session.Manager) *BookHandler {
	return &BookHandler{uc: uc, sessions: sessions}
}

func (h *BookHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/subjects", h.subjects)
	g.GET("/subjects/:subject", h.bySubject)
	g.GET("/search", h.search)
}

func (h *BookHandler) subjects(c echo.Context) error {
	subjects, err := h.uc.ListSubjects(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return h.render(c, subjects, "")
}

func (h *BookHandler) bySubject(c echo.Context) error {
	out, err := h.uc.PageBySubject(c.Request().Context(), c.Param("subject"), usecase.ParsePage(c.QueryParam("page")))
	if err != nil {
		return writeError(c, err)
	}
	return h.render(c, out, "")
}

func (h *BookHandler) search(c echo.Context) error {
	out, err := h.uc.Search(c.Request().Context(), usecase.SearchInput{
		Field: c.QueryParam("searchCriteria"),
		Term:  c.QueryParam("searchInput"),
		Page:  usecase.ParsePage(c.QueryParam("page")),
	})
	if err != nil {
		return writeError(c, err)
	}

	notice := ""
	if out.Page.TotalItems == 0 {
		notice = msgNoSearchHits
	}
	return h.render(c, out, notice)
}

// 前のリクエストのflashを優先する
func (h *BookHandler) render(c echo.Context, data any, notice string) error {
	flash := h.sessions.PopFlash(c.Response(), c.Request())
	if flash == "" {
		flash = notice
	}
	return c.JSON(http.StatusOK, pageResponse{Flash: flash, Data: data})
}
