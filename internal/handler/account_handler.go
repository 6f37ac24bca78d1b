package handler

import (
	"net/http"

	"bookstore/internal/middleware"
	"bookstore/internal/session"
	"bookstore/internal/usecase"
	auth "bookstore/internal/usecase/auth_usecase"

	"github.com/labstack/echo/v4"
)

const (
	msgRegistered = "You have registered successfully!"
	msgLoggedIn   = "Login was successful."
	msgLoggedOut  = "Logout was successful."
)

type AccountHandler struct {
	registerUC *auth.RegisterUsecase // 会員登録usecase
	loginUC    *auth.LoginUsecase    // ログインusecase
	sessions   *session.Manager
}

// DIコンストラクタ
func NewAccountHandler(
	registerUC *auth.RegisterUsecase,
	loginUC *auth.LoginUsecase,
	sessions *session.Manager,
) *AccountHandler {
	return &AccountHandler{
		registerUC: registerUC,
		loginUC:    loginUC,
		sessions:   sessions,
	}
}

// フォームでもJSONでも受ける（echoのBind）
type registerRequest struct {
	Email      string `json:"email" form:"email"`
	Password   string `json:"password" form:"password"`
	FirstName  string `json:"first_name" form:"firstName"`
	LastName   string `json:"last_name" form:"lastName"`
	Street     string `json:"street" form:"street"`
	City       string `json:"city" form:"city"`
	PostalCode string `json:"postal_code" form:"postalCode"`
	Phone      string `json:"phone" form:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func (h *AccountHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/register", h.register)
	g.POST("/login", h.login)
	g.POST("/logout", h.logout)
}

func (h *AccountHandler) register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Kind: usecase.KindValidation.String()})
	}

	out, err := h.registerUC.Execute(c.Request().Context(), auth.RegisterInput{
		Email:      req.Email,
		Password:   req.Password,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Street:     req.Street,
		City:       req.City,
		PostalCode: req.PostalCode,
		Phone:      req.Phone,
	})
	if err != nil {
		h.sessions.SetFlash(c.Response(), userMessage(err))
		return writeError(c, err)
	}
	h.sessions.SetFlash(c.Response(), msgRegistered)
	return c.JSON(http.StatusCreated, out)
}

// 成功したらセッションCookieを発行
func (h *AccountHandler) login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body", Kind: usecase.KindValidation.String()})
	}

	out, err := h.loginUC.Execute(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		h.sessions.SetFlash(c.Response(), userMessage(err))
		return writeError(c, err)
	}
	if err := h.sessions.Issue(c.Response(), out.MemberID); err != nil {
		return writeError(c, err)
	}
	h.sessions.SetFlash(c.Response(), msgLoggedIn)
	return c.JSON(http.StatusOK, messageResponse{Message: msgLoggedIn})
}

// セッションが無いのにログアウトは404
func (h *AccountHandler) logout(c echo.Context) error {
	if middleware.MemberID(c) == 0 {
		return writeError(c, &usecase.Error{Kind: usecase.KindNotFound, Message: "no active session"})
	}
	h.sessions.Clear(c.Response())
	h.sessions.SetFlash(c.Response(), msgLoggedOut)
	return c.JSON(http.StatusOK, messageResponse{Message: msgLoggedOut})
}
