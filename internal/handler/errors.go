package handler

import (
	"net/http"
	"strings"

	"bookstore/internal/middleware"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// GETの応答。flashは1回だけ載る
type pageResponse struct {
	Flash string `json:"flash,omitempty"`
	Data  any    `json:"data"`
}

const msgTryAgain = "Something went wrong, please try again."

func statusOf(kind usecase.Kind) int {
	switch kind {
	case usecase.KindUnauthorized:
		return http.StatusUnauthorized
	case usecase.KindNotFound:
		return http.StatusNotFound
	case usecase.KindValidation:
		return http.StatusBadRequest
	case usecase.KindEmptyCart:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// 型付きエラーをJSONにする。原因はログにだけ出す
func writeError(c echo.Context, err error) error {
	if err == nil {
		return nil
	}
	e, ok := usecase.AsError(err)
	if !ok {
		e = &usecase.Error{Kind: usecase.KindInternal, Message: msgTryAgain, Err: err}
	}

	status := statusOf(e.Kind)
	logFailure(c, status, e)
	return c.JSON(status, ErrorResponse{Error: e.Message, Kind: e.Kind.String()})
}

func logFailure(c echo.Context, status int, e *usecase.Error) {
	logger := middleware.Logger(c)
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "kind", e.Kind.String(), "member_id", middleware.MemberID(c), "error", e)
		return
	}
	if e.Err != nil {
		logger.Warn("request rejected", "kind", e.Kind.String(), "error", e)
	}
}

// ユーザー向けの文言。型付きでなければ汎用文言
func userMessage(err error) string {
	if e, ok := usecase.AsError(err); ok && e.Message != "" {
		return e.Message
	}
	return msgTryAgain
}

// 外部URLへのリダイレクトは許さない（/から始まり//でないもの）
func safeRedirect(raw string, fallback string) string {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.Contains(raw, `\`) {
		return fallback
	}
	return raw
}
