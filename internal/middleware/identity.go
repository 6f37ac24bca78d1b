package middleware

import (
	"bookstore/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	CtxMemberIDKey = "member_id" // int64（未ログインは0）
	CtxLoggerKey   = "logger"    // *slog.Logger
)

// セッションCookieから会員IDを解決してcontextに置く。
// 未ログインでも止めない（必要かどうかはusecaseが決める）
func Identity(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			memberID, err := sessions.Resolve(c.Request())
			if err != nil {
				memberID = 0
			}
			c.Set(CtxMemberIDKey, memberID)
			return next(c)
		}
	}
}

// contextの会員ID。無ければ0
func MemberID(c echo.Context) int64 {
	id, ok := c.Get(CtxMemberIDKey).(int64)
	if !ok || id < 0 {
		return 0
	}
	return id
}
