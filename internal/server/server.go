package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"bookstore/internal/metrics"
	"bookstore/internal/middleware"
	"bookstore/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// 停止時に処理中のリクエストを待つ時間
const shutdownTimeout = 10 * time.Second

// 共通ミドルウェアを付けたechoを作る
func New(logger *slog.Logger, sessions *session.Manager, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(echomw.Recover())
	e.Use(m.Middleware())
	e.Use(middleware.Identity(sessions))
	return e
}

// ctxが終わるまで待ち受けて、終わったら graceful に止める
func Run(ctx context.Context, e *echo.Echo, addr string, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", "addr", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	logger.Info("http server shutting down")
	return e.Shutdown(shutdownCtx)
}
