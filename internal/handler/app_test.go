package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"bookstore/internal/config"
	"bookstore/internal/domain/model"
	"bookstore/internal/handler"
	"bookstore/internal/infra/db"
	infraRepo "bookstore/internal/infra/repository"
	"bookstore/internal/metrics"
	"bookstore/internal/server"
	"bookstore/internal/session"
	"bookstore/internal/usecase"
	auth "bookstore/internal/usecase/auth_usecase"
	"bookstore/internal/validator"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC) }

type staticIDs struct{}

func (staticIDs) NewID() string { return "fixed-token" }

type testApp struct {
	e  *echo.Echo
	db *gorm.DB
}

// main.goと同じ組み立てをSQLiteで行う
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	gormDB := db.OpenTest(t)

	memberRepo := infraRepo.NewMemberGormRepository(gormDB)
	bookRepo := infraRepo.NewBookGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	txm := infraRepo.NewTxManagerGorm(gormDB)
	memberValidator := validator.NewMemberValidator(memberRepo)

	sessions := session.NewManager(config.Session{Secret: "s", CookieName: "sid", TTL: time.Hour}, false)
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	e := server.New(nopLogger(), sessions, m)
	server.RegisterRoutes(e, server.Handlers{
		Account: handler.NewAccountHandler(
			auth.NewRegisterUsecase(memberRepo, auth.NewBcryptPasswordHasher(bcrypt.MinCost), memberValidator),
			auth.NewLoginUsecase(memberRepo, auth.NewBcryptPasswordVerifier(), memberValidator),
			sessions,
		),
		Books:    handler.NewBookHandler(usecase.NewCatalogUsecase(bookRepo, 2), sessions),
		Cart:     handler.NewCartHandler(usecase.NewCartUsecase(txm, cartRepo), sessions),
		Checkout: handler.NewCheckoutHandler(usecase.NewCheckoutUsecase(txm, cartRepo, fixedClock{}, staticIDs{}), sessions, m),
		Orders:   handler.NewOrderHandler(usecase.NewOrderUsecase(txm, 2)),
	}, reg)

	for _, b := range []model.Book{
		{ISBN: "A", Subject: "Fiction", Author: "Frank Herbert", Title: "Dune", Price: decimal.RequireFromString("10.00")},
		{ISBN: "B", Subject: "Fiction", Author: "Ursula K. Le Guin", Title: "Earthsea", Price: decimal.RequireFromString("25.00")},
		{ISBN: "C", Subject: "Fiction", Author: "Iain Banks", Title: "Excession", Price: decimal.RequireFromString("7.00")},
		{ISBN: "D", Subject: "Poetry", Author: "Basho", Title: "Frog", Price: decimal.RequireFromString("3.00")},
	} {
		require.NoError(t, gormDB.Create(&b).Error)
	}
	return &testApp{e: e, db: gormDB}
}

// cookieを持ち回るクライアント
type client struct {
	app     *testApp
	cookies map[string]*http.Cookie
}

func (a *testApp) client() *client {
	return &client{app: a, cookies: map[string]*http.Cookie{}}
}

func (c *client) do(t *testing.T, method, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	for _, ck := range c.cookies {
		req.AddCookie(ck)
	}

	rec := httptest.NewRecorder()
	c.app.e.ServeHTTP(rec, req)

	for _, ck := range rec.Result().Cookies() {
		if ck.MaxAge < 0 || ck.Value == "" {
			delete(c.cookies, ck.Name)
			continue
		}
		c.cookies[ck.Name] = ck
	}
	return rec
}

func (c *client) registerAndLogin(t *testing.T, email string) {
	t.Helper()
	rec := c.do(t, http.MethodPost, "/account/register", url.Values{
		"email":      {email},
		"password":   {"secret-pass"},
		"firstName":  {"Ada"},
		"lastName":   {"Lovelace"},
		"street":     {"1 Analytical Way"},
		"city":       {"London"},
		"postalCode": {"12345"},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = c.do(t, http.MethodPost, "/account/login", url.Values{
		"email":    {email},
		"password": {"secret-pass"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Contains(t, c.cookies, "sid")
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dst), rec.Body.String())
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
