package session

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"
	"time"

	"bookstore/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

// 一度だけ読めるメッセージ用のCookie名
const flashCookieName = "bookstore_flash"

var ErrNoSession = errors.New("no session")

// Manager はセッションCookie（HS256のJWT）とflashを扱う
type Manager struct {
	secret     []byte
	cookieName string
	ttl        time.Duration
	secure     bool
	now        func() time.Time
}

func NewManager(cfg config.Session, secure bool) *Manager {
	return &Manager{
		secret:     []byte(cfg.Secret),
		cookieName: cfg.CookieName,
		ttl:        cfg.TTL,
		secure:     secure,
		now:        time.Now,
	}
}

// ログイン成功時にセッションを発行する
func (m *Manager) Issue(w http.ResponseWriter, memberID int64) error {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(memberID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return err
	}

	http.SetCookie(w, m.cookie(m.cookieName, signed, int(m.ttl.Seconds())))
	return nil
}

// リクエストから会員IDを取り出す。無い・壊れている・期限切れは ErrNoSession
func (m *Manager) Resolve(r *http.Request) (int64, error) {
	c, err := r.Cookie(m.cookieName)
	if err != nil || c.Value == "" {
		return 0, ErrNoSession
	}

	var claims jwt.RegisteredClaims
	token, err := jwt.ParseWithClaims(c.Value, &claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return 0, ErrNoSession
	}

	memberID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || memberID <= 0 {
		return 0, ErrNoSession
	}
	return memberID, nil
}

// セッションCookieを消す
func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, m.cookie(m.cookieName, "", -1))
}

// 次のレスポンスで1回だけ表示するメッセージ
func (m *Manager) SetFlash(w http.ResponseWriter, message string) {
	if message == "" {
		return
	}
	value := base64.RawURLEncoding.EncodeToString([]byte(message))
	http.SetCookie(w, m.cookie(flashCookieName, value, 0))
}

// flashを読んで同じレスポンスで消す。無ければ空文字
func (m *Manager) PopFlash(w http.ResponseWriter, r *http.Request) string {
	c, err := r.Cookie(flashCookieName)
	if err != nil || c.Value == "" {
		return ""
	}
	http.SetCookie(w, m.cookie(flashCookieName, "", -1))

	raw, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return ""
	}
	return string(raw)
}

// maxAge: 0はブラウザセッション、負数は削除
func (m *Manager) cookie(name string, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteStrictMode,
	}
}
