package middleware

import (
	"errors"
	"net/http"
	"time"

	"app/internal/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	CtxSessionIDKey = "session_id" // string

	sessionCookieName = "storefront_session"
)

// 買い物セッション用のcookieミドルウェア。
// 署名付きトークン（HS256）でセッションIDを運ぶだけで、ユーザー認証はしない。
// cookieが無い・壊れている・期限切れなら新しいセッションを発行する。
func Session(cfg config.Config, sessionTTL time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if id, ok := parseSessionCookie(c, cfg); ok {
				c.Set(CtxSessionIDKey, id)
				return next(c)
			}

			// 新規セッション発行
			id := uuid.NewString()
			token, err := issueSessionToken(cfg, id, sessionTTL)
			if err != nil {
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			c.SetCookie(&http.Cookie{
				Name:     sessionCookieName,
				Value:    token,
				Path:     "/",
				MaxAge:   int(sessionTTL / time.Second),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})

			c.Set(CtxSessionIDKey, id)
			return next(c)
		}
	}
}

// cookieからセッションIDを取り出す。検証に失敗したらfalse。
func parseSessionCookie(c echo.Context, cfg config.Config) (string, bool) {
	cookie, err := c.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	token, err := jwt.Parse(cookie.Value, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(cfg.SessionSecret), nil
	})
	if err != nil || token == nil || !token.Valid {
		return "", false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}

	id, ok := claims["sub"].(string)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

func issueSessionToken(cfg config.Config, sessionID string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString([]byte(cfg.SessionSecret))
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}
