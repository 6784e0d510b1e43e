package server

import (
	"time"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"

	"github.com/labstack/echo/v4"
)

// Handlers はserverが配線するHTTPハンドラ一式。
type Handlers struct {
	Shop     *handler.ShopHandler
	Cart     *handler.CartHandler
	Checkout *handler.CheckoutHandler
}

// Start はechoを組み立ててListenする。
func Start(addr string, cfg config.Config, sessionTTL time.Duration, h Handlers) error {
	e := echo.New()
	e.HideBanner = true

	// 全ルートにセッションcookieを適用
	e.Use(middleware.Session(cfg, sessionTTL))

	RegisterRoutes(e, h)

	return e.Start(addr)
}
