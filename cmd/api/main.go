package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"app/internal/config"
	"app/internal/domain/model"
	"app/internal/handler"
	infraCatalog "app/internal/infra/catalog"
	"app/internal/infra/db"
	infraRepo "app/internal/infra/repository"
	"app/internal/infra/session"
	repo "app/internal/repository"
	"app/internal/server"
	"app/internal/usecase"
	"app/pkg/logging"

	"github.com/joho/godotenv"
)

const sessionTTL = 24 * time.Hour

func main() {
	// .envは無くてもよい（本番は環境変数のみ）
	_ = godotenv.Load()

	logging.Setup()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}

	// カタログの一次取得元を選ぶ
	var primary repo.CatalogSource
	switch cfg.CatalogSource {
	case "db":
		gormDB, err := db.Connect()
		if err != nil {
			slog.Error("db connect failed", "error", err)
			os.Exit(1)
		}
		if err := gormDB.AutoMigrate(&model.Shop{}, &model.Item{}); err != nil {
			slog.Error("db migrate failed", "error", err)
			os.Exit(1)
		}
		primary = infraRepo.NewShopGormSource(gormDB)
	default:
		primary = infraCatalog.NewHTTPSource(cfg.ShopAPIBaseURL)
	}

	// 取り込み（失敗時は静的サンプルにフォールバック）
	shopUC := usecase.NewShopUsecase(primary, infraCatalog.NewStaticSource())
	shop, err := shopUC.ResolveShop(context.Background(), cfg.ShopUsername)
	if err != nil {
		slog.Error("catalog resolve failed", "error", err)
		os.Exit(1)
	}
	slog.Info("catalog resolved",
		"shop", shop.BusinessName,
		"items", len(shop.Items),
		"source", cfg.CatalogSource)

	// セッション保管（メモリ、TTL付き）
	sessions := session.NewMemoryStore(sessionTTL)

	// Usecase生成
	storefrontUC := usecase.NewStorefrontUsecase(shop)
	cartUC := usecase.NewCartUsecase(shop, sessions)
	checkoutUC := usecase.NewCheckoutUsecase(shop, sessions)

	// Handler生成
	h := server.Handlers{
		Shop:     handler.NewShopHandler(storefrontUC),
		Cart:     handler.NewCartHandler(cartUC),
		Checkout: handler.NewCheckoutHandler(checkoutUC),
	}

	// Server起動
	addr := cfg.Port
	if addr[0] != ':' {
		addr = ":" + addr
	}

	slog.Info("starting server", "addr", addr, "env", cfg.GoEnv)
	if err := server.Start(addr, cfg, sessionTTL, h); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
