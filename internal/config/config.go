package config

import (
	"fmt"
	"os"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	ShopUsername   string // 取り込む店舗（空なら静的サンプル）
	ShopAPIBaseURL string // カタログAPIのベースURL
	CatalogSource  string // "http" / "db"

	SessionSecret string // セッションcookie署名シークレット

	GoEnv string // dev/prod
}

const defaultShopAPIBaseURL = "https://api.zentroxs.online"

// Loadは環境変数
func Load() (Config, error) {
	cfg := Config{
		Port: os.Getenv("PORT"),

		ShopUsername:   os.Getenv("SHOP_USERNAME"),
		ShopAPIBaseURL: getenv("SHOP_API_BASE_URL", defaultShopAPIBaseURL),
		CatalogSource:  getenv("CATALOG_SOURCE", "http"),

		SessionSecret: os.Getenv("SESSION_SECRET"),

		GoEnv: os.Getenv("GO_ENV"),
	}

	//必須チェック
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT is required")
	}
	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("SESSION_SECRET is required")
	}
	if cfg.GoEnv == "" {
		return Config{}, fmt.Errorf("GO_ENV is required")
	}
	if cfg.CatalogSource != "http" && cfg.CatalogSource != "db" {
		return Config{}, fmt.Errorf("CATALOG_SOURCE must be http or db")
	}

	return cfg, nil
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
