package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/validator"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

// ShopUsecase はカタログ取り込み（取得→検証→フォールバック）。
type ShopUsecase struct {
	primary  repo.CatalogSource
	fallback repo.CatalogSource
}

// DI
func NewShopUsecase(primary repo.CatalogSource, fallback repo.CatalogSource) *ShopUsecase {
	return &ShopUsecase{
		primary:  primary,
		fallback: fallback,
	}
}

// ResolveShop は店舗カタログを確定する。
// usernameが空、または一次取得・検証のどちらかに失敗したら静的サンプルへフォールバック。
// フォールバックも検証を通らなければエラー。
func (u *ShopUsecase) ResolveShop(ctx context.Context, username string) (model.Shop, error) {
	username = strings.TrimSpace(username)

	if username != "" {
		shop, err := u.primary.FetchShop(ctx, username)
		if err == nil {
			validated, verr := validator.ValidateShop(shop)
			if verr == nil {
				return validated, nil
			}
			err = verr
		}
		slog.Warn("catalog fetch failed, using sample data",
			"shop_username", username, "error", err)
	}

	shop, err := u.fallback.FetchShop(ctx, username)
	if err != nil {
		return model.Shop{}, err
	}
	return validator.ValidateShop(shop)
}
