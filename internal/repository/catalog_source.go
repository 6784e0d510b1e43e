package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

// カタログの取得元（リモートAPI / DB / 静的サンプル）だけを約束。
// 返る店舗データは未検証。検証は取り込み側（usecase + validator）の責務。
type CatalogSource interface {
	FetchShop(ctx context.Context, username string) (model.Shop, error)
}
