package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

// DB管理カタログ（店side）のCatalogSource実装。
type ShopGormSource struct {
	db *gorm.DB
}

// DI
func NewShopGormSource(db *gorm.DB) *ShopGormSource {
	return &ShopGormSource{db: db}
}

// usernameで店舗を引き、商品一覧（登録順）を添えて返す。
func (r *ShopGormSource) FetchShop(ctx context.Context, username string) (model.Shop, error) {
	var shop model.Shop

	err := r.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id asc")
		}).
		Where("username = ?", username).
		First(&shop).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}

	return shop, nil
}
