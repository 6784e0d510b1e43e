package catalog

import (
	"context"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// 静的サンプルデータの取得元。リモート取得に失敗したときの最終フォールバック。
type StaticSource struct{}

func NewStaticSource() *StaticSource {
	return &StaticSource{}
}

// usernameは無視してサンプル店舗を返す。
func (s *StaticSource) FetchShop(ctx context.Context, username string) (model.Shop, error) {
	return SampleShop(), nil
}

// SampleShop はデモ用のレストランカタログ。
func SampleShop() model.Shop {
	return model.Shop{
		Username:       "kfcblrmgroad",
		BusinessName:   "KFC Chicken",
		BusinessType:   "Restaurant",
		Address:        "MG Road, Bangalore, Karnataka",
		MobileNo:       "9876543210",
		Pincode:        "560001",
		MapLocation:    "https://www.google.com/maps/place/KFC+MG+Road+Bangalore",
		ConvenienceFee: decimal.NewFromInt(5),
		Items: []model.Item{
			{
				ID:                   1,
				Name:                 "KFC Hot & Crispy Chicken (2 Pc)",
				Rate:                 decimal.NewFromInt(249),
				DiscountPercent:      10,
				ComboQuantity:        3,
				ComboDiscountPercent: 15,
				Category:             "Chicken",
				Tags:                 []string{"Spicy", "Crispy", "Best Seller"},
				InStock:              true,
				ImageURL:             "https://cdn.pixabay.com/photo/2022/04/25/16/34/food-7156399_1280.png",
			},
			{
				ID:                   2,
				Name:                 "KFC Chicken Bucket (6 Pc)",
				Rate:                 decimal.NewFromInt(599),
				DiscountPercent:      50,
				ComboQuantity:        2,
				ComboDiscountPercent: 10,
				Category:             "Bucket Meals",
				Tags:                 []string{"Sharing", "Value Pack", "Family"},
				InStock:              true,
				ImageURL:             "https://cdn.pixabay.com/photo/2013/07/13/01/24/chicken-155680_1280.png",
			},
			{
				ID:                   3,
				Name:                 "KFC Chicken Popcorn Regular",
				Rate:                 decimal.NewFromInt(129),
				DiscountPercent:      0,
				ComboQuantity:        2,
				ComboDiscountPercent: 5,
				Category:             "Snacks",
				Tags:                 []string{"Kids Favorite", "Crispy", "Snack"},
				InStock:              true,
				ImageURL:             "https://cdn.pixabay.com/photo/2022/10/16/15/42/popcorn-7525406_1280.png",
			},
			{
				ID:                   4,
				Name:                 "KFC Zinger Burger",
				Rate:                 decimal.NewFromInt(169),
				DiscountPercent:      0,
				ComboQuantity:        2,
				ComboDiscountPercent: 10,
				Category:             "Burgers",
				Tags:                 []string{"Popular", "Spicy", "Bun"},
				InStock:              true,
				ImageURL:             "https://cdn.pixabay.com/photo/2023/06/28/10/27/hamburger-8094087_1280.png",
			},
		},
	}
}
