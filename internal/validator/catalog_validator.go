package validator

import (
	"errors"
	"strings"

	"app/internal/domain/model"
)

var (
	// 店舗データが受け入れ不能
	ErrInvalidShop = errors.New("invalid shop")
)

// ValidateShop はカタログ取り込み時の検証。
// ここを通った店舗・商品だけが価格計算に渡る（計算側では再検証しない）。
//   - 商品: idが正・名前あり・rate>=0 を満たさないものは除外
//   - 割引率は0〜100に丸め込み、負のコンボ数量は0（コンボ無し）扱い
//   - 店舗: 名前なし・連絡先に数字なし・手数料が負 は店舗ごと拒否
func ValidateShop(shop model.Shop) (model.Shop, error) {
	if strings.TrimSpace(shop.BusinessName) == "" {
		return model.Shop{}, ErrInvalidShop
	}
	if shop.ContactDigits() == "" {
		return model.Shop{}, ErrInvalidShop
	}
	if shop.ConvenienceFee.IsNegative() {
		return model.Shop{}, ErrInvalidShop
	}

	valid := make([]model.Item, 0, len(shop.Items))
	for _, it := range shop.Items {
		if it.ID <= 0 {
			continue
		}
		if strings.TrimSpace(it.Name) == "" {
			continue
		}
		if it.Rate.IsNegative() {
			continue
		}

		it.DiscountPercent = clampPercent(it.DiscountPercent)
		it.ComboDiscountPercent = clampPercent(it.ComboDiscountPercent)
		if it.ComboQuantity < 0 {
			it.ComboQuantity = 0
		}

		valid = append(valid, it)
	}
	shop.Items = valid

	return shop, nil
}

func clampPercent(p int64) int64 {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
