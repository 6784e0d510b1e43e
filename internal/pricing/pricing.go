// Package pricing は商品と数量から実効単価を計算する純粋関数。
// 丸めは一切行わない。表示用の2桁丸め（四捨五入）は呼び出し側の責務。
package pricing

import (
	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// UnitPrice は数量を考慮した1個あたりの価格を返す。
// まず基本割引、コンボ条件を満たす場合はその割引後価格にさらにコンボ割引を重ねる。
// （コンボは元のRateではなく割引後価格に対して乗算する。契約どおり）
func UnitPrice(item model.Item, quantity int64) decimal.Decimal {
	afterBase := item.Rate.Mul(decimal.NewFromInt(100 - item.DiscountPercent)).Div(hundred)
	if ComboApplied(item, quantity) {
		return afterBase.Mul(decimal.NewFromInt(100 - item.ComboDiscountPercent)).Div(hundred)
	}
	return afterBase
}

// ComboApplied はその行の合計数量でコンボ割引が発動しているか。
func ComboApplied(item model.Item, quantity int64) bool {
	return item.HasCombo() && quantity >= item.ComboQuantity
}

// LineTotal は行合計（単価 × 数量）。
func LineTotal(item model.Item, quantity int64) decimal.Decimal {
	return UnitPrice(item, quantity).Mul(decimal.NewFromInt(quantity))
}
