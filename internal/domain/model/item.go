package model

import "github.com/shopspring/decimal"

// カタログ商品。取り込み時に検証済み、以降は読み取り専用。
// 割引率は元データどおり整数パーセント（0〜100）。
type Item struct {
	ID                   int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopID               int64           `gorm:"not null;index" json:"-"`
	Name                 string          `gorm:"type:varchar(255);not null" json:"name"`
	Rate                 decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"rate"`
	DiscountPercent      int64           `gorm:"not null;default:0" json:"discount_percent"`
	ComboQuantity        int64           `gorm:"not null;default:0" json:"combo_quantity"`
	ComboDiscountPercent int64           `gorm:"not null;default:0" json:"combo_discount_percent"`
	Category             string          `gorm:"type:varchar(100)" json:"category"`
	Tags                 []string        `gorm:"serializer:json" json:"tags"`
	InStock              bool            `gorm:"not null;default:true" json:"in_stock"`
	ImageURL             string          `gorm:"type:text" json:"image_url"`
}

// HasCombo はコンボ段階が存在するか（combo_quantity >= 1）。
func (i Item) HasCombo() bool {
	return i.ComboQuantity >= 1
}
