package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// 店舗メタデータ。カタログ取得時に確定し、セッション中は不変。
type Shop struct {
	ID             int64           `gorm:"primaryKey;autoIncrement" json:"-"`
	Username       string          `gorm:"type:varchar(100);uniqueIndex" json:"shop_username"`
	BusinessName   string          `gorm:"type:varchar(255);not null" json:"business_name"`
	BusinessType   string          `gorm:"type:varchar(100)" json:"business_type"`
	Address        string          `gorm:"type:text" json:"address"`
	MobileNo       string          `gorm:"type:varchar(30);not null" json:"mobile_no"`
	Pincode        string          `gorm:"type:varchar(10)" json:"pincode"`
	MapLocation    string          `gorm:"type:text" json:"map_location"`
	ConvenienceFee decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"convenience_fee"`
	Items          []Item          `gorm:"foreignKey:ShopID" json:"items"`
}

// ContactDigits は送信先番号（数字のみ）を返す。
func (s Shop) ContactDigits() string {
	var b strings.Builder
	for _, r := range s.MobileNo {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
