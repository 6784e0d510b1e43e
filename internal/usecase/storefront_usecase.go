package usecase

import (
	"strings"

	"app/internal/domain/model"
	"app/internal/pricing"
)

// StorefrontUsecase は確定済み店舗カタログの閲覧（店舗情報・商品一覧）。
type StorefrontUsecase struct {
	shop model.Shop
}

// DI（shopは取り込み済み・検証済み）
func NewStorefrontUsecase(shop model.Shop) *StorefrontUsecase {
	return &StorefrontUsecase{shop: shop}
}

// GET /shop
type ShopInfoOutput struct {
	BusinessName   string `json:"business_name"`
	BusinessType   string `json:"business_type"`
	Address        string `json:"address"`
	MobileNo       string `json:"mobile_no"`
	Pincode        string `json:"pincode"`
	MapLocation    string `json:"map_location"`
	ConvenienceFee string `json:"convenience_fee"`
}

// GET /shop/items の入力DTO
type ListItemsInput struct {
	Category string
	Q        string
}

type ItemOutput struct {
	ID                   int64    `json:"id"`
	Name                 string   `json:"name"`
	Rate                 string   `json:"rate"`
	Price                string   `json:"price"`
	DiscountPercent      int64    `json:"discount_percent"`
	ComboQuantity        int64    `json:"combo_quantity"`
	ComboDiscountPercent int64    `json:"combo_discount_percent"`
	Category             string   `json:"category"`
	Tags                 []string `json:"tags"`
	InStock              bool     `json:"in_stock"`
	ImageURL             string   `json:"image_url"`
}

type ItemListOutput struct {
	Items      []ItemOutput `json:"items"`
	Categories []string     `json:"categories"`
}

func (u *StorefrontUsecase) GetShopInfo() ShopInfoOutput {
	return ShopInfoOutput{
		BusinessName:   u.shop.BusinessName,
		BusinessType:   u.shop.BusinessType,
		Address:        u.shop.Address,
		MobileNo:       u.shop.MobileNo,
		Pincode:        u.shop.Pincode,
		MapLocation:    u.shop.MapLocation,
		ConvenienceFee: u.shop.ConvenienceFee.StringFixed(2),
	}
}

// ListItems はカテゴリと名前部分一致（大文字小文字無視）で絞り込む。
// priceは数量1時点の実効単価（表示用・2桁丸め）。
func (u *StorefrontUsecase) ListItems(in ListItemsInput) ItemListOutput {
	q := strings.ToLower(strings.TrimSpace(in.Q))
	category := strings.TrimSpace(in.Category)

	items := make([]ItemOutput, 0, len(u.shop.Items))
	for _, it := range u.shop.Items {
		if category != "" && category != "All" && it.Category != category {
			continue
		}
		if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
			continue
		}

		items = append(items, ItemOutput{
			ID:                   it.ID,
			Name:                 it.Name,
			Rate:                 it.Rate.StringFixed(2),
			Price:                pricing.UnitPrice(it, 1).StringFixed(2),
			DiscountPercent:      it.DiscountPercent,
			ComboQuantity:        it.ComboQuantity,
			ComboDiscountPercent: it.ComboDiscountPercent,
			Category:             it.Category,
			Tags:                 it.Tags,
			InStock:              it.InStock,
			ImageURL:             it.ImageURL,
		})
	}

	return ItemListOutput{
		Items:      items,
		Categories: u.categories(),
	}
}

// カテゴリ一覧（先頭は"All"、以降は商品の出現順）。
func (u *StorefrontUsecase) categories() []string {
	out := []string{"All"}
	seen := map[string]bool{}
	for _, it := range u.shop.Items {
		if it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		out = append(out, it.Category)
	}
	return out
}
