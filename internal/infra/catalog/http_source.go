package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
)

// リモートカタログAPI（GET {base}/getitems?shop_username=...）から店舗を取得する。
type HTTPSource struct {
	baseURL string
	client  *http.Client
}

// DI
func NewHTTPSource(baseURL string) *HTTPSource {
	return &HTTPSource{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// 上流APIのスキーマ（元データのフィールド名そのまま）
type shopPayload struct {
	BusinessName   string        `json:"BusinessName"`
	BusinessType   string        `json:"BusinessType"`
	Address        string        `json:"Address"`
	MobileNo       string        `json:"MobileNo"`
	Pincode        string        `json:"Pincode"`
	MapLocation    string        `json:"MapLocation"`
	ShopUsername   string        `json:"ShopUsername"`
	ConvenienceFee float64       `json:"ConvenienceFee"`
	Items          []itemPayload `json:"Items"`
}

type itemPayload struct {
	ID            int64    `json:"id"`
	Name          string   `json:"Name"`
	Rate          float64  `json:"Rate"`
	Discount      int64    `json:"Discount"`
	ComboQuantity int64    `json:"combo_quantity"`
	ComboDiscount int64    `json:"combo_discount"`
	Category      string   `json:"Category"`
	Stock         bool     `json:"Stock"`
	Tags          []string `json:"tags"`
	Image1        string   `json:"image1"`
}

func (s *HTTPSource) FetchShop(ctx context.Context, username string) (model.Shop, error) {
	u := s.baseURL + "/getitems?shop_username=" + url.QueryEscape(username)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return model.Shop{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return model.Shop{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Shop{}, fmt.Errorf("catalog api: status %d", resp.StatusCode)
	}

	var payload shopPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return model.Shop{}, err
	}

	return toModel(payload), nil
}

// 上流スキーマ → ドメインモデル
func toModel(p shopPayload) model.Shop {
	items := make([]model.Item, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, model.Item{
			ID:                   it.ID,
			Name:                 it.Name,
			Rate:                 decimal.NewFromFloat(it.Rate),
			DiscountPercent:      it.Discount,
			ComboQuantity:        it.ComboQuantity,
			ComboDiscountPercent: it.ComboDiscount,
			Category:             it.Category,
			Tags:                 it.Tags,
			InStock:              it.Stock,
			ImageURL:             it.Image1,
		})
	}

	return model.Shop{
		Username:       p.ShopUsername,
		BusinessName:   p.BusinessName,
		BusinessType:   p.BusinessType,
		Address:        p.Address,
		MobileNo:       p.MobileNo,
		Pincode:        p.Pincode,
		MapLocation:    p.MapLocation,
		ConvenienceFee: decimal.NewFromFloat(p.ConvenienceFee),
		Items:          items,
	}
}
