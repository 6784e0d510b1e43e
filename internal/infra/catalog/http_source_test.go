package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

const upstreamJSON = `{
  "BusinessName": "KFC Chicken",
  "BusinessType": "Restaurant",
  "Address": "MG Road, Bangalore, Karnataka",
  "MobileNo": "9876543210",
  "Pincode": "560001",
  "MapLocation": "https://maps.example/kfc",
  "ShopUsername": "kfcblrmgroad",
  "ConvenienceFee": 5,
  "Items": [
    {
      "id": 1,
      "Name": "KFC Hot & Crispy Chicken (2 Pc)",
      "Rate": 249,
      "Discount": 10,
      "combo_quantity": 3,
      "combo_discount": 15,
      "Category": "Chicken",
      "Stock": true,
      "tags": ["Spicy", "Crispy"],
      "image1": "https://img.example/1.png"
    }
  ]
}`

// Test: 上流スキーマ（元データのフィールド名）をモデルに写す
func TestHTTPSource_FetchShop(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/getitems", r.URL.Path)
		assert.Equal(t, "kfcblrmgroad", r.URL.Query().Get("shop_username"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(upstreamJSON))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)

	shop, err := src.FetchShop(context.Background(), "kfcblrmgroad")
	assert.NoError(t, err)
	assert.Equal(t, "KFC Chicken", shop.BusinessName)
	assert.Equal(t, "kfcblrmgroad", shop.Username)
	assert.Equal(t, "5.00", shop.ConvenienceFee.StringFixed(2))

	assert.Len(t, shop.Items, 1)
	it := shop.Items[0]
	assert.Equal(t, int64(1), it.ID)
	assert.Equal(t, "249.00", it.Rate.StringFixed(2))
	assert.Equal(t, int64(10), it.DiscountPercent)
	assert.Equal(t, int64(3), it.ComboQuantity)
	assert.Equal(t, int64(15), it.ComboDiscountPercent)
	assert.True(t, it.InStock)
	assert.Equal(t, []string{"Spicy", "Crispy"}, it.Tags)
	assert.Equal(t, "https://img.example/1.png", it.ImageURL)
}

// Test: 200以外はエラー
func TestHTTPSource_FetchShop_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)

	_, err := src.FetchShop(context.Background(), "missing")
	assert.Error(t, err)
}

// Test: 壊れたJSONはエラー
func TestHTTPSource_FetchShop_BadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL)

	_, err := src.FetchShop(context.Background(), "broken")
	assert.Error(t, err)
}

// Test: 静的サンプルは常に同じ店舗を返す
func TestStaticSource_FetchShop(t *testing.T) {
	src := NewStaticSource()

	shop, err := src.FetchShop(context.Background(), "anything")
	assert.NoError(t, err)
	assert.Equal(t, "KFC Chicken", shop.BusinessName)
	assert.Len(t, shop.Items, 4)
	assert.Equal(t, "9876543210", shop.ContactDigits())
}
