package usecase

import (
	"context"
	"net/http"
	"strings"

	"app/internal/checkout"
	"app/internal/domain/model"
	repo "app/internal/repository"
)

// CartUsecase はセッションカートの操作。
// カート本体の規則（追加順保持・数量下限0・在庫ガード）はcartパッケージ側。
type CartUsecase struct {
	shop     model.Shop
	sessions repo.SessionRepository
}

// DI
func NewCartUsecase(shop model.Shop, sessions repo.SessionRepository) *CartUsecase {
	return &CartUsecase{
		shop:     shop,
		sessions: sessions,
	}
}

type CartLineResponse struct {
	ItemID       int64  `json:"item_id"`
	Name         string `json:"name"`
	UnitPrice    string `json:"unit_price"`
	Quantity     int64  `json:"quantity"`
	LineTotal    string `json:"line_total"`
	ComboApplied bool   `json:"combo_applied"`
}

type CartResponse struct {
	Items       []CartLineResponse `json:"items"`
	ItemCount   int64              `json:"item_count"`
	Subtotal    string             `json:"subtotal"`
	Convenience string             `json:"convenience"`
	Total       string             `json:"total"`
}

// POST /cart
type AddCartInput struct {
	ItemID int64
}

// PATCH /cart/{id}
type AdjustCartInput struct {
	Delta int64
}

// GetCart はカート取得（セッションが無ければ空で作る）。
func (u *CartUsecase) GetCart(ctx context.Context, sessionID string) (CartResponse, error) {
	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}
	return u.buildCartResponse(sess), nil
}

// AddToCart は商品を1個追加（同一商品は数量加算）。
func (u *CartUsecase) AddToCart(ctx context.Context, sessionID string, in AddCartInput) (CartResponse, error) {
	if in.ItemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid item_id")
	}

	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	item, ok := u.findItem(in.ItemID)
	if !ok {
		return CartResponse{}, NewHTTPError(http.StatusNotFound, "not found")
	}

	if !sess.Cart.Add(item) {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "out of stock")
	}

	return u.buildCartResponse(sess), nil
}

// AdjustItem は数量変更。結果0以下で行削除。存在しないIDは何もせず現状を返す。
func (u *CartUsecase) AdjustItem(ctx context.Context, sessionID string, itemID int64, in AdjustCartInput) (CartResponse, error) {
	if itemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	sess.Cart.Adjust(itemID, in.Delta)
	return u.buildCartResponse(sess), nil
}

// RemoveItem は行削除。存在しないIDは何もせず現状を返す。
func (u *CartUsecase) RemoveItem(ctx context.Context, sessionID string, itemID int64) (CartResponse, error) {
	if itemID <= 0 {
		return CartResponse{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	sess, err := u.session(ctx, sessionID)
	if err != nil {
		return CartResponse{}, err
	}

	sess.Cart.Remove(itemID)
	return u.buildCartResponse(sess), nil
}

func (u *CartUsecase) session(ctx context.Context, sessionID string) (*checkout.Session, error) {
	if strings.TrimSpace(sessionID) == "" {
		return nil, NewHTTPError(http.StatusUnauthorized, "no session")
	}
	sess, err := u.sessions.GetOrCreate(ctx, sessionID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "session error")
	}
	return sess, nil
}

func (u *CartUsecase) findItem(itemID int64) (model.Item, bool) {
	for _, it := range u.shop.Items {
		if it.ID == itemID {
			return it, true
		}
	}
	return model.Item{}, false
}

// 現在の行からレスポンスを組み立てる。集計は毎回計算（キャッシュしない）。
func (u *CartUsecase) buildCartResponse(sess *checkout.Session) CartResponse {
	lines := sess.Cart.Lines()

	respItems := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		respItems = append(respItems, CartLineResponse{
			ItemID:       l.Item.ID,
			Name:         l.Item.Name,
			UnitPrice:    l.UnitPrice().StringFixed(2),
			Quantity:     l.Quantity,
			LineTotal:    l.LineTotal().StringFixed(2),
			ComboApplied: l.ComboApplied(),
		})
	}

	return CartResponse{
		Items:       respItems,
		ItemCount:   sess.Cart.ItemCount(),
		Subtotal:    sess.Cart.Subtotal().StringFixed(2),
		Convenience: u.shop.ConvenienceFee.StringFixed(2),
		Total:       sess.Cart.GrandTotal(u.shop.ConvenienceFee).StringFixed(2),
	}
}
