// Package cart はセッション内カートの集約。
// 行は追加順を保持し、並べ替えは行わない（注文メッセージの決定性のため）。
package cart

import (
	"app/internal/domain/model"
	"app/internal/pricing"

	"github.com/shopspring/decimal"
)

// カートの1行。商品は取り込み済みスナップショットの共有参照（読み取り専用）。
type Line struct {
	Item     model.Item
	Quantity int64
}

// LineTotal はこの行の合計金額。
func (l Line) LineTotal() decimal.Decimal {
	return pricing.LineTotal(l.Item, l.Quantity)
}

// UnitPrice は現在数量での実効単価。
func (l Line) UnitPrice() decimal.Decimal {
	return pricing.UnitPrice(l.Item, l.Quantity)
}

// ComboApplied はこの行でコンボ割引が発動しているか。
func (l Line) ComboApplied() bool {
	return pricing.ComboApplied(l.Item, l.Quantity)
}

// Cart は (商品, 数量) 行の順序付きコレクション。
// 集計値は保持せず毎回計算する（古い合計を返さないため）。
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add は1個追加する。在庫なし商品はfalse（カート不変）。
// 既存行があれば数量+1、なければ数量1の行を末尾に追加。
func (c *Cart) Add(item model.Item) bool {
	if !item.InStock {
		return false
	}
	for i := range c.lines {
		if c.lines[i].Item.ID == item.ID {
			c.lines[i].Quantity++
			return true
		}
	}
	c.lines = append(c.lines, Line{Item: item, Quantity: 1})
	return true
}

// Adjust は数量にdeltaを加える（下限0）。0になった行は削除。
// 該当IDが無ければ何もしない。
func (c *Cart) Adjust(itemID int64, delta int64) {
	for i := range c.lines {
		if c.lines[i].Item.ID != itemID {
			continue
		}
		q := c.lines[i].Quantity + delta
		if q <= 0 {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
		c.lines[i].Quantity = q
		return
	}
}

// Remove は行を無条件に削除。無ければ何もしない。
func (c *Cart) Remove(itemID int64) {
	for i := range c.lines {
		if c.lines[i].Item.ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Lines は追加順の行コピーを返す。
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// ItemCount は全行の数量合計。
func (c *Cart) ItemCount() int64 {
	var n int64
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Subtotal は全行の行合計の総和。
func (c *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.LineTotal())
	}
	return total
}

// GrandTotal は小計＋手数料（手数料は注文あたり1回）。
func (c *Cart) GrandTotal(convenienceFee decimal.Decimal) decimal.Decimal {
	return c.Subtotal().Add(convenienceFee)
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear は全行を破棄する（注文確定後のリセット用）。
func (c *Cart) Clear() {
	c.lines = nil
}
