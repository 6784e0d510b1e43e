// Package order は確定カートを注文メッセージ（テキスト）に直列化する。
// 同じカート内容・店舗情報ならバイト単位で同一の出力になること。
package order

import (
	"fmt"
	"strings"

	"app/internal/cart"
	"app/internal/domain/model"
)

// 金額表示は全て小数2桁・四捨五入（StringFixedは半数切り上げ）。
// 中間計算では丸めないので、ここが唯一の丸め地点になる。

// FormatSummary はカートと店舗情報から注文サマリを整形する。カートは変更しない。
func FormatSummary(c *cart.Cart, shop model.Shop) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Order for %s\n\n", shop.BusinessName)

	for i, l := range c.Lines() {
		combo := ""
		if l.ComboApplied() {
			combo = " (combo applied)"
		}
		fmt.Fprintf(&b, "%d. %s: ₹%s × %d = ₹%s%s\n",
			i+1, l.Item.Name,
			l.UnitPrice().StringFixed(2), l.Quantity,
			l.LineTotal().StringFixed(2), combo)
	}

	fmt.Fprintf(&b, "\nSubtotal: ₹%s", c.Subtotal().StringFixed(2))
	fmt.Fprintf(&b, "\nConvenience: ₹%s", shop.ConvenienceFee.StringFixed(2))
	fmt.Fprintf(&b, "\nTotal: ₹%s", c.GrandTotal(shop.ConvenienceFee).StringFixed(2))

	return b.String()
}
