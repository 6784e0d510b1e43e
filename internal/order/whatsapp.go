package order

import (
	"net/url"
	"strings"

	"app/internal/domain/model"
)

// WhatsAppURL は送信先リンクを組み立てる。
// 宛先は店舗の連絡先番号（数字のみ）。本文はURLエンコード済みテキスト。
// スペースは "+" ではなく "%20" にする（wa.me側の解釈に合わせる）。
func WhatsAppURL(shop model.Shop, message string) string {
	escaped := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return "https://wa.me/" + shop.ContactDigits() + "?text=" + escaped
}
