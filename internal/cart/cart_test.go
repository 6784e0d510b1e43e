package cart

import (
	"math/rand"
	"testing"

	"app/internal/domain/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testItem(id int64, rate int64, discount int64, comboQty int64, comboDiscount int64) model.Item {
	return model.Item{
		ID:                   id,
		Name:                 "item",
		Rate:                 decimal.NewFromInt(rate),
		DiscountPercent:      discount,
		ComboQuantity:        comboQty,
		ComboDiscountPercent: comboDiscount,
		InStock:              true,
	}
}

// Test: 新規追加は末尾、同一商品は数量加算
func TestCart_Add(t *testing.T) {
	c := New()

	a := testItem(1, 100, 0, 0, 0)
	b := testItem(2, 200, 0, 0, 0)

	assert.True(t, c.Add(a))
	assert.True(t, c.Add(b))
	assert.True(t, c.Add(a))

	lines := c.Lines()
	assert.Len(t, lines, 2)
	assert.Equal(t, int64(1), lines[0].Item.ID)
	assert.Equal(t, int64(2), lines[0].Quantity)
	assert.Equal(t, int64(2), lines[1].Item.ID)
	assert.Equal(t, int64(1), lines[1].Quantity)
	assert.Equal(t, int64(3), c.ItemCount())
}

// Test: 在庫なしは追加不可（カート不変）
func TestCart_Add_OutOfStock(t *testing.T) {
	c := New()

	out := testItem(1, 100, 0, 0, 0)
	out.InStock = false

	assert.False(t, c.Add(out))
	assert.True(t, c.IsEmpty())
}

// Test: 追加→削除で元の状態に戻る
func TestCart_AddThenRemove_Idempotent(t *testing.T) {
	c := New()
	c.Add(testItem(1, 100, 0, 0, 0))

	before := c.Lines()

	x := testItem(9, 500, 10, 0, 0)
	c.Add(x)
	c.Remove(x.ID)

	assert.Equal(t, before, c.Lines())
}

// Test: +1→-1で数量は変わらない
func TestCart_Adjust_RoundTrip(t *testing.T) {
	c := New()
	it := testItem(1, 100, 0, 0, 0)
	c.Add(it)
	c.Add(it)

	c.Adjust(1, +1)
	c.Adjust(1, -1)

	lines := c.Lines()
	assert.Len(t, lines, 1)
	assert.Equal(t, int64(2), lines[0].Quantity)
}

// Test: 数量が0以下になったら行ごと削除（数量1からdelta -5）
func TestCart_Adjust_ClampedBelowZero(t *testing.T) {
	c := New()
	c.Add(testItem(1, 100, 0, 0, 0))

	c.Adjust(1, -5)

	assert.True(t, c.IsEmpty())
	for _, l := range c.Lines() {
		assert.NotEqual(t, int64(1), l.Item.ID)
	}
}

// Test: 存在しないIDのAdjust/Removeは何もしない
func TestCart_Adjust_UnknownID_NoOp(t *testing.T) {
	c := New()
	c.Add(testItem(1, 100, 0, 0, 0))

	before := c.Lines()
	c.Adjust(999, +3)
	c.Remove(999)

	assert.Equal(t, before, c.Lines())
}

// Test: コンボは行の合計数量で発動・解除される
func TestCart_ComboUnlockedAndRevokedByQuantity(t *testing.T) {
	c := New()
	it := testItem(1, 249, 10, 3, 15)

	c.Add(it)
	c.Add(it)
	assert.False(t, c.Lines()[0].ComboApplied())
	assert.Equal(t, "224.10", c.Lines()[0].UnitPrice().StringFixed(2))

	// 3個目でコンボ発動（行全体に遡って適用）
	c.Add(it)
	assert.True(t, c.Lines()[0].ComboApplied())
	assert.Equal(t, "190.49", c.Lines()[0].UnitPrice().StringFixed(2))

	// 減らすと解除
	c.Adjust(1, -1)
	assert.False(t, c.Lines()[0].ComboApplied())
}

// Test: subtotalは常に各行合計の総和（ランダムカート）
func TestCart_Subtotal_MatchesLineSum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 50; trial++ {
		c := New()

		n := 1 + rng.Intn(6)
		for i := 0; i < n; i++ {
			it := testItem(
				int64(i+1),
				int64(1+rng.Intn(1000)),
				int64(rng.Intn(101)),
				int64(rng.Intn(5)),
				int64(rng.Intn(101)),
			)
			adds := 1 + rng.Intn(5)
			for j := 0; j < adds; j++ {
				c.Add(it)
			}
		}

		sum := decimal.Zero
		for _, l := range c.Lines() {
			sum = sum.Add(l.LineTotal())
		}
		assert.True(t, c.Subtotal().Equal(sum), "trial=%d", trial)
	}
}

// Test: 合計=小計+手数料（手数料は1回だけ）
func TestCart_GrandTotal(t *testing.T) {
	c := New()
	it := testItem(1, 249, 10, 3, 15)
	c.Add(it)
	c.Add(it)
	c.Add(it)

	fee := decimal.NewFromInt(5)

	// 行合計571.455 + 5 = 576.455 → 表示576.46
	assert.True(t, c.GrandTotal(fee).Equal(c.Subtotal().Add(fee)))
	assert.Equal(t, "576.46", c.GrandTotal(fee).StringFixed(2))

	// 手数料0でも成立
	assert.True(t, c.GrandTotal(decimal.Zero).Equal(c.Subtotal()))
}

// Test: Clearで空になる
func TestCart_Clear(t *testing.T) {
	c := New()
	c.Add(testItem(1, 100, 0, 0, 0))
	c.Add(testItem(2, 200, 0, 0, 0))

	c.Clear()

	assert.True(t, c.IsEmpty())
	assert.Equal(t, int64(0), c.ItemCount())
	assert.True(t, c.Subtotal().Equal(decimal.Zero))
}

// Test: Linesはコピーを返す（外から書き換えられない）
func TestCart_Lines_ReturnsCopy(t *testing.T) {
	c := New()
	c.Add(testItem(1, 100, 0, 0, 0))

	lines := c.Lines()
	lines[0].Quantity = 999

	assert.Equal(t, int64(1), c.Lines()[0].Quantity)
}
