package orderControllers_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	orderControllers "github.com/AmrIbrahim41/smart-shop0/controllers/order"
	"github.com/AmrIbrahim41/smart-shop0/models"
)

func TestLineTotal(t *testing.T) {
	cases := []struct {
		name  string
		price string
		qty   int
		want  string
	}{
		{"whole units", "100.00", 2, "200.00"},
		{"cents stay exact", "19.99", 3, "59.97"},
		{"classic float trap", "0.10", 3, "0.30"},
		{"single unit", "7.25", 1, "7.25"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := orderControllers.LineTotal(decimal.RequireFromString(tc.price), tc.qty)
			assert.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"LineTotal(%s, %d) = %s, want %s", tc.price, tc.qty, got, tc.want)
		})
	}
}

func TestOrderTotal(t *testing.T) {
	got := orderControllers.OrderTotal(dec("160.00"), dec("10.00"), dec("5.00"))
	assert.True(t, got.Equal(dec("175.00")), "got %s", got)

	zero := orderControllers.OrderTotal(decimal.Zero, decimal.Zero, decimal.Zero)
	assert.True(t, zero.IsZero())
}

func TestEffectivePrice(t *testing.T) {
	t.Run("discount wins when positive", func(t *testing.T) {
		p := models.Product{Price: dec("100.00"), DiscountPrice: dec("80.00")}
		assert.True(t, p.EffectivePrice().Equal(dec("80.00")))
	})

	t.Run("zero discount falls back to list price", func(t *testing.T) {
		p := models.Product{Price: dec("100.00")}
		assert.True(t, p.EffectivePrice().Equal(dec("100.00")))
	})

	t.Run("negative discount is ignored", func(t *testing.T) {
		p := models.Product{Price: dec("100.00"), DiscountPrice: dec("-1.00")}
		assert.True(t, p.EffectivePrice().Equal(dec("100.00")))
	})
}
