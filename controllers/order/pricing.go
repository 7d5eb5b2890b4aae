package orderControllers

import (
	"github.com/shopspring/decimal"
)

// LineTotal is the charge for one order line: effective unit price times
// quantity. Quantities are validated positive before pricing runs.
func LineTotal(unitPrice decimal.Decimal, qty int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(qty)))
}

// OrderTotal combines the accumulated line totals with tax and shipping.
// All arithmetic stays in decimal so totals are exact to the cent.
func OrderTotal(itemsTotal, taxPrice, shippingPrice decimal.Decimal) decimal.Decimal {
	return itemsTotal.Add(taxPrice).Add(shippingPrice)
}
