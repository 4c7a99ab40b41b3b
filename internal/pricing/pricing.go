// Package pricing derives line totals, subtotal, tax, and grand total from
// a cart. All functions are pure.
package pricing

import "github.com/techmart/storefront/internal/cart/domain"

// TaxRate is fixed at 3.33%.
const TaxRate = 0.0333

func LineTotal(item domain.LineItem) int {
	return item.Price * item.Quantity
}

func Subtotal(cart domain.Cart) int {
	sum := 0
	for _, item := range cart {
		sum += LineTotal(item)
	}
	return sum
}

func Tax(cart domain.Cart) float64 {
	return float64(Subtotal(cart)) * TaxRate
}

func GrandTotal(cart domain.Cart) float64 {
	return float64(Subtotal(cart)) + Tax(cart)
}
