// Package render projects the cart onto the page. Every render is a full
// replace of the row set; state and view can never partially diverge, which
// is cheap at the cart sizes this store sees.
package render

import (
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/techmart/storefront/internal/cart/domain"
	"github.com/techmart/storefront/internal/notify"
	"github.com/techmart/storefront/internal/pricing"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

type Renderer struct {
	tmpl  *template.Template
	money *pricing.Formatter
}

func New() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse cart templates: %w", err)
	}
	return &Renderer{tmpl: tmpl, money: pricing.NewFormatter()}, nil
}

type row struct {
	Index     int
	Item      domain.LineItem
	UnitPrice string
	LineTotal string
}

type pageData struct {
	Empty        bool
	Rows         []row
	Subtotal     string
	Tax          string
	Total        string
	Count        int
	Notification notify.Message
}

// Page renders the whole cart page for the given cart state. An empty cart
// hides the table and summary and shows the empty message; the count badge
// is refreshed either way. Each control carries the item's positional index
// in the current order.
func (r *Renderer) Page(cart domain.Cart, msg notify.Message) (string, error) {
	data := pageData{
		Empty:        len(cart) == 0,
		Count:        cart.TotalQuantity(),
		Notification: msg,
	}

	if !data.Empty {
		data.Rows = make([]row, 0, len(cart))
		for i, item := range cart {
			data.Rows = append(data.Rows, row{
				Index:     i,
				Item:      item,
				UnitPrice: r.money.Price(item.Price),
				LineTotal: r.money.Price(pricing.LineTotal(item)),
			})
		}
		data.Subtotal = r.money.Amount(float64(pricing.Subtotal(cart)))
		data.Tax = r.money.Amount(pricing.Tax(cart))
		data.Total = r.money.Amount(pricing.GrandTotal(cart))
	}

	var b strings.Builder
	if err := r.tmpl.ExecuteTemplate(&b, "cart", data); err != nil {
		return "", fmt.Errorf("render cart page: %w", err)
	}
	return b.String(), nil
}
