package domain

// MinQuantity is the floor for a line item quantity. Mutations that would
// drive a quantity below it are clamped; removal is always explicit.
const MinQuantity = 1

// LineItem is one product entry in the cart. Price is fixed at the moment
// the item enters the cart; later catalog price changes do not touch it.
type LineItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int    `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// ProductDescriptor is what the catalog page hands over when an add-to-cart
// control fires. The price is whatever was painted on screen, not a verified
// catalog value.
type ProductDescriptor struct {
	Name     string
	Category string
	Price    int
	Image    string
}

// Cart is the ordered collection of line items. Order is insertion order.
type Cart []LineItem

// TotalQuantity sums quantities across all line items.
func (c Cart) TotalQuantity() int {
	total := 0
	for _, item := range c {
		total += item.Quantity
	}
	return total
}

// Add merges the descriptor into the cart. An existing item with the same
// (name, price) pair gets its quantity bumped by one; otherwise a new item
// with the given id and quantity one is appended.
func (c Cart) Add(d ProductDescriptor, id string) Cart {
	for i, item := range c {
		if item.Name == d.Name && item.Price == d.Price {
			c[i].Quantity++
			return c
		}
	}

	return append(c, LineItem{
		ID:       id,
		Name:     d.Name,
		Category: d.Category,
		Price:    d.Price,
		Image:    d.Image,
		Quantity: 1,
	})
}

// Remove deletes the item at index, shifting subsequent items down.
func (c Cart) Remove(index int) Cart {
	return append(c[:index], c[index+1:]...)
}

// Clone returns an independent copy so callers can mutate freely.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}

// ClampQuantity forces q onto the valid range.
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	return q
}
