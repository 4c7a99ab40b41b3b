package storage

import "github.com/techmart/storefront/internal/cart/domain"

// Seed is the fixed demo collection used whenever no readable cart exists.
// Each call returns a fresh copy so callers can mutate it.
func Seed() domain.Cart {
	return domain.Cart{
		{
			ID:       "1",
			Name:     "OnePlus Nord CE 2 5G",
			Category: "Electronics",
			Price:    400,
			Image:    "https://images.unsplash.com/photo-1592750475338-74b7b21085ab?auto=format&fit=crop&w=120&q=80",
			Quantity: 1,
		},
		{
			ID:       "2",
			Name:     "Red Printed T-Shirt",
			Category: "Fashion",
			Price:    50,
			Image:    "https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?auto=format&fit=crop&w=120&q=80",
			Quantity: 2,
		},
		{
			ID:       "3",
			Name:     "Redmi Note 11 Pro + 5G",
			Category: "Electronics",
			Price:    400,
			Image:    "https://m.media-amazon.com/images/I/71lx0qz7rFL._UF1000,1000_QL80_.jpg",
			Quantity: 1,
		},
	}
}
