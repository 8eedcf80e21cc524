package service

import (
	"github.com/xablau3666/loja/internal/models"
	"github.com/xablau3666/loja/internal/money"
)

// Cart is the ordered snapshot list held by a session. Quantity is
// represented by repeated entries, not a count field.
type Cart []models.CartItem

// Add appends a snapshot of the product. Repeated adds of the same
// product append duplicate entries.
func (c Cart) Add(p *models.Product) Cart {
	return append(c, models.Snapshot(p))
}

// Remove drops every entry with the given product id, not just one.
func (c Cart) Remove(productID uint) Cart {
	out := make(Cart, 0, len(c))
	for _, item := range c {
		if item.ProductID != productID {
			out = append(out, item)
		}
	}
	return out
}

// Total sums the snapshot prices. An empty or nil cart totals zero.
func (c Cart) Total() money.Money {
	total := money.Zero()
	for _, item := range c {
		total = total.Add(item.Price)
	}
	return total
}
