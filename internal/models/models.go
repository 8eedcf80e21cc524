package models

import (
	"github.com/xablau3666/loja/internal/money"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string `gorm:"not null"                 json:"name"`
	Email        string `gorm:"unique;not null"          json:"email"`
	PasswordHash string `gorm:"not null"                 json:"-"`
	IsAdmin      bool   `gorm:"not null;default:false"   json:"is_admin"`
}

type Product struct {
	ID          uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string      `gorm:"not null"                 json:"name"`
	Price       money.Money `gorm:"type:decimal(12,2)"       json:"price"`
	Description string      `gorm:"not null"                 json:"description"`
	Image       string      `json:"image"`
	Category    string      `gorm:"index"                    json:"category"`
}

// CartItem is a snapshot of a product taken when it was added to the
// cart. It lives inside the session, not in the database, so later
// edits or deletes of the product never touch it.
type CartItem struct {
	ProductID   uint        `json:"id"`
	Name        string      `json:"name"`
	Price       money.Money `json:"price"`
	Description string      `json:"description"`
	Image       string      `json:"image"`
}

// Snapshot copies the cart-relevant fields of a product.
func Snapshot(p *Product) CartItem {
	return CartItem{
		ProductID:   p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
	}
}
