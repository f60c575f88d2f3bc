package models

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID        uuid.UUID `db:"id" json:"id"`
	UserID    uuid.UUID `db:"user_id" json:"userId"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

type LineItem struct {
	ID             uuid.UUID `db:"id" json:"id"`
	CartID         uuid.UUID `db:"cart_id" json:"cartId"`
	ProductName    string    `db:"product_name" json:"productName"`
	UnitPriceCents int64     `db:"unit_price_cents" json:"unitPriceCents"`
	Quantity       int       `db:"quantity" json:"quantity"`
	CreatedAt      time.Time `db:"created_at" json:"createdAt"`
}
