package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"shopcart/internal/models"
)

type CartRepository interface {
	GetOrCreateCart(userID uuid.UUID) (*models.Cart, error)
	GetLineItems(cartID uuid.UUID) ([]*models.LineItem, error)
	GetLineItem(cartID, lineItemID uuid.UUID) (*models.LineItem, error)
	AddLineItem(item *models.LineItem) error
	UpdateLineItemQuantity(cartID, lineItemID uuid.UUID, quantity int) error
	DeleteLineItem(cartID, lineItemID uuid.UUID) error
	ClearCart(cartID uuid.UUID) error
}

type cartRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCartRepository(db *sqlx.DB, logger *zap.Logger) CartRepository {
	return &cartRepository{db: db, logger: logger}
}

func (r *cartRepository) GetOrCreateCart(userID uuid.UUID) (*models.Cart, error) {
	var cart models.Cart
	query := `SELECT id, user_id, created_at FROM carts WHERE user_id = $1`
	err := r.db.Get(&cart, query, userID)
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	// ON CONFLICT keeps concurrent first-use of the same cart race-free.
	insert := `INSERT INTO carts (id, user_id) VALUES ($1, $2) ON CONFLICT (user_id) DO NOTHING`
	if _, err := r.db.Exec(insert, uuid.New(), userID); err != nil {
		return nil, err
	}

	if err := r.db.Get(&cart, query, userID); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) GetLineItems(cartID uuid.UUID) ([]*models.LineItem, error) {
	var items []*models.LineItem
	query := `SELECT id, cart_id, product_name, unit_price_cents, quantity, created_at
	          FROM line_items WHERE cart_id = $1 ORDER BY created_at`
	err := r.db.Select(&items, query, cartID)
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *cartRepository) GetLineItem(cartID, lineItemID uuid.UUID) (*models.LineItem, error) {
	var item models.LineItem
	query := `SELECT id, cart_id, product_name, unit_price_cents, quantity, created_at
	          FROM line_items WHERE cart_id = $1 AND id = $2`
	err := r.db.Get(&item, query, cartID, lineItemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *cartRepository) AddLineItem(item *models.LineItem) error {
	query := `INSERT INTO line_items (id, cart_id, product_name, unit_price_cents, quantity)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	return r.db.QueryRowx(query, item.ID, item.CartID, item.ProductName, item.UnitPriceCents, item.Quantity).
		Scan(&item.CreatedAt)
}

func (r *cartRepository) UpdateLineItemQuantity(cartID, lineItemID uuid.UUID, quantity int) error {
	query := `UPDATE line_items SET quantity = $1 WHERE cart_id = $2 AND id = $3`
	_, err := r.db.Exec(query, quantity, cartID, lineItemID)
	return err
}

func (r *cartRepository) DeleteLineItem(cartID, lineItemID uuid.UUID) error {
	query := `DELETE FROM line_items WHERE cart_id = $1 AND id = $2`
	_, err := r.db.Exec(query, cartID, lineItemID)
	return err
}

func (r *cartRepository) ClearCart(cartID uuid.UUID) error {
	query := `DELETE FROM line_items WHERE cart_id = $1`
	_, err := r.db.Exec(query, cartID)
	return err
}
