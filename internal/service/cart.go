package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"shopcart/internal/models"
	"shopcart/internal/repository"
)

var (
	ErrLineItemNotFound = errors.New("line item not found")
	ErrCartEmpty        = errors.New("cart is empty")
)

// CartView is the cart as returned to the client.
type CartView struct {
	CartID     uuid.UUID          `json:"cartId"`
	Items      []*models.LineItem `json:"items"`
	TotalCents int64              `json:"totalCents"`
}

// OrderSummary is the result of a checkout.
type OrderSummary struct {
	CartID     uuid.UUID `json:"cartId"`
	ItemCount  int       `json:"itemCount"`
	TotalCents int64     `json:"totalCents"`
}

type CartService interface {
	AddItem(email, productName string, unitPriceCents int64, quantity int) (*models.LineItem, error)
	ShowCart(email string) (*CartView, error)
	UpdateItem(email string, lineItemID uuid.UUID, quantity int) (*models.LineItem, error)
	RemoveItem(email string, lineItemID uuid.UUID) error
	Checkout(email string) (*OrderSummary, error)
}

type cartService struct {
	users  repository.UserRepository
	carts  repository.CartRepository
	logger *zap.Logger
}

func NewCartService(users repository.UserRepository, carts repository.CartRepository, logger *zap.Logger) CartService {
	return &cartService{users: users, carts: carts, logger: logger}
}

// cartFor resolves the caller's cart from the claims email. The :userId
// path segment never participates.
func (s *cartService) cartFor(email string) (*models.Cart, error) {
	user, err := s.users.GetUserByEmail(NormalizeEmail(email))
	if err != nil {
		s.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	cart, err := s.carts.GetOrCreateCart(user.ID)
	if err != nil {
		s.logger.Error("Failed to get cart", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}
	return cart, nil
}

func (s *cartService) AddItem(email, productName string, unitPriceCents int64, quantity int) (*models.LineItem, error) {
	cart, err := s.cartFor(email)
	if err != nil {
		return nil, err
	}

	item := &models.LineItem{
		ID:             uuid.New(),
		CartID:         cart.ID,
		ProductName:    productName,
		UnitPriceCents: unitPriceCents,
		Quantity:       quantity,
	}
	if err := s.carts.AddLineItem(item); err != nil {
		s.logger.Error("Failed to add line item", zap.Error(err))
		return nil, fmt.Errorf("failed to add line item: %w", err)
	}
	return item, nil
}

func (s *cartService) ShowCart(email string) (*CartView, error) {
	cart, err := s.cartFor(email)
	if err != nil {
		return nil, err
	}

	items, err := s.carts.GetLineItems(cart.ID)
	if err != nil {
		s.logger.Error("Failed to get line items", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve line items: %w", err)
	}

	return &CartView{
		CartID:     cart.ID,
		Items:      items,
		TotalCents: totalCents(items),
	}, nil
}

func (s *cartService) UpdateItem(email string, lineItemID uuid.UUID, quantity int) (*models.LineItem, error) {
	cart, err := s.cartFor(email)
	if err != nil {
		return nil, err
	}

	item, err := s.carts.GetLineItem(cart.ID, lineItemID)
	if err != nil {
		s.logger.Error("Failed to get line item", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve line item: %w", err)
	}
	if item == nil {
		return nil, ErrLineItemNotFound
	}

	if err := s.carts.UpdateLineItemQuantity(cart.ID, lineItemID, quantity); err != nil {
		s.logger.Error("Failed to update line item", zap.Error(err))
		return nil, fmt.Errorf("failed to update line item: %w", err)
	}
	item.Quantity = quantity
	return item, nil
}

// RemoveItem is idempotent: removing an absent line item succeeds.
func (s *cartService) RemoveItem(email string, lineItemID uuid.UUID) error {
	cart, err := s.cartFor(email)
	if err != nil {
		return err
	}

	if err := s.carts.DeleteLineItem(cart.ID, lineItemID); err != nil {
		s.logger.Error("Failed to delete line item", zap.Error(err))
		return fmt.Errorf("failed to delete line item: %w", err)
	}
	return nil
}

func (s *cartService) Checkout(email string) (*OrderSummary, error) {
	cart, err := s.cartFor(email)
	if err != nil {
		return nil, err
	}

	items, err := s.carts.GetLineItems(cart.ID)
	if err != nil {
		s.logger.Error("Failed to get line items", zap.Error(err))
		return nil, fmt.Errorf("failed to retrieve line items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	summary := &OrderSummary{
		CartID:     cart.ID,
		ItemCount:  len(items),
		TotalCents: totalCents(items),
	}

	if err := s.carts.ClearCart(cart.ID); err != nil {
		s.logger.Error("Failed to clear cart", zap.Error(err))
		return nil, fmt.Errorf("failed to clear cart: %w", err)
	}

	s.logger.Info("Checkout completed.",
		zap.String("cartId", cart.ID.String()),
		zap.Int("items", summary.ItemCount),
		zap.Int64("totalCents", summary.TotalCents))
	return summary, nil
}

func totalCents(items []*models.LineItem) int64 {
	var total int64
	for _, item := range items {
		total += item.UnitPriceCents * int64(item.Quantity)
	}
	return total
}
