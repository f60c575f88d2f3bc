package service

import (
	"github.com/google/uuid"

	"shopcart/internal/models"
)

type mockUserRepo struct {
	createUserFn     func(*models.User) error
	getByEmailFn     func(string) (*models.User, error)
	getByIDFn        func(uuid.UUID) (*models.User, error)
	updateProfileFn  func(uuid.UUID, string, string) error
	updatePasswordFn func(uuid.UUID, string) error
	deleteUserFn     func(uuid.UUID) error
}

func (m *mockUserRepo) CreateUser(u *models.User) error {
	if m.createUserFn != nil {
		return m.createUserFn(u)
	}
	return nil
}

func (m *mockUserRepo) GetUserByEmail(email string) (*models.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(email)
	}
	return nil, nil
}

func (m *mockUserRepo) GetUserByID(id uuid.UUID) (*models.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateProfile(id uuid.UUID, fullName, preferredName string) error {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(id, fullName, preferredName)
	}
	return nil
}

func (m *mockUserRepo) UpdatePassword(id uuid.UUID, passwordHash string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(id, passwordHash)
	}
	return nil
}

func (m *mockUserRepo) DeleteUser(id uuid.UUID) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(id)
	}
	return nil
}

type mockCartRepo struct {
	getOrCreateCartFn func(uuid.UUID) (*models.Cart, error)
	getLineItemsFn    func(uuid.UUID) ([]*models.LineItem, error)
	getLineItemFn     func(uuid.UUID, uuid.UUID) (*models.LineItem, error)
	addLineItemFn     func(*models.LineItem) error
	updateQuantityFn  func(uuid.UUID, uuid.UUID, int) error
	deleteLineItemFn  func(uuid.UUID, uuid.UUID) error
	clearCartFn       func(uuid.UUID) error
}

func (m *mockCartRepo) GetOrCreateCart(userID uuid.UUID) (*models.Cart, error) {
	if m.getOrCreateCartFn != nil {
		return m.getOrCreateCartFn(userID)
	}
	return &models.Cart{ID: uuid.New(), UserID: userID}, nil
}

func (m *mockCartRepo) GetLineItems(cartID uuid.UUID) ([]*models.LineItem, error) {
	if m.getLineItemsFn != nil {
		return m.getLineItemsFn(cartID)
	}
	return nil, nil
}

func (m *mockCartRepo) GetLineItem(cartID, lineItemID uuid.UUID) (*models.LineItem, error) {
	if m.getLineItemFn != nil {
		return m.getLineItemFn(cartID, lineItemID)
	}
	return nil, nil
}

func (m *mockCartRepo) AddLineItem(item *models.LineItem) error {
	if m.addLineItemFn != nil {
		return m.addLineItemFn(item)
	}
	return nil
}

func (m *mockCartRepo) UpdateLineItemQuantity(cartID, lineItemID uuid.UUID, quantity int) error {
	if m.updateQuantityFn != nil {
		return m.updateQuantityFn(cartID, lineItemID, quantity)
	}
	return nil
}

func (m *mockCartRepo) DeleteLineItem(cartID, lineItemID uuid.UUID) error {
	if m.deleteLineItemFn != nil {
		return m.deleteLineItemFn(cartID, lineItemID)
	}
	return nil
}

func (m *mockCartRepo) ClearCart(cartID uuid.UUID) error {
	if m.clearCartFn != nil {
		return m.clearCartFn(cartID)
	}
	return nil
}
