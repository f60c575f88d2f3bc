package handler

import (
	"github.com/google/uuid"

	"shopcart/internal/models"
	"shopcart/internal/service"
)

type mockAuthService struct {
	registerFn       func(fullName, preferredName, email, plaintext string) (*models.User, error)
	loginFn          func(email, plaintext string) (string, error)
	changePasswordFn func(email, currentPassword, newPassword string) error
}

func (m *mockAuthService) Register(fullName, preferredName, email, plaintext string) (*models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(fullName, preferredName, email, plaintext)
	}
	return &models.User{ID: uuid.New(), Email: email, FullName: fullName, PreferredName: preferredName}, nil
}

func (m *mockAuthService) Login(email, plaintext string) (string, error) {
	if m.loginFn != nil {
		return m.loginFn(email, plaintext)
	}
	return "", service.ErrInvalidCredentials
}

func (m *mockAuthService) ChangePassword(email, currentPassword, newPassword string) error {
	if m.changePasswordFn != nil {
		return m.changePasswordFn(email, currentPassword, newPassword)
	}
	return nil
}

type mockUserService struct {
	profileFn     func(email string) (*models.Profile, error)
	editProfileFn func(email, fullName, preferredName string) error
	deleteUserFn  func(email string) error
}

func (m *mockUserService) Profile(email string) (*models.Profile, error) {
	if m.profileFn != nil {
		return m.profileFn(email)
	}
	return nil, service.ErrUserNotFound
}

func (m *mockUserService) EditProfile(email, fullName, preferredName string) error {
	if m.editProfileFn != nil {
		return m.editProfileFn(email, fullName, preferredName)
	}
	return nil
}

func (m *mockUserService) DeleteUser(email string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(email)
	}
	return nil
}

type mockCartService struct {
	addItemFn    func(email, productName string, unitPriceCents int64, quantity int) (*models.LineItem, error)
	showCartFn   func(email string) (*service.CartView, error)
	updateItemFn func(email string, lineItemID uuid.UUID, quantity int) (*models.LineItem, error)
	removeItemFn func(email string, lineItemID uuid.UUID) error
	checkoutFn   func(email string) (*service.OrderSummary, error)
}

func (m *mockCartService) AddItem(email, productName string, unitPriceCents int64, quantity int) (*models.LineItem, error) {
	if m.addItemFn != nil {
		return m.addItemFn(email, productName, unitPriceCents, quantity)
	}
	return &models.LineItem{ID: uuid.New(), ProductName: productName, UnitPriceCents: unitPriceCents, Quantity: quantity}, nil
}

func (m *mockCartService) ShowCart(email string) (*service.CartView, error) {
	if m.showCartFn != nil {
		return m.showCartFn(email)
	}
	return &service.CartView{}, nil
}

func (m *mockCartService) UpdateItem(email string, lineItemID uuid.UUID, quantity int) (*models.LineItem, error) {
	if m.updateItemFn != nil {
		return m.updateItemFn(email, lineItemID, quantity)
	}
	return nil, service.ErrLineItemNotFound
}

func (m *mockCartService) RemoveItem(email string, lineItemID uuid.UUID) error {
	if m.removeItemFn != nil {
		return m.removeItemFn(email, lineItemID)
	}
	return nil
}

func (m *mockCartService) Checkout(email string) (*service.OrderSummary, error) {
	if m.checkoutFn != nil {
		return m.checkoutFn(email)
	}
	return nil, service.ErrCartEmpty
}
