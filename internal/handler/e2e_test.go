package handler

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"shopcart/internal/middleware"
	"shopcart/internal/models"
	"shopcart/internal/repository"
	"shopcart/internal/service"
)

// memUserRepo backs the full register → login → profile flow without a
// database.
type memUserRepo struct {
	byEmail map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: map[string]*models.User{}}
}

func (r *memUserRepo) CreateUser(u *models.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	stored := *u
	r.byEmail[u.Email] = &stored
	return nil
}

func (r *memUserRepo) GetUserByEmail(email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (r *memUserRepo) GetUserByID(id uuid.UUID) (*models.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) UpdateProfile(id uuid.UUID, fullName, preferredName string) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.FullName = fullName
			u.PreferredName = preferredName
		}
	}
	return nil
}

func (r *memUserRepo) UpdatePassword(id uuid.UUID, passwordHash string) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.PasswordHash = passwordHash
		}
	}
	return nil
}

func (r *memUserRepo) DeleteUser(id uuid.UUID) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

func newAccountRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()
	tokens := newTestTokens(t)
	users := newMemUserRepo()

	authService := service.NewAuthService(users, tokens, logger)
	userService := service.NewUserService(users, logger)
	authHandler := NewAuthHandler(authService, logger)
	userHandler := NewUserHandler(userService, logger)

	router := gin.New()
	router.POST("/auth/register", authHandler.Register)
	router.POST("/auth/login", authHandler.Login)
	guard := middleware.AuthMiddleware(tokens, logger)
	router.GET("/profile/:userId", guard, userHandler.ShowProfile)
	return router
}

func TestAccountFlow(t *testing.T) {
	router := newAccountRouter(t)

	// Register
	w := doJSON(router, http.MethodPost, "/auth/register",
		`{"fullName":"Ada Lovelace","preferredName":"Ada","email":"a@x.com","password":"Pw1!"}`, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate register conflicts and creates no second record
	w = doJSON(router, http.MethodPost, "/auth/register",
		`{"fullName":"Impostor","preferredName":"Imp","email":"a@x.com","password":"Other1!!"}`, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Unknown email and wrong password return identical responses
	wUnknown := doJSON(router, http.MethodPost, "/auth/login",
		`{"email":"b@x.com","password":"Pw1!"}`, nil)
	wWrongPw := doJSON(router, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"WrongPw1!"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, wUnknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wWrongPw.Code)
	assert.Equal(t, wUnknown.Body.String(), wWrongPw.Body.String())

	// Login
	w = doJSON(router, http.MethodPost, "/auth/login",
		`{"email":"a@x.com","password":"Pw1!"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var loginBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &loginBody))
	require.NotEmpty(t, loginBody.Token)

	// Profile with the issued token
	w = doJSON(router, http.MethodGet, "/profile/ignored", "",
		map[string]string{"Authorization": "Bearer " + loginBody.Token})
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"fullName":"Ada Lovelace","preferredName":"Ada","email":"a@x.com"}`, w.Body.String())

	// Profile with the token altered by one character
	parts := strings.Split(loginBody.Token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	w = doJSON(router, http.MethodGet, "/profile/ignored", "",
		map[string]string{"Authorization": "Bearer " + tampered})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
