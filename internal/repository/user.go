package repository

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"shopcart/internal/models"
)

// ErrDuplicateEmail is returned when an insert violates the unique email
// constraint. The constraint, not the service-level pre-check, is what
// guarantees uniqueness under concurrent registrations.
var ErrDuplicateEmail = errors.New("email already registered")

const pqUniqueViolation = "23505"

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id uuid.UUID) (*models.User, error)
	UpdateProfile(id uuid.UUID, fullName, preferredName string) error
	UpdatePassword(id uuid.UUID, passwordHash string) error
	DeleteUser(id uuid.UUID) error
}

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *sqlx.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) CreateUser(user *models.User) error {
	query := `INSERT INTO users (id, email, full_name, preferred_name, password_hash)
	          VALUES ($1, $2, $3, $4, $5) RETURNING created_at`
	err := r.db.QueryRowx(query, user.ID, user.Email, user.FullName, user.PreferredName, user.PasswordHash).
		Scan(&user.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, full_name, preferred_name, password_hash, created_at FROM users WHERE email = $1`
	err := r.db.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil // user not found
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	query := `SELECT id, email, full_name, preferred_name, password_hash, created_at FROM users WHERE id = $1`
	err := r.db.Get(&user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) UpdateProfile(id uuid.UUID, fullName, preferredName string) error {
	query := `UPDATE users SET full_name = $1, preferred_name = $2 WHERE id = $3`
	_, err := r.db.Exec(query, fullName, preferredName, id)
	return err
}

func (r *userRepository) UpdatePassword(id uuid.UUID, passwordHash string) error {
	query := `UPDATE users SET password_hash = $1 WHERE id = $2`
	_, err := r.db.Exec(query, passwordHash, id)
	return err
}

func (r *userRepository) DeleteUser(id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}
