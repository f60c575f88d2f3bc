package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type User struct {
	ID            uuid.UUID `db:"id" json:"id"`
	Email         string    `db:"email" json:"email"`
	FullName      string    `db:"full_name" json:"fullName"`
	PreferredName string    `db:"preferred_name" json:"preferredName"`
	PasswordHash  string    `db:"password_hash" json:"-"`
	CreatedAt     time.Time `db:"created_at" json:"createdAt"`
}

// Profile is the client-visible projection of a user record.
type Profile struct {
	FullName      string `json:"fullName"`
	PreferredName string `json:"preferredName"`
	Email         string `json:"email"`
}

// Claims defines the structure of the JWT claims.
type Claims struct {
	FullName      string `json:"fullName"`
	PreferredName string `json:"preferredName"`
	Email         string `json:"email"`
	jwt.RegisteredClaims
}
