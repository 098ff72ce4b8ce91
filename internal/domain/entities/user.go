package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type User struct {
	Id           uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Email        string
	PasswordHash string
	IsPro        bool
}

func NewUser(name, email string) *User {
	return &User{
		Id:        uuid.New(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Name:      name,
		Email:     NormalizeEmail(email),
		IsPro:     false,
	}
}

// NormalizeEmail lowercases and trims so the email uniqueness constraint is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (u *User) validate() error {
	if u.Name == "" {
		return errors.New("name must not be empty")
	}
	if u.Email == "" {
		return errors.New("email must not be empty")
	}
	if u.PasswordHash == "" {
		return errors.New("password hash must not be empty")
	}
	if u.CreatedAt.After(u.UpdatedAt) {
		return errors.New("created_at must be before updated_at")
	}
	return nil
}

// SetPassword hashes the plaintext with a per-call salt and keeps only the
// hash. The plaintext is never retained on the entity.
func (u *User) SetPassword(plaintext string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hashed)
	u.UpdatedAt = time.Now()
	return nil
}

func (u *User) CheckPassword(plaintext string) error {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext))
}

func (u *User) Upgrade() {
	u.IsPro = true
	u.UpdatedAt = time.Now()
}

// UpdateProfile applies only the provided fields. Empty strings mean the
// field was omitted.
func (u *User) UpdateProfile(name, email string) error {
	if name != "" {
		u.Name = name
	}
	if email != "" {
		u.Email = NormalizeEmail(email)
	}
	u.UpdatedAt = time.Now()
	return u.validate()
}
