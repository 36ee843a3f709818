package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// User is a registered account. ID is the stable opaque identifier used as
// the owner of ledger transactions.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash []byte
	CreatedAt    time.Time
}

// UserStore is the persistence port for accounts.
type UserStore interface {
	InsertUser(ctx context.Context, u User) error
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
}

// ErrNoUser is returned by UserStore implementations when no account matches.
var ErrNoUser = errors.New("user not found")

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWeakPassword       = errors.New("password too short (min 6)")
	ErrMissingEmail       = errors.New("email required")
)

// Service handles registration and login. Token issuance is delegated to the
// Verifier so there is a single signing path.
type Service struct {
	users    UserStore
	verifier *Verifier
}

func NewService(users UserStore, verifier *Verifier) *Service {
	return &Service{users: users, verifier: verifier}
}

func (s *Service) Register(ctx context.Context, name, email, password string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return User{}, ErrMissingEmail
	}
	if len(password) < 6 {
		return User{}, ErrWeakPassword
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return User{}, ErrEmailTaken
	} else if !errors.Is(err, ErrNoUser) {
		return User{}, fmt.Errorf("check existing user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, fmt.Errorf("hash password: %w", err)
	}

	user := User{
		ID:           uuid.New().String(),
		Name:         strings.TrimSpace(name),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.InsertUser(ctx, user); err != nil {
		return User{}, fmt.Errorf("insert user: %w", err)
	}

	slog.InfoContext(ctx, "User registered", "owner_id", user.ID, "email", user.Email)
	return user, nil
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// email and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNoUser) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("lookup user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.verifier.Issue(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Lookup returns the account for a verified owner id.
func (s *Service) Lookup(ctx context.Context, id string) (User, error) {
	return s.users.GetUserByID(ctx, id)
}
