package service

import (
	"context"
	"errors"
	"strings"

	dom "github.com/egonzalezhe/techflow/internal/domain"
	"github.com/egonzalezhe/techflow/internal/repo"

	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

// AuthService handles admin credential checks.
type AuthService struct {
	repo repo.AccountRepo
}

// NewAuthService returns a new AuthService.
func NewAuthService(repo repo.AccountRepo) *AuthService {
	return &AuthService{repo: repo}
}

// ValidateCredentials checks username and password; returns the account if
// valid. The error never reveals whether the username exists.
func (s *AuthService) ValidateCredentials(ctx context.Context, username, password string) (dom.Account, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return dom.Account{}, ErrInvalidCredentials
	}
	a, err := s.repo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Account{}, ErrInvalidCredentials
		}
		return dom.Account{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return dom.Account{}, ErrInvalidCredentials
	}
	return a, nil
}
