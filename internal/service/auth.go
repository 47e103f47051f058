package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"comanda/internal/model"
	"comanda/internal/store"
)

var (
	ErrLoginTaken         = errors.New("login already exists")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

type AuthService struct {
	store *store.Store
}

func NewAuthService(st *store.Store) *AuthService {
	return &AuthService{store: st}
}

func (s *AuthService) Register(login, password string) (model.Waiter, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.Waiter{}, fmt.Errorf("hash password: %w", err)
	}

	waiter := model.Waiter{
		ID:           newID(orderIDLen),
		Login:        login,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if !s.store.AppendWaiter(waiter) {
		return model.Waiter{}, ErrLoginTaken
	}

	return waiter, nil
}

func (s *AuthService) Authenticate(login, password string) (model.Waiter, error) {
	waiter, ok := s.store.FindWaiter(login)
	if !ok {
		return model.Waiter{}, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(waiter.PasswordHash, []byte(password)); err != nil {
		return model.Waiter{}, ErrInvalidCredentials
	}

	return waiter, nil
}
