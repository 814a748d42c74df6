package user

import (
	"context"
	"errors"

	"boostify/internal/models"
	"boostify/internal/repositories"
	"boostify/internal/services/wallet"

	"golang.org/x/crypto/bcrypt"
)

// CreateUserInput carries registration data.
type CreateUserInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Currency string `json:"currency"`
	Role     string `json:"-"`
}

type Service interface {
	GetByID(id uint) (*models.User, error)
	Register(ctx context.Context, input *CreateUserInput) (*models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

type service struct {
	repo    repositories.UserRepository
	wallets wallet.Service
}

func NewService(repo repositories.UserRepository, wallets wallet.Service) Service {
	return &service{
		repo:    repo,
		wallets: wallets,
	}
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.repo.GetByID(id)
}

// Register creates the user and their wallet.
func (s *service) Register(ctx context.Context, input *CreateUserInput) (*models.User, error) {
	if input.Email == "" {
		return nil, errors.New("email is required")
	}

	if existing, _ := s.repo.GetByEmail(input.Email); existing != nil {
		return nil, repositories.ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("failed to hash password")
	}

	role := input.Role
	if role == "" {
		role = "user"
	}
	currency := input.Currency
	if currency != models.CurrencyUSD && currency != models.CurrencyAZN {
		currency = models.CurrencyUSD
	}

	user := &models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashedPassword),
		Role:     role,
		Status:   "active",
		Currency: currency,
	}
	if err := s.repo.Create(user); err != nil {
		return nil, err
	}

	w, err := s.wallets.CreateWallet(ctx, user.ID, currency)
	if err != nil {
		return nil, err
	}
	user.WalletID = &w.ID
	if err := s.repo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (s *service) Update(user *models.User) error {
	return s.repo.Update(user)
}

func (s *service) Delete(id uint) error {
	return s.repo.Delete(id)
}
