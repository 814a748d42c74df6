// Package wallet manages user balances. Orders debit the wallet and top-ups
// credit it; every change is recorded as a ledger transaction.
package wallet

import (
	"context"
	"fmt"

	"boostify/internal/models"
	"boostify/internal/repositories"
)

type Service interface {
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error)
	Credit(ctx context.Context, userID uint, amount float64, txType, description, reference string) error
	Debit(ctx context.Context, userID uint, amount float64, txType, description, reference string) error
	TransactionHistory(ctx context.Context, userID uint, offset, limit int) ([]models.Transaction, int64, error)
}

type service struct {
	repo    repositories.WalletRepository
	metrics MetricsCollector
}

// NewService creates a new wallet service
func NewService(repo repositories.WalletRepository, metrics MetricsCollector) Service {
	if repo == nil {
		panic("repo is required")
	}
	if metrics == nil {
		metrics = &NoopMetricsCollector{}
	}
	return &service{repo: repo, metrics: metrics}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		if err == repositories.ErrWalletNotFound {
			return nil, ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return wallet, nil
}

func (s *service) CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error) {
	if currency == "" {
		currency = models.CurrencyUSD
	}
	wallet := &models.Wallet{
		UserID:   userID,
		Status:   "active",
		Currency: currency,
	}
	if err := s.repo.Create(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return wallet, nil
}

func (s *service) Credit(ctx context.Context, userID uint, amount float64, txType, description, reference string) error {
	if amount <= 0 {
		s.metrics.RecordOperationResult("credit", "invalid_amount")
		return ErrInvalidAmount
	}
	err := s.apply(userID, amount, txType, description, reference)
	if err != nil {
		s.metrics.RecordOperationResult("credit", "error")
		return err
	}
	s.metrics.RecordOperationResult("credit", "ok")
	s.metrics.RecordBalanceChange(userID, amount)
	return nil
}

func (s *service) Debit(ctx context.Context, userID uint, amount float64, txType, description, reference string) error {
	if amount <= 0 {
		s.metrics.RecordOperationResult("debit", "invalid_amount")
		return ErrInvalidAmount
	}
	err := s.apply(userID, -amount, txType, description, reference)
	if err != nil {
		s.metrics.RecordOperationResult("debit", "error")
		return err
	}
	s.metrics.RecordOperationResult("debit", "ok")
	s.metrics.RecordBalanceChange(userID, -amount)
	return nil
}

// apply adjusts the balance and writes the ledger row in one transaction.
func (s *service) apply(userID uint, delta float64, txType, description, reference string) error {
	return s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByUserID(userID)
		if err != nil {
			if err == repositories.ErrWalletNotFound {
				return ErrWalletNotFound
			}
			return err
		}
		if wallet.Status != "active" {
			return ErrWalletLocked
		}
		if wallet.Balance+delta < 0 {
			return ErrInsufficientBalance
		}

		wallet.Balance += delta
		if err := tx.Update(wallet); err != nil {
			return err
		}

		amount := delta
		if amount < 0 {
			amount = -amount
		}
		return tx.CreateTransaction(&models.Transaction{
			Type:        txType,
			UserID:      userID,
			Amount:      amount,
			Currency:    wallet.Currency,
			Status:      "completed",
			Description: description,
			Reference:   reference,
		})
	})
}

func (s *service) TransactionHistory(ctx context.Context, userID uint, offset, limit int) ([]models.Transaction, int64, error) {
	return s.repo.GetTransactionHistory(userID, offset, limit)
}
