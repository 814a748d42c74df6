package repositories

import (
	"errors"

	"boostify/internal/models"
)

var (
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// WalletRepository defines the interface for wallet-related database operations
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByUserID(userID uint) (*models.Wallet, error)
	Update(wallet *models.Wallet) error

	// CreateTransaction records a ledger entry.
	CreateTransaction(tx *models.Transaction) error
	GetTransactionHistory(userID uint, offset, limit int) ([]models.Transaction, int64, error)

	// ExecuteInTransaction runs fn inside a database transaction; the passed
	// repository is bound to that transaction.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
