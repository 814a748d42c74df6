package wallet

import (
	"context"
	"testing"

	"boostify/internal/models"
	"boostify/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeWalletRepo is an in-memory WalletRepository. ExecuteInTransaction just
// runs fn against the same store; rollback behavior is not modeled.
type fakeWalletRepo struct {
	wallets      map[uint]*models.Wallet
	transactions []models.Transaction
}

func newFakeWalletRepo() *fakeWalletRepo {
	return &fakeWalletRepo{wallets: make(map[uint]*models.Wallet)}
}

func (f *fakeWalletRepo) Create(wallet *models.Wallet) error {
	wallet.ID = uint(len(f.wallets) + 1)
	f.wallets[wallet.UserID] = wallet
	return nil
}

func (f *fakeWalletRepo) GetByUserID(userID uint) (*models.Wallet, error) {
	w, ok := f.wallets[userID]
	if !ok {
		return nil, repositories.ErrWalletNotFound
	}
	copied := *w
	return &copied, nil
}

func (f *fakeWalletRepo) Update(wallet *models.Wallet) error {
	f.wallets[wallet.UserID] = wallet
	return nil
}

func (f *fakeWalletRepo) CreateTransaction(tx *models.Transaction) error {
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeWalletRepo) GetTransactionHistory(userID uint, offset, limit int) ([]models.Transaction, int64, error) {
	var out []models.Transaction
	for _, tx := range f.transactions {
		if tx.UserID == userID {
			out = append(out, tx)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeWalletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	return fn(f)
}

func seedWallet(repo *fakeWalletRepo, userID uint, balance float64, status string) {
	repo.wallets[userID] = &models.Wallet{ID: userID, UserID: userID, Balance: balance, Currency: models.CurrencyUSD, Status: status}
}

func TestCredit(t *testing.T) {
	ctx := context.Background()

	t.Run("increments the balance and writes a ledger row", func(t *testing.T) {
		repo := newFakeWalletRepo()
		seedWallet(repo, 1, 10, "active")
		svc := NewService(repo, nil)

		require.NoError(t, svc.Credit(ctx, 1, 5.50, models.TransactionTypeTopup, "Top-up", "ch_123"))

		w, _ := repo.GetByUserID(1)
		assert.InDelta(t, 15.50, w.Balance, 1e-9)
		require.Len(t, repo.transactions, 1)
		assert.Equal(t, models.TransactionTypeTopup, repo.transactions[0].Type)
		assert.Equal(t, 5.50, repo.transactions[0].Amount)
		assert.Equal(t, "ch_123", repo.transactions[0].Reference)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		repo := newFakeWalletRepo()
		seedWallet(repo, 1, 10, "active")
		svc := NewService(repo, nil)

		assert.ErrorIs(t, svc.Credit(ctx, 1, 0, models.TransactionTypeTopup, "", ""), ErrInvalidAmount)
		assert.ErrorIs(t, svc.Credit(ctx, 1, -3, models.TransactionTypeTopup, "", ""), ErrInvalidAmount)
	})

	t.Run("locked wallet rejects changes", func(t *testing.T) {
		repo := newFakeWalletRepo()
		seedWallet(repo, 1, 10, "locked")
		svc := NewService(repo, nil)

		assert.ErrorIs(t, svc.Credit(ctx, 1, 5, models.TransactionTypeTopup, "", ""), ErrWalletLocked)
	})
}

func TestDebit(t *testing.T) {
	ctx := context.Background()

	t.Run("decrements the balance", func(t *testing.T) {
		repo := newFakeWalletRepo()
		seedWallet(repo, 1, 10, "active")
		svc := NewService(repo, nil)

		require.NoError(t, svc.Debit(ctx, 1, 1.10, models.TransactionTypeOrderCharge, "Order", "ref-1"))

		w, _ := repo.GetByUserID(1)
		assert.InDelta(t, 8.90, w.Balance, 1e-9)
		require.Len(t, repo.transactions, 1)
		assert.Equal(t, 1.10, repo.transactions[0].Amount, "ledger amounts are stored positive")
	})

	t.Run("insufficient balance leaves everything untouched", func(t *testing.T) {
		repo := newFakeWalletRepo()
		seedWallet(repo, 1, 1, "active")
		svc := NewService(repo, nil)

		assert.ErrorIs(t, svc.Debit(ctx, 1, 5, models.TransactionTypeOrderCharge, "", ""), ErrInsufficientBalance)

		w, _ := repo.GetByUserID(1)
		assert.Equal(t, 1.0, w.Balance)
		assert.Empty(t, repo.transactions)
	})

	t.Run("an exact-balance debit is allowed", func(t *testing.T) {
		repo := newFakeWalletRepo()
		seedWallet(repo, 1, 5, "active")
		svc := NewService(repo, nil)

		require.NoError(t, svc.Debit(ctx, 1, 5, models.TransactionTypeOrderCharge, "", ""))

		w, _ := repo.GetByUserID(1)
		assert.Zero(t, w.Balance)
	})

	t.Run("missing wallet", func(t *testing.T) {
		svc := NewService(newFakeWalletRepo(), nil)
		assert.ErrorIs(t, svc.Debit(ctx, 99, 5, models.TransactionTypeOrderCharge, "", ""), ErrWalletNotFound)
	})
}

func TestCreateWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the currency to USD", func(t *testing.T) {
		svc := NewService(newFakeWalletRepo(), nil)

		w, err := svc.CreateWallet(ctx, 1, "")
		require.NoError(t, err)
		assert.Equal(t, models.CurrencyUSD, w.Currency)
		assert.Equal(t, "active", w.Status)
	})

	t.Run("keeps an explicit currency", func(t *testing.T) {
		svc := NewService(newFakeWalletRepo(), nil)

		w, err := svc.CreateWallet(ctx, 1, models.CurrencyAZN)
		require.NoError(t, err)
		assert.Equal(t, models.CurrencyAZN, w.Currency)
	})
}
