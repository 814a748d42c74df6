package payment

import (
	"context"
	"errors"
	"testing"

	"boostify/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockWalletService struct {
	mock.Mock
}

func (m *mockWalletService) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *mockWalletService) CreateWallet(ctx context.Context, userID uint, currency string) (*models.Wallet, error) {
	args := m.Called(ctx, userID, currency)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *mockWalletService) Credit(ctx context.Context, userID uint, amount float64, txType, description, reference string) error {
	return m.Called(ctx, userID, amount, txType, description, reference).Error(0)
}

func (m *mockWalletService) Debit(ctx context.Context, userID uint, amount float64, txType, description, reference string) error {
	return m.Called(ctx, userID, amount, txType, description, reference).Error(0)
}

func (m *mockWalletService) TransactionHistory(ctx context.Context, userID uint, offset, limit int) ([]models.Transaction, int64, error) {
	args := m.Called(ctx, userID, offset, limit)
	return args.Get(0).([]models.Transaction), args.Get(1).(int64), args.Error(2)
}

type stubCharger struct {
	chargeID string
	err      error
	calls    int
	amount   float64
}

func (s *stubCharger) charge(userID uint, amount float64, cardToken string) (string, error) {
	s.calls++
	s.amount = amount
	return s.chargeID, s.err
}

type stubConverter struct {
	rate float64
}

func (s stubConverter) Convert(ctx context.Context, amount float64, from, to string) (float64, bool) {
	if from == to {
		return amount, false
	}
	return amount * s.rate, false
}

func newTopUpService(wallets *mockWalletService, charger *stubCharger) Service {
	return &service{
		wallets: wallets,
		rates:   stubConverter{rate: 1.7},
		cards:   charger,
	}
}

func TestTopUp(t *testing.T) {
	ctx := context.Background()

	t.Run("USD wallet is credited the charged amount", func(t *testing.T) {
		wallets := new(mockWalletService)
		charger := &stubCharger{chargeID: "ch_123"}
		svc := newTopUpService(wallets, charger)

		wallets.On("GetWallet", ctx, uint(1)).Return(&models.Wallet{UserID: 1, Currency: models.CurrencyUSD}, nil)
		wallets.On("Credit", ctx, uint(1), 10.0, models.TransactionTypeTopup, mock.Anything, "ch_123").Return(nil)

		chargeID, err := svc.TopUp(ctx, 1, 10, "tok_visa")
		require.NoError(t, err)
		assert.Equal(t, "ch_123", chargeID)
		assert.Equal(t, 10.0, charger.amount, "card is charged in USD")
		wallets.AssertExpectations(t)
	})

	t.Run("AZN wallet is credited the converted amount", func(t *testing.T) {
		wallets := new(mockWalletService)
		charger := &stubCharger{chargeID: "ch_456"}
		svc := newTopUpService(wallets, charger)

		wallets.On("GetWallet", ctx, uint(2)).Return(&models.Wallet{UserID: 2, Currency: models.CurrencyAZN}, nil)
		wallets.On("Credit", ctx, uint(2), 17.0, models.TransactionTypeTopup, mock.Anything, "ch_456").Return(nil)

		_, err := svc.TopUp(ctx, 2, 10, "tok_visa")
		require.NoError(t, err)
		assert.Equal(t, 10.0, charger.amount, "card is still charged the USD amount")
		wallets.AssertExpectations(t)
	})

	t.Run("below the minimum never charges the card", func(t *testing.T) {
		wallets := new(mockWalletService)
		charger := &stubCharger{chargeID: "ch_123"}
		svc := newTopUpService(wallets, charger)

		_, err := svc.TopUp(ctx, 1, 0.5, "tok_visa")
		assert.ErrorIs(t, err, ErrInvalidAmount)
		assert.Zero(t, charger.calls)
	})

	t.Run("missing wallet stops before the charge", func(t *testing.T) {
		wallets := new(mockWalletService)
		charger := &stubCharger{chargeID: "ch_123"}
		svc := newTopUpService(wallets, charger)

		walletErr := errors.New("wallet not found")
		wallets.On("GetWallet", ctx, uint(9)).Return(nil, walletErr)

		_, err := svc.TopUp(ctx, 9, 10, "tok_visa")
		assert.ErrorIs(t, err, walletErr)
		assert.Zero(t, charger.calls)
	})

	t.Run("charge failure never credits the wallet", func(t *testing.T) {
		wallets := new(mockWalletService)
		charger := &stubCharger{err: ErrChargeFailed}
		svc := newTopUpService(wallets, charger)

		wallets.On("GetWallet", ctx, uint(1)).Return(&models.Wallet{UserID: 1, Currency: models.CurrencyUSD}, nil)

		_, err := svc.TopUp(ctx, 1, 10, "tok_bad")
		assert.ErrorIs(t, err, ErrChargeFailed)
		wallets.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("credit failure after a successful charge surfaces the charge id", func(t *testing.T) {
		wallets := new(mockWalletService)
		charger := &stubCharger{chargeID: "ch_789"}
		svc := newTopUpService(wallets, charger)

		wallets.On("GetWallet", ctx, uint(1)).Return(&models.Wallet{UserID: 1, Currency: models.CurrencyUSD}, nil)
		wallets.On("Credit", ctx, uint(1), 10.0, models.TransactionTypeTopup, mock.Anything, "ch_789").Return(errors.New("db down"))

		chargeID, err := svc.TopUp(ctx, 1, 10, "tok_visa")
		require.Error(t, err)
		assert.Equal(t, "ch_789", chargeID)
	})
}
