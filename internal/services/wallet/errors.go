package wallet

import "errors"

// Service errors
var (
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrWalletNotFound      = errors.New("wallet not found")
	ErrWalletLocked        = errors.New("wallet is locked")
	ErrInsufficientBalance = errors.New("insufficient balance")
)
