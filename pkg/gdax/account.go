package gdax

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Account struct {
	ID        uuid.UUID       `json:"id"`
	Balance   decimal.Decimal `json:"balance"`
	Hold      decimal.Decimal `json:"hold"`
	Available decimal.Decimal `json:"available"`
	Currency  string          `json:"currency"`
}

type Ledger []LedgerEntry

type LedgerEntry struct {
	ID        uint64          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Amount    decimal.Decimal `json:"amount"`
	Balance   decimal.Decimal `json:"balance"`
	EntryType EntryType       `json:"type"`
	Details   *EntryDetails   `json:"details,omitempty"`
}

type EntryDetails struct {
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	TradeID      *uint64    `json:"trade_id,omitempty"`
	ProductID    string     `json:"product_id,omitempty"`
	TransferID   *uuid.UUID `json:"transfer_id,omitempty"`
	TransferType string     `json:"transfer_type,omitempty"`
}

type Hold struct {
	ID        uuid.UUID       `json:"id"`
	AccountID *uuid.UUID      `json:"account_id,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt *time.Time      `json:"updated_at,omitempty"`
	Amount    decimal.Decimal `json:"amount"`
	HoldType  HoldType        `json:"type"`
	Ref       uuid.UUID       `json:"ref"`
}

type AccountService struct {
	client *RestClient
}

// GetAccounts lists all trading accounts of the authenticated profile.
func (s *AccountService) GetAccounts(ctx context.Context) ([]Account, error) {
	var accounts []Account
	if err := s.client.get(ctx, "/accounts", &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// GetAccount fetches a single account by id.
func (s *AccountService) GetAccount(ctx context.Context, id uuid.UUID) (*Account, error) {
	var account Account
	if err := s.client.get(ctx, fmt.Sprintf("/accounts/%s", id), &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// GetAccountHistory lists the ledger entries of an account.
func (s *AccountService) GetAccountHistory(ctx context.Context, id uuid.UUID) (Ledger, error) {
	var ledger Ledger
	if err := s.client.get(ctx, fmt.Sprintf("/accounts/%s/ledger", id), &ledger); err != nil {
		return nil, err
	}
	return ledger, nil
}

// GetAccountHolds lists the holds placed on an account for active orders and
// pending withdrawals.
func (s *AccountService) GetAccountHolds(ctx context.Context, id uuid.UUID) ([]Hold, error) {
	var holds []Hold
	if err := s.client.get(ctx, fmt.Sprintf("/accounts/%s/holds", id), &holds); err != nil {
		return nil, err
	}
	return holds, nil
}
