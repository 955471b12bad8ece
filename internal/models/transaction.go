package models

import (
	"strings"
	"time"

	"github.com/budget-wallets/backend/internal/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Transaction is an income (positive amount) or an expense (negative amount)
// in one category of a wallet.
//
// Creating or deleting transactions does not change the wallet balance.
type Transaction struct {
	DefaultModel
	WalletID    uuid.UUID `gorm:"index"`
	Wallet      Wallet    `json:"-"`
	Category    string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description string
	Date        time.Time
}

// AfterFind sets the location of the date and all timestamps to UTC.
func (t *Transaction) AfterFind(tx *gorm.DB) error {
	_ = t.DefaultModel.AfterFind(tx)
	t.Date = t.Date.In(time.UTC)

	return nil
}

func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.Description = strings.TrimSpace(t.Description)

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

// Snapshot returns the transaction in the form used for aggregations.
func (t Transaction) Snapshot() budget.Transaction {
	return budget.Transaction{
		Category: t.Category,
		Amount:   t.Amount.InexactFloat64(),
	}
}
