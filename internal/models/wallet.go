package models

import (
	"strings"

	"github.com/budget-wallets/backend/internal/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Wallet is a pot of money in a single currency that is split into
// categories by percentage.
type Wallet struct {
	DefaultModel
	UserID     uuid.UUID         `gorm:"index"`
	User       User              `json:"-"`
	Name       string
	Balance    decimal.Decimal   `gorm:"type:DECIMAL(20,8)"`
	Currency   string            // ISO 4217 code, always upper case
	Categories []budget.Category `gorm:"serializer:json"`
}

func (w *Wallet) BeforeSave(_ *gorm.DB) error {
	w.Name = strings.TrimSpace(w.Name)
	w.Currency = strings.ToUpper(strings.TrimSpace(w.Currency))

	return nil
}

func (w *Wallet) AfterSave(_ *gorm.DB) error {
	if w.Balance.IsNegative() {
		return ErrWalletBalanceNegative
	}

	return nil
}

// Snapshot returns the wallet in the form used for validation and
// calculations.
func (w Wallet) Snapshot() budget.Wallet {
	return budget.Wallet{
		ID:         w.ID.String(),
		Name:       w.Name,
		Balance:    w.Balance.InexactFloat64(),
		Currency:   w.Currency,
		Categories: w.Categories,
	}
}

// Transactions returns all transactions of the wallet, newest first.
func (w Wallet) Transactions(db *gorm.DB) ([]Transaction, error) {
	var transactions []Transaction

	err := db.
		Where("wallet_id = ?", w.ID).
		Order("datetime(date) DESC, datetime(created_at) DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	return transactions, nil
}

// Delete deletes the wallet together with all of its transactions.
func (w *Wallet) Delete(db *gorm.DB) error {
	return InTransaction(db, func(tx *gorm.DB) error {
		err := tx.Where("wallet_id = ?", w.ID).Delete(&Transaction{}).Error
		if err != nil {
			return err
		}

		return tx.Delete(w).Error
	})
}
