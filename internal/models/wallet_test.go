package models_test

import (
	"time"

	"github.com/budget-wallets/backend/internal/budget"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestWalletTrimming() {
	wallet := suite.createTestWallet(models.Wallet{
		Name:     "  Household ",
		Currency: " usd",
	})

	assert.Equal(suite.T(), "Household", wallet.Name)
	assert.Equal(suite.T(), "USD", wallet.Currency)

	var stored models.Wallet
	require.Nil(suite.T(), models.DB.First(&stored, "id = ?", wallet.ID).Error)
	assert.Equal(suite.T(), "Household", stored.Name)
	assert.Equal(suite.T(), "USD", stored.Currency)
}

func (suite *TestSuiteStandard) TestWalletCategoriesStored() {
	categories := []budget.Category{
		{Name: "Rent", Percentage: 62.5, Color: "#3B82F6"},
		{Name: "Fun", Percentage: 37.5, Color: "#8B5CF6"},
	}

	wallet := suite.createTestWallet(models.Wallet{Name: "Flat", Categories: categories})

	var stored models.Wallet
	require.Nil(suite.T(), models.DB.First(&stored, "id = ?", wallet.ID).Error)
	assert.Equal(suite.T(), categories, stored.Categories)
}

func (suite *TestSuiteStandard) TestWalletNegativeBalance() {
	user := suite.createTestUser(models.User{})

	err := models.DB.Create(&models.Wallet{
		UserID:   user.ID,
		Name:     "Overdrawn",
		Currency: "EUR",
		Balance:  decimal.NewFromFloat(-0.01),
	}).Error
	assert.ErrorIs(suite.T(), err, models.ErrWalletBalanceNegative)

	var count int64
	models.DB.Model(&models.Wallet{}).Count(&count)
	assert.Equal(suite.T(), int64(0), count, "Wallet with negative balance must not be stored")

	wallet := suite.createTestWallet(models.Wallet{Name: "Positive", Balance: decimal.NewFromFloat(10)})
	err = models.DB.Model(&wallet).Update("Balance", decimal.NewFromFloat(-5)).Error
	assert.ErrorIs(suite.T(), err, models.ErrWalletBalanceNegative)

	var stored models.Wallet
	require.Nil(suite.T(), models.DB.First(&stored, "id = ?", wallet.ID).Error)
	assert.True(suite.T(), stored.Balance.Equal(decimal.NewFromFloat(10)), "Balance is %s", stored.Balance)
}

func (suite *TestSuiteStandard) TestWalletSnapshot() {
	wallet := suite.createTestWallet(models.Wallet{
		Name:     "Snapshot",
		Balance:  decimal.RequireFromString("1234.56"),
		Currency: "eur",
	})

	snapshot := wallet.Snapshot()
	assert.Equal(suite.T(), wallet.ID.String(), snapshot.ID)
	assert.Equal(suite.T(), "Snapshot", snapshot.Name)
	assert.Equal(suite.T(), 1234.56, snapshot.Balance)
	assert.Equal(suite.T(), "EUR", snapshot.Currency)
	assert.Equal(suite.T(), wallet.Categories, snapshot.Categories)
}

func (suite *TestSuiteStandard) TestWalletTransactions() {
	wallet := suite.createTestWallet(models.Wallet{Name: "Ordered"})
	other := suite.createTestWallet(models.Wallet{Name: "Other"})

	older := suite.createTestTransaction(models.Transaction{
		WalletID: wallet.ID,
		Category: "Needs",
		Date:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	newer := suite.createTestTransaction(models.Transaction{
		WalletID: wallet.ID,
		Category: "Wants",
		Date:     time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	_ = suite.createTestTransaction(models.Transaction{
		WalletID: other.ID,
		Category: "Needs",
		Date:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})

	transactions, err := wallet.Transactions(models.DB)
	require.Nil(suite.T(), err)
	require.Len(suite.T(), transactions, 2)
	assert.Equal(suite.T(), newer.ID, transactions[0].ID)
	assert.Equal(suite.T(), older.ID, transactions[1].ID)
}

func (suite *TestSuiteStandard) TestWalletDelete() {
	wallet := suite.createTestWallet(models.Wallet{Name: "Doomed"})
	other := suite.createTestWallet(models.Wallet{Name: "Survivor"})

	_ = suite.createTestTransaction(models.Transaction{WalletID: wallet.ID, Category: "Needs"})
	_ = suite.createTestTransaction(models.Transaction{WalletID: wallet.ID, Category: "Wants"})
	kept := suite.createTestTransaction(models.Transaction{WalletID: other.ID, Category: "Needs"})

	require.Nil(suite.T(), wallet.Delete(models.DB))

	err := models.DB.First(&models.Wallet{}, "id = ?", wallet.ID).Error
	assert.ErrorIs(suite.T(), err, models.ErrResourceNotFound)

	var transactions []models.Transaction
	require.Nil(suite.T(), models.DB.Find(&transactions).Error)
	require.Len(suite.T(), transactions, 1)
	assert.Equal(suite.T(), kept.ID, transactions[0].ID)
}

func (suite *TestSuiteStandard) TestWalletDeleteDBClosed() {
	wallet := suite.createTestWallet(models.Wallet{Name: "Closed"})
	suite.CloseDB()

	assert.ErrorIs(suite.T(), wallet.Delete(models.DB), models.ErrGeneral)
}
