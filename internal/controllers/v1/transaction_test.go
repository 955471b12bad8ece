package v1_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	v1 "github.com/budget-wallets/backend/internal/controllers/v1"
	"github.com/budget-wallets/backend/internal/models"
	"github.com/budget-wallets/backend/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTransaction(t *testing.T, token string, c v1.TransactionEditable, expectedStatus ...int) v1.TransactionResponse {
	if c.WalletID == "" {
		c.WalletID = createTestWallet(t, token, v1.WalletCreate{}).Data.ID.String()
	}

	if c.Category == "" {
		c.Category = "Needs"
	}

	if c.Amount.IsZero() {
		c.Amount = decimal.NewFromFloat(-10)
	}

	if c.Date == "" {
		c.Date = "2024-01-01"
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	body := []v1.TransactionEditable{c}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", body, test.Bearer(token))
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var transaction v1.TransactionCreateResponse
	test.DecodeResponse(t, &r, &transaction)

	if r.Code == http.StatusCreated {
		return transaction.Data[0]
	}

	return v1.TransactionResponse{}
}

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	session := registerTestUser(suite.T())
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Contains(suite.T(), *response.Error, models.ErrGeneral.Error())
}

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string // path at the Transactions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"Not a valid UUID", "NotParseableAsUUID", http.StatusBadRequest},
		{"Valid UUID", uuid.NewString(), http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			path := fmt.Sprintf("%s/%s", "http://example.com/v1/transactions", tt.id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "OPTIONS, GET, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

// TestTransactionsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestTransactionsGetSingle() {
	session := registerTestUser(suite.T())
	transaction := createTestTransaction(suite.T(), session.Token, v1.TransactionEditable{})

	other := registerTestUser(suite.T())
	foreign := createTestTransaction(suite.T(), other.Token, v1.TransactionEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing Transaction", transaction.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET ID nil", uuid.Nil.String(), http.StatusNotFound, http.MethodGet},
		{"GET No Transaction with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Transaction of other user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"DELETE Transaction of other user", foreign.Data.ID.String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (negative number)", "-56", http.StatusBadRequest, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/transactions/%s", tt.id), "", test.Bearer(session.Token))
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionResponse
			test.DecodeResponse(t, &r, &response)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsCreate() {
	session := registerTestUser(suite.T())
	w := createTestWallet(suite.T(), session.Token, v1.WalletCreate{WalletEditable: v1.WalletEditable{Balance: decimal.NewFromFloat(100)}})

	transaction := createTestTransaction(suite.T(), session.Token, v1.TransactionEditable{
		WalletID:    w.Data.ID.String(),
		Category:    "Wants",
		Amount:      decimal.NewFromFloat(-14.99),
		Description: " Cinema ",
		Date:        "2024-03-15T10:30:00+02:00",
	})

	assert.Equal(suite.T(), w.Data.ID, transaction.Data.WalletID)
	assert.Equal(suite.T(), "Wants", transaction.Data.Category)
	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromFloat(-14.99)), "Amount is %s", transaction.Data.Amount)
	assert.Equal(suite.T(), "Cinema", transaction.Data.Description)
	assert.Equal(suite.T(), time.Date(2024, 3, 15, 8, 30, 0, 0, time.UTC), transaction.Data.Date.UTC())
	assert.Equal(suite.T(), fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), transaction.Data.Links.Self)
	assert.Equal(suite.T(), w.Data.Links.Self, transaction.Data.Links.Wallet)

	// Category names match regardless of case, income is allowed
	_ = createTestTransaction(suite.T(), session.Token, v1.TransactionEditable{
		WalletID: w.Data.ID.String(),
		Category: "savings",
		Amount:   decimal.NewFromFloat(250),
	})

	// The wallet balance does not change with transactions
	r := test.Request(suite.T(), http.MethodGet, w.Data.Links.Self, "", test.Bearer(session.Token))
	var wallet v1.WalletResponse
	test.DecodeResponse(suite.T(), &r, &wallet)
	assert.True(suite.T(), wallet.Data.Balance.Equal(decimal.NewFromFloat(100)), "Balance is %s", wallet.Data.Balance)
}

func (suite *TestSuiteStandard) TestTransactionsCreateInvalid() {
	session := registerTestUser(suite.T())
	w := createTestWallet(suite.T(), session.Token, v1.WalletCreate{})

	other := registerTestUser(suite.T())
	foreign := createTestWallet(suite.T(), other.Token, v1.WalletCreate{})

	tests := []struct {
		name        string
		transaction v1.TransactionEditable
		status      int
		errors      []string // Violated rules, if the transaction was validated
	}{
		{
			"No wallet",
			v1.TransactionEditable{Category: "Needs", Amount: decimal.NewFromFloat(-1), Date: "2024-01-01"},
			http.StatusBadRequest,
			[]string{"Wallet ID is required"},
		},
		{
			"Invalid wallet ID",
			v1.TransactionEditable{WalletID: "wallet-1", Category: "Needs", Amount: decimal.NewFromFloat(-1), Date: "2024-01-01"},
			http.StatusBadRequest,
			nil,
		},
		{
			"Unknown wallet",
			v1.TransactionEditable{WalletID: uuid.NewString(), Category: "Needs", Amount: decimal.NewFromFloat(-1), Date: "2024-01-01"},
			http.StatusNotFound,
			nil,
		},
		{
			"Wallet of other user",
			v1.TransactionEditable{WalletID: foreign.Data.ID.String(), Category: "Needs", Amount: decimal.NewFromFloat(-1), Date: "2024-01-01"},
			http.StatusNotFound,
			nil,
		},
		{
			"Unknown category",
			v1.TransactionEditable{WalletID: w.Data.ID.String(), Category: "Rent", Amount: decimal.NewFromFloat(-1), Date: "2024-01-01"},
			http.StatusBadRequest,
			[]string{"Category \"Rent\" does not exist in this wallet"},
		},
		{
			"All rules violated",
			v1.TransactionEditable{WalletID: w.Data.ID.String(), Category: " ", Description: strings.Repeat("d", 501)},
			http.StatusBadRequest,
			[]string{
				"Category is required",
				"Category \" \" does not exist in this wallet",
				"Amount cannot be zero",
				"Date is required",
				"Description must be 500 characters or less",
			},
		},
		{
			"Invalid date",
			v1.TransactionEditable{WalletID: w.Data.ID.String(), Category: "Needs", Amount: decimal.NewFromFloat(-1), Date: "yesterday"},
			http.StatusBadRequest,
			[]string{"Invalid date format"},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", []v1.TransactionEditable{tt.transaction}, test.Bearer(session.Token))
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &r, &response)

			require.Len(t, response.Data, 1)
			assert.Nil(t, response.Data[0].Data)
			require.NotNil(t, response.Data[0].Error)
			assert.Equal(t, tt.errors, response.Data[0].Errors)
		})
	}

	// Nothing has been stored
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", test.Bearer(session.Token))
	var list v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &list)
	assert.Len(suite.T(), list.Data, 0)
}

func (suite *TestSuiteStandard) TestTransactionsCreateBrokenBody() {
	session := registerTestUser(suite.T())

	for _, body := range []string{"", `[{ "amount": false }]`, `{ "category": "Needs" }`} {
		r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/transactions", body, test.Bearer(session.Token))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

		var response v1.TransactionCreateResponse
		test.DecodeResponse(suite.T(), &r, &response)
		assert.NotNil(suite.T(), response.Error, "Body: %s", body)
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	session := registerTestUser(suite.T())
	w1 := createTestWallet(suite.T(), session.Token, v1.WalletCreate{})
	w2 := createTestWallet(suite.T(), session.Token, v1.WalletCreate{})

	for _, transaction := range []v1.TransactionEditable{
		{WalletID: w1.Data.ID.String(), Category: "Needs", Date: "2024-01-10"},
		{WalletID: w1.Data.ID.String(), Category: "Wants", Date: "2024-01-20T23:59:00Z"},
		{WalletID: w1.Data.ID.String(), Category: "Needs", Date: "2024-02-01"},
		{WalletID: w2.Data.ID.String(), Category: "Savings", Date: "2024-01-15"},
	} {
		_ = createTestTransaction(suite.T(), session.Token, transaction)
	}

	// Transactions of other users are never returned
	other := registerTestUser(suite.T())
	_ = createTestTransaction(suite.T(), other.Token, v1.TransactionEditable{Date: "2024-01-15"})

	tests := []struct {
		name  string
		query string
		len   int
		total int64
	}{
		{"All", "", 4, 4},
		{"Wallet 1", fmt.Sprintf("wallet=%s", w1.Data.ID), 3, 3},
		{"Wallet 2", fmt.Sprintf("wallet=%s", w2.Data.ID), 1, 1},
		{"Unknown wallet", fmt.Sprintf("wallet=%s", uuid.New()), 0, 0},
		{"Category", "category=Needs", 2, 2},
		{"Category and wallet", fmt.Sprintf("category=Savings&wallet=%s", w1.Data.ID), 0, 0},
		{"From date", "fromDate=2024-01-15", 3, 3},
		{"Until date", "untilDate=2024-01-20", 3, 3},
		{"Date range", "fromDate=2024-01-11&untilDate=2024-01-31", 2, 2},
		{"Date range with time", "fromDate=2024-01-20T12:00:00Z&untilDate=2024-01-20T12:00:00Z", 1, 1},
		{"Limit", "limit=1", 1, 4},
		{"Offset", "offset=3", 1, 4},
		{"Limit and offset with filter", "category=Needs&offset=1&limit=5", 1, 2},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "", test.Bearer(session.Token))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)

			assert.Len(t, response.Data, tt.len)
			assert.Equal(t, tt.len, response.Pagination.Count)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

// TestTransactionsGetFilterTimezone verifies that date filters match on the
// UTC day a transaction is stored with.
func (suite *TestSuiteStandard) TestTransactionsGetFilterTimezone() {
	session := registerTestUser(suite.T())
	transaction := createTestTransaction(suite.T(), session.Token, v1.TransactionEditable{Date: "2024-01-01T23:30:00-05:00"})
	assert.Equal(suite.T(), time.Date(2024, 1, 2, 4, 30, 0, 0, time.UTC), transaction.Data.Date.UTC())

	tests := []struct {
		name  string
		query string
		total int64
	}{
		{"UTC day", "fromDate=2024-01-02&untilDate=2024-01-02", 1},
		{"Local day", "fromDate=2024-01-01&untilDate=2024-01-01", 0},
		{"Same offset as the transaction", "fromDate=2024-01-01T23:30:00-05:00&untilDate=2024-01-01T23:30:00-05:00", 1},
		{"Offset moving the filter to the previous day", "untilDate=2024-01-02T01:00:00%2B02:00", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "", test.Bearer(session.Token))
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Equal(t, tt.total, response.Pagination.Total)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsGetInvalidFilter() {
	session := registerTestUser(suite.T())

	for _, query := range []string{"wallet=NotAUUID", "fromDate=yesterday", "untilDate=2024-13-45", "offset=-1"} {
		r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", query), "", test.Bearer(session.Token))
		test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	}
}

// TestTransactionsSort verifies that transactions are sorted by date, newest first.
func (suite *TestSuiteStandard) TestTransactionsSort() {
	session := registerTestUser(suite.T())
	w := createTestWallet(suite.T(), session.Token, v1.WalletCreate{})

	for _, date := range []string{"2024-02-01", "2024-03-01", "2024-01-01"} {
		_ = createTestTransaction(suite.T(), session.Token, v1.TransactionEditable{
			WalletID:    w.Data.ID.String(),
			Description: date,
			Date:        date,
		})
	}

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "", test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 3)
	assert.Equal(suite.T(), "2024-03-01", response.Data[0].Description)
	assert.Equal(suite.T(), "2024-02-01", response.Data[1].Description)
	assert.Equal(suite.T(), "2024-01-01", response.Data[2].Description)
}

func (suite *TestSuiteStandard) TestTransactionsDelete() {
	session := registerTestUser(suite.T())
	transaction := createTestTransaction(suite.T(), session.Token, v1.TransactionEditable{})

	r := test.Request(suite.T(), http.MethodDelete, transaction.Data.Links.Self, "", test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Self, "", test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	// The wallet still exists
	r = test.Request(suite.T(), http.MethodGet, transaction.Data.Links.Wallet, "", test.Bearer(session.Token))
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
}
