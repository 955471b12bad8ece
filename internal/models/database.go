package models

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	go_sqlite "github.com/glebarez/go-sqlite"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// DB is the database used by the backend.
var DB *gorm.DB

type BWContext string

const (
	DBContextURL BWContext = "bw-backend-url"
)

// Connect opens the SQLite database and configures the connection pool.
func Connect(dsn string) error {
	config := &gorm.Config{
		Logger: &gormLogger{
			Logger:        log.Logger,
			SlowThreshold: 200 * time.Millisecond,
		},
		NowFunc: func() time.Time {
			return time.Now().In(time.UTC)
		},
	}

	// Migration runs with foreign keys disabled. sqlite does not
	// support ALTER COLUMN, so gorm copies tables to a temporary
	// table, drops and recreates them.
	db, err := gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	err = migrate(db)
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}
	sqlDB.Close()

	// Reconnect with foreign keys enabled
	dsn = fmt.Sprintf("%s?_pragma=foreign_keys(1)", dsn)
	db, err = gorm.Open(sqlite.Open(dsn), config)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err = db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database object: %w", err)
	}

	sqlDB.SetConnMaxLifetime(time.Hour)

	// A single connection prevents SQLITE_BUSY errors
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	err = registerCallbacks(db)
	if err != nil {
		return err
	}

	DB = db
	return nil
}

func registerCallbacks(db *gorm.DB) error {
	callbacks := []struct {
		processor interface {
			Register(string, func(*gorm.DB)) error
		}
		name string
		fn   func(*gorm.DB)
	}{
		{db.Callback().Query().After("*"), "budget_wallets:after_query", queryCallback},
		{db.Callback().Query().After("*"), "budget_wallets:after_query_general", generalCallback},
		{db.Callback().Create().After("*"), "budget_wallets:after_create", createUpdateCallback},
		{db.Callback().Create().After("*"), "budget_wallets:after_create_general", generalCallback},
		{db.Callback().Update().After("*"), "budget_wallets:after_update", createUpdateCallback},
		{db.Callback().Update().After("*"), "budget_wallets:after_update_general", generalCallback},
		{db.Callback().Delete().After("*"), "budget_wallets:after_delete_general", generalCallback},
	}

	for _, c := range callbacks {
		if err := c.processor.Register(c.name, c.fn); err != nil {
			return fmt.Errorf("could not register callback %s: %w", c.name, err)
		}
	}

	return nil
}

// queryCallback replaces the generic "no record" error with a more user
// friendly one
func queryCallback(db *gorm.DB) {
	if errors.Is(db.Error, gorm.ErrRecordNotFound) {
		db.Error = fmt.Errorf("%w %s matching your query", ErrResourceNotFound, resourceName(db.Statement.Table))
	}
}

// resourceName turns a table name into the singular name of the resource,
// e.g. "wallets" into "wallet".
func resourceName(table string) string {
	name := strings.ReplaceAll(table, "_", " ")
	return strings.TrimSuffix(name, "s")
}

// createUpdateCallback inspects errors returned by the database for create
// and update calls and replaces them with user friendly ones
func createUpdateCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: users.email") {
		db.Error = ErrEmailNotUnique
	}

	if strings.Contains(db.Error.Error(), "UNIQUE constraint failed: sessions.token") {
		db.Error = ErrSessionTokenNotUnique
	}
}

// generalCallback handles unspecified errors.
//
// For these errors, we cannot provide the user with a helpful message.
// Instead, the error is logged and we return a general message to users.
func generalCallback(db *gorm.DB) {
	if db.Error == nil {
		return
	}

	db.Error = generalError(db.Error)
}

// InTransaction runs fc in a database transaction. Beginning and committing
// do not run any callbacks, so their errors are translated here.
func InTransaction(db *gorm.DB, fc func(tx *gorm.DB) error) error {
	return generalError(db.Transaction(fc))
}

// generalError replaces errors of the database connection itself with
// ErrGeneral.
func generalError(err error) error {
	if err == nil {
		return nil
	}

	// "sql: database is closed" is hard-coded in database/sql
	if err.Error() == "sql: database is closed" || reflect.TypeOf(err) == reflect.TypeOf(&go_sqlite.Error{}) {
		log.Error().Msgf("%T: %v", err, err.Error())
		return ErrGeneral
	}

	return err
}

// migrate migrates all models to the schema defined in the code.
func migrate(db *gorm.DB) error {
	err := db.AutoMigrate(User{}, Session{}, Wallet{}, Transaction{}, Preset{})
	if err != nil {
		return fmt.Errorf("error during DB migration: %w", err)
	}

	return nil
}
