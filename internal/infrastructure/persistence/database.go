package persistence

import (
	"fmt"
	"time"

	"github.com/coop-erp/backend/internal/domain/accounting"
	"github.com/coop-erp/backend/internal/domain/asset"
	"github.com/coop-erp/backend/internal/domain/document"
	"github.com/coop-erp/backend/internal/domain/member"
	"github.com/coop-erp/backend/internal/domain/partner"
	"github.com/coop-erp/backend/internal/domain/payroll"
	"github.com/coop-erp/backend/internal/domain/project"
	"github.com/coop-erp/backend/internal/domain/trade"
	"github.com/coop-erp/backend/internal/infrastructure/config"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database holds the database connection and provides methods for database operations
type Database struct {
	DB *gorm.DB
}

// NewDatabase creates a new database connection with the given configuration
func NewDatabase(cfg *config.DatabaseConfig) (*Database, error) {
	return newDatabaseWithLogLevel(cfg, logger.Silent)
}

// NewDatabaseWithLogger creates a new database connection with custom logger settings
func NewDatabaseWithLogger(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*Database, error) {
	return newDatabaseWithLogLevel(cfg, logLevel)
}

func newDatabaseWithLogLevel(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*Database, error) {
	gormLogger := logger.Default.LogMode(logLevel)

	db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)
	sqlDB.SetConnMaxIdleTime(time.Duration(cfg.ConnMaxIdleTime) * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{DB: db}, nil
}

// Close closes the database connection
func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Ping checks if the database connection is alive
func (d *Database) Ping() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Ping()
}

// Transaction executes a function within a database transaction. Child
// mutations and their parent propagation always go through here together.
func (d *Database) Transaction(fn func(tx *gorm.DB) error) error {
	return d.DB.Transaction(fn)
}

// Migrate creates or updates the schema for every domain entity
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&partner.Customer{},
		&partner.Supplier{},
		&member.Member{},
		&member.SavingsTransaction{},
		&member.SHUDistribution{},
		&trade.SalesOrder{},
		&trade.SalesOrderItem{},
		&trade.SalesInvoice{},
		&trade.InvoicePayment{},
		&trade.PurchaseOrder{},
		&trade.PurchaseOrderItem{},
		&trade.SupplierInvoice{},
		&trade.SupplierInvoicePayment{},
		&project.Project{},
		&project.ProjectTask{},
		&project.ProjectTimeEntry{},
		&project.ProjectInvoice{},
		&project.ProjectInvoiceItem{},
		&project.ProjectInvoicePayment{},
		&asset.Asset{},
		&asset.AssetDepreciation{},
		&asset.AssetMaintenance{},
		&payroll.Employee{},
		&payroll.Payroll{},
		&payroll.PayrollItem{},
		&accounting.ChartOfAccounts{},
		&accounting.JournalEntry{},
		&accounting.LedgerEntry{},
		&accounting.FiscalPeriod{},
		&document.Document{},
		&document.DocumentVersion{},
	)
}
