package db

import (
	"fmt"
	"log"
	"os"
	"time"

	"loan-crm/internal/config"
	"loan-crm/internal/domain/admin"
	"loan-crm/internal/domain/application"
	"loan-crm/internal/domain/disbursement"
	"loan-crm/internal/domain/document"
	"loan-crm/internal/domain/employee"
	"loan-crm/internal/domain/product"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open picks the dialector from cfg.DBDriver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return OpenGorm(cfg.MySQLDSN())
	case config.DriverSQLite:
		return OpenGormWithDialector(sqlite.Open(cfg.SQLiteDSN()))
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.DBDriver)
	}
}

func OpenGorm(dsn string) (*gorm.DB, error) {
	return OpenGormWithDialector(mysql.Open(dsn))
}

func OpenGormWithDialector(dial gorm.Dialector) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
	db, err := gorm.Open(dial, cfg)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(30)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}
	log.Println("gorm: connected")
	return db, nil
}

// Models lists every table in dependency order.
func Models() []any {
	return []any{
		&employee.Employee{},
		&product.LoanProduct{},
		&application.LoanApplication{},
		&document.ApplicationDocument{},
		&disbursement.Disbursement{},
		&admin.User{},
	}
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
