// Package app wires configuration, storage and usecases together for the
// API server and the operator CLI.
package app

import (
	"context"
	"fmt"

	repo "loan-crm/internal/adapter/repository/mysql"
	"loan-crm/internal/config"
	"loan-crm/internal/infrastructure/db"
	"loan-crm/internal/infrastructure/storage"
	"loan-crm/internal/logger"
	adminuc "loan-crm/internal/usecase/admin"
	appuc "loan-crm/internal/usecase/application"
	docuc "loan-crm/internal/usecase/document"
	empuc "loan-crm/internal/usecase/employee"
	"loan-crm/internal/usecase/leadimport"
	productuc "loan-crm/internal/usecase/product"
	"loan-crm/internal/usecase/report"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	DB  *gorm.DB
	Log *zap.Logger

	Employees    *empuc.Usecase
	Products     *productuc.Usecase
	Applications *appuc.Usecase
	Documents    *docuc.Usecase
	Reports      *report.Usecase
	Admin        *adminuc.Usecase
	Importer     *leadimport.Importer
}

// New opens and migrates the database and builds every usecase.
func New(cfg *config.Config, log *zap.Logger) (*App, error) {
	gdb, err := db.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	a, err := NewWithDB(cfg, gdb, log)
	if err != nil {
		if sqlDB, derr := gdb.DB(); derr == nil {
			_ = sqlDB.Close()
		}
		return nil, err
	}
	return a, nil
}

// NewWithDB is New on an already opened database.
func NewWithDB(cfg *config.Config, gdb *gorm.DB, log *zap.Logger) (*App, error) {
	log = logger.OrNop(log)
	if err := db.Migrate(gdb); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	policy, err := leadimport.ParseFallbackPolicy(cfg.ImportFallback)
	if err != nil {
		return nil, err
	}

	repos := repo.NewRepos(gdb)
	apps := appuc.NewUsecase(repos.Applications, repos.Disbursements, repo.NewGormUoW(gdb), log.Named("applications"))
	return &App{
		DB:           gdb,
		Log:          log,
		Employees:    empuc.NewUsecase(repos.Employees, log.Named("employees")),
		Products:     productuc.NewUsecase(repos.Products, log.Named("products")),
		Applications: apps,
		Documents:    docuc.NewUsecase(repos.Applications, repos.Documents, storage.NewLocalStore(cfg.UploadDir), log.Named("documents")),
		Reports:      report.NewUsecase(repos.Applications, repos.Disbursements),
		Admin: adminuc.NewUsecase(repos.Admins, adminuc.Settings{
			Username: cfg.AdminUsername,
			Email:    cfg.AdminEmail,
			Password: cfg.AdminPassword,
		}, log.Named("admin")),
		Importer: leadimport.NewImporter(repos.Employees, apps, policy, log.Named("import")),
	}, nil
}

// Ping checks that the database answers.
func (a *App) Ping(ctx context.Context) error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
