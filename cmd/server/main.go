package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	accountingapp "github.com/coop-erp/backend/internal/application/accounting"
	assetapp "github.com/coop-erp/backend/internal/application/asset"
	documentapp "github.com/coop-erp/backend/internal/application/document"
	memberapp "github.com/coop-erp/backend/internal/application/member"
	partnerapp "github.com/coop-erp/backend/internal/application/partner"
	payrollapp "github.com/coop-erp/backend/internal/application/payroll"
	projectapp "github.com/coop-erp/backend/internal/application/project"
	tradeapp "github.com/coop-erp/backend/internal/application/trade"
	"github.com/coop-erp/backend/internal/infrastructure/config"
	"github.com/coop-erp/backend/internal/infrastructure/logger"
	"github.com/coop-erp/backend/internal/infrastructure/persistence"
	"github.com/coop-erp/backend/internal/infrastructure/storage"
	"github.com/coop-erp/backend/internal/interfaces/http/handler"
	"github.com/coop-erp/backend/internal/interfaces/http/middleware"
	"github.com/coop-erp/backend/internal/interfaces/http/router"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer db.Close()

	store, err := newStorage(cfg, log)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	customerSvc := partnerapp.NewCustomerService(persistence.NewGormCustomerRepository(db.DB), log)
	supplierSvc := partnerapp.NewSupplierService(persistence.NewGormSupplierRepository(db.DB), log)
	memberSvc := memberapp.NewService(db, log)
	salesSvc := tradeapp.NewSalesService(db, log)
	purchaseSvc := tradeapp.NewPurchaseService(db, log)
	projectSvc := projectapp.NewService(db, log)
	assetSvc := assetapp.NewService(db, log)
	payrollSvc := payrollapp.NewService(db, log)
	accountingSvc := accountingapp.NewService(db, log)
	documentSvc := documentapp.NewService(db, store, log)

	middleware.SetupValidator()

	engine := router.New(log, router.Handlers{
		System:     handler.NewSystemHandler(db),
		Customer:   handler.NewCustomerHandler(customerSvc),
		Supplier:   handler.NewSupplierHandler(supplierSvc),
		Member:     handler.NewMemberHandler(memberSvc),
		Sales:      handler.NewSalesHandler(salesSvc),
		Purchase:   handler.NewPurchaseHandler(purchaseSvc),
		Project:    handler.NewProjectHandler(projectSvc),
		Asset:      handler.NewAssetHandler(assetSvc),
		Payroll:    handler.NewPayrollHandler(payrollSvc),
		Accounting: handler.NewAccountingHandler(accountingSvc),
		Document:   handler.NewDocumentHandler(documentSvc),
	})

	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			return fmt.Errorf("set trusted proxies: %w", err)
		}
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server listening",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve: %w", err)
	case sig := <-quit:
		log.Info("shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}

func newStorage(cfg *config.Config, log *zap.Logger) (storage.FileStorage, error) {
	switch cfg.Storage.Backend {
	case "s3":
		return storage.NewS3Storage(&cfg.Storage, log)
	default:
		return storage.NewLocalStorage(cfg.Storage.LocalPath)
	}
}
