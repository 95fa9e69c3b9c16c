package main

import (
	"fmt"

	"gudang/internal/config"
	"gudang/internal/models"
	"gudang/internal/prefs"
	"gudang/internal/repositories"
	"gudang/internal/services"
	"gudang/internal/storage"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg := config.Load()

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("startup failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zapCfg := zap.NewProductionConfig()
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)
	return zapCfg.Build()
}

// run wires the persistence core and drives the app lifecycle: migrate,
// optionally reset or seed, then report the state of every store. The
// mobile UI this core was built for is replaced by this thin CLI driver.
func run(cfg *config.Config, logger *zap.Logger) error {
	// --- Preference store (independent of the relational store) ---
	prefStore, err := prefs.Open(cfg.PrefsPath)
	if err != nil {
		return err
	}
	defer prefStore.Close()

	// --- Storage handle and schema migration ---
	// The migrator must finish before any repository call; a failure here
	// aborts startup rather than running on a partial schema.
	handle := storage.NewHandle(cfg.DBPath)
	defer handle.Close()

	if err := storage.NewMigrator(handle, logger).Run(); err != nil {
		return fmt.Errorf("database initialization failed: %w", err)
	}

	// --- Repositories ---
	userRepo := repositories.NewGORMUserRepository(handle)
	storeRepo := repositories.NewGORMStoreRepository(handle)
	productRepo := repositories.NewGORMProductRepository(handle)
	transactionRepo := repositories.NewGORMTransactionRepository(handle)
	categoryRepo := repositories.NewGORMCategoryRepository(handle)
	ledger := repositories.NewGORMInventoryLedger(handle)

	// --- Services ---
	appService := services.NewAppService(userRepo, prefStore, logger)
	onboarding := services.NewOnboardingService(userRepo, storeRepo, prefStore, logger)
	productService := services.NewProductService(productRepo, categoryRepo)
	inventory := services.NewInventoryService(ledger, productRepo, transactionRepo, cfg.LowStockThreshold, logger)

	if cfg.Reset {
		return appService.Reset()
	}

	installID, err := appService.InstallID()
	if err != nil {
		return err
	}
	first, err := appService.FirstLaunch()
	if err != nil {
		return err
	}
	logger.Info("gudang started",
		zap.String("install_id", installID),
		zap.Bool("first_launch", first),
		zap.String("db", cfg.DBPath))

	if cfg.SeedDemo && first {
		if err := seedDemo(onboarding, productService, inventory, logger); err != nil {
			return err
		}
	}

	return reportStores(storeRepo, inventory, logger)
}

// seedDemo walks the onboarding and catalog flow once so a fresh install
// has something to look at.
func seedDemo(onboarding *services.OnboardingService, catalog *services.ProductService, inventory *services.InventoryService, logger *zap.Logger) error {
	_, store, err := onboarding.Complete("Raja", models.Store{
		Name:     "Toko Elektronik",
		Type:     "Electronics",
		Location: "Jakarta",
	})
	if err != nil {
		return err
	}

	if err := catalog.CreateCategory(&models.Category{StoreID: store.ID, Name: "Smartphones"}); err != nil {
		return err
	}

	phone := models.Product{
		StoreID:     store.ID,
		Name:        "iPhone 15",
		Description: "Latest iPhone model",
		Price:       999.99,
		Quantity:    10,
		Category:    "Smartphones",
	}
	if err := catalog.CreateProduct(&phone); err != nil {
		return err
	}

	if _, err := inventory.Adjust(phone.ID, 5, models.TransactionIn); err != nil {
		return err
	}

	logger.Info("seeded demo data", zap.Uint("store_id", store.ID), zap.Uint("product_id", phone.ID))
	return nil
}

// reportStores logs a stock summary and the low-stock products per store.
func reportStores(stores repositories.StoreRepository, inventory *services.InventoryService, logger *zap.Logger) error {
	all, err := stores.GetAll()
	if err != nil {
		return err
	}

	for _, store := range all {
		summary, err := inventory.StoreSummary(store.ID)
		if err != nil {
			return err
		}
		low, err := inventory.LowStock(store.ID)
		if err != nil {
			return err
		}
		logger.Info("store summary",
			zap.Uint("store_id", store.ID),
			zap.String("name", store.Name),
			zap.Int64("products", summary.ProductCount),
			zap.Int64("units", summary.TotalUnits),
			zap.Float64("value", summary.TotalValue),
			zap.Int("low_stock", len(low)))
	}
	return nil
}
