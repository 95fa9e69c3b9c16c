package repositories_test

import (
	"path/filepath"
	"testing"

	"gudang/internal/models"
	"gudang/internal/repositories"
	"gudang/internal/storage"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

// testStore bundles every repository over one migrated temp database.
type testStore struct {
	handle       *storage.Handle
	users        *repositories.GORMUserRepository
	stores       *repositories.GORMStoreRepository
	products     *repositories.GORMProductRepository
	transactions *repositories.GORMTransactionRepository
	categories   *repositories.GORMCategoryRepository
	ledger       *repositories.GORMInventoryLedger
}

func newTestStore(t *testing.T) *testStore {
	t.Helper()

	handle := storage.NewHandle(filepath.Join(t.TempDir(), "app.db"))
	t.Cleanup(func() { handle.Close() })
	require.NoError(t, storage.NewMigrator(handle, zaptest.NewLogger(t)).Run())

	return &testStore{
		handle:       handle,
		users:        repositories.NewGORMUserRepository(handle),
		stores:       repositories.NewGORMStoreRepository(handle),
		products:     repositories.NewGORMProductRepository(handle),
		transactions: repositories.NewGORMTransactionRepository(handle),
		categories:   repositories.NewGORMCategoryRepository(handle),
		ledger:       repositories.NewGORMInventoryLedger(handle),
	}
}

// seedStore creates a user and a store to hang fixtures off.
func (ts *testStore) seedStore(t *testing.T, userName, storeName string) *models.Store {
	t.Helper()

	user, err := ts.users.FindOrCreate(userName)
	require.NoError(t, err)

	store := models.Store{UserID: user.ID, Name: storeName, Type: "Grocery", Location: "Jakarta"}
	require.NoError(t, ts.stores.Create(&store))
	return &store
}

func (ts *testStore) seedProduct(t *testing.T, storeID uint, name string, price float64, quantity int) *models.Product {
	t.Helper()

	product := models.Product{StoreID: storeID, Name: name, Price: price, Quantity: quantity}
	require.NoError(t, ts.products.Create(&product))
	return &product
}
