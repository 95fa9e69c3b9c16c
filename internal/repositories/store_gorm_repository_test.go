package repositories_test

import (
	"testing"
	"time"

	"gudang/internal/models"
	"gudang/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRepository_CreateThenGetByID(t *testing.T) {
	ts := newTestStore(t)

	user, err := ts.users.FindOrCreate("Alice")
	require.NoError(t, err)

	store := models.Store{UserID: user.ID, Name: "Alice's Shop", Type: "Grocery", Location: "NYC"}
	require.NoError(t, ts.stores.Create(&store))

	got, err := ts.stores.GetByID(store.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "Alice's Shop", got.Name)
	assert.Equal(t, "Grocery", got.Type)
	assert.Equal(t, "NYC", got.Location)
}

func TestStoreRepository_CreateWithoutUserRejected(t *testing.T) {
	ts := newTestStore(t)

	err := ts.stores.Create(&models.Store{UserID: 42, Name: "Ghost", Type: "Grocery", Location: "Nowhere"})
	assert.Error(t, err, "foreign key to a missing user must be rejected")
}

func TestStoreRepository_GetByUserNewestFirst(t *testing.T) {
	ts := newTestStore(t)

	user, err := ts.users.FindOrCreate("Alice")
	require.NoError(t, err)

	for _, name := range []string{"First", "Second", "Third"} {
		require.NoError(t, ts.stores.Create(&models.Store{UserID: user.ID, Name: name, Type: "Grocery", Location: "Jakarta"}))
	}

	stores, err := ts.stores.GetByUser(user.ID)
	require.NoError(t, err)
	require.Len(t, stores, 3)
	assert.Equal(t, "Third", stores[0].Name)
	assert.Equal(t, "First", stores[2].Name)
}

func TestStoreRepository_PartialUpdateLeavesOtherFields(t *testing.T) {
	ts := newTestStore(t)

	store := ts.seedStore(t, "Alice", "Alice's Shop")
	before, err := ts.stores.GetByID(store.ID)
	require.NoError(t, err)

	location := "Surabaya"
	time.Sleep(10 * time.Millisecond)
	require.NoError(t, ts.stores.Update(store.ID, models.StoreUpdate{Location: &location}))

	after, err := ts.stores.GetByID(store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Surabaya", after.Location)
	assert.Equal(t, before.Name, after.Name)
	assert.Equal(t, before.Type, after.Type)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt))
}

func TestStoreRepository_DeleteCascadesProductsAndTransactions(t *testing.T) {
	ts := newTestStore(t)

	store := ts.seedStore(t, "Alice", "Alice's Shop")

	// N products with M ledger transactions each.
	const n, m = 3, 2
	for i := 0; i < n; i++ {
		product := ts.seedProduct(t, store.ID, string(rune('A'+i)), 1.0, 10)
		for j := 0; j < m; j++ {
			_, err := ts.ledger.AdjustQuantity(product.ID, 1, models.TransactionIn)
			require.NoError(t, err)
		}
	}

	require.NoError(t, ts.stores.Delete(store.ID))

	products, err := ts.products.GetByStore(store.ID)
	require.NoError(t, err)
	assert.Empty(t, products)

	transactions, err := ts.transactions.GetAll()
	require.NoError(t, err)
	assert.Empty(t, transactions, "cascade must remove every transaction under the store")
}

func TestStoreRepository_DeleteAbsentIsNotFound(t *testing.T) {
	ts := newTestStore(t)

	err := ts.stores.Delete(42)
	assert.ErrorIs(t, err, repositories.ErrNotFound)
}
