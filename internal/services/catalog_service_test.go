package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

func newTestCatalog(t *testing.T) (*CatalogService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	return NewCatalogService(st, NewWorkerGateway("", "")), st
}

func idx(i int) *int { return &i }

func TestCatalogListHidesDraftsFromShoppers(t *testing.T) {
	svc, st := newTestCatalog(t)
	require.NoError(t, st.SetProducts([]models.Product{
		{ID: "a", Name: "Live", Published: true, CreatedAt: 2},
		{ID: "b", Name: "Draft", Published: false, CreatedAt: 1},
	}))

	page := svc.List(1, 12, false, "")
	require.Len(t, page.Data, 1)
	assert.Equal(t, "Live", page.Data[0].Name)
	assert.Equal(t, 1, page.Total)

	adminPage := svc.List(1, 12, true, "")
	assert.Len(t, adminPage.Data, 2)
}

func TestCatalogListPagination(t *testing.T) {
	svc, st := newTestCatalog(t)

	products := make([]models.Product, 0, 5)
	for i := 0; i < 5; i++ {
		products = append(products, models.Product{
			ID:        string(rune('a' + i)),
			Published: true,
			CreatedAt: int64(i + 1),
		})
	}
	require.NoError(t, st.SetProducts(products))

	first := svc.List(1, 2, false, "")
	assert.Len(t, first.Data, 2)
	assert.Equal(t, 5, first.Total)
	assert.True(t, first.HasMore)

	last := svc.List(3, 2, false, "")
	assert.Len(t, last.Data, 1)
	assert.False(t, last.HasMore)

	beyond := svc.List(9, 2, false, "")
	assert.Empty(t, beyond.Data)
	assert.False(t, beyond.HasMore)
}

func TestCatalogListOrdering(t *testing.T) {
	svc, st := newTestCatalog(t)

	t.Run("explicit order index wins when every item has one", func(t *testing.T) {
		require.NoError(t, st.SetProducts([]models.Product{
			{ID: "a", Published: true, OrderIndex: idx(2), CreatedAt: 30},
			{ID: "b", Published: true, OrderIndex: idx(0), CreatedAt: 10},
			{ID: "c", Published: true, OrderIndex: idx(1), CreatedAt: 20},
		}))

		page := svc.List(1, 12, false, "")
		require.Len(t, page.Data, 3)
		assert.Equal(t, "b", page.Data[0].ID)
		assert.Equal(t, "c", page.Data[1].ID)
		assert.Equal(t, "a", page.Data[2].ID)
	})

	t.Run("newest first when any item lacks an index", func(t *testing.T) {
		require.NoError(t, st.SetProducts([]models.Product{
			{ID: "a", Published: true, OrderIndex: idx(0), CreatedAt: 10},
			{ID: "b", Published: true, CreatedAt: 30},
			{ID: "c", Published: true, OrderIndex: idx(1), CreatedAt: 20},
		}))

		page := svc.List(1, 12, false, "")
		require.Len(t, page.Data, 3)
		assert.Equal(t, "b", page.Data[0].ID)
		assert.Equal(t, "c", page.Data[1].ID)
		assert.Equal(t, "a", page.Data[2].ID)
	})
}

func TestCatalogUpsert(t *testing.T) {
	svc, _ := newTestCatalog(t)

	created, err := svc.Upsert(models.Product{Name: "Harmattan Jacket", Price: 22000}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotZero(t, created.CreatedAt)

	updated, err := svc.Upsert(models.Product{ID: created.ID, Name: "Harmattan Jacket", Price: 25000}, "")
	require.NoError(t, err)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt, "updates keep the original timestamp")
	assert.Equal(t, float64(25000), updated.Price)

	found, ok := svc.FindProduct(created.ID)
	require.True(t, ok)
	assert.Equal(t, float64(25000), found.Price)
}

func TestCatalogDelete(t *testing.T) {
	svc, st := newTestCatalog(t)
	require.NoError(t, st.SetProducts([]models.Product{
		{ID: "keep", Published: true},
		{ID: "drop", Published: true},
	}))

	require.NoError(t, svc.Delete("drop", ""))

	_, ok := svc.FindProduct("drop")
	assert.False(t, ok)
	_, ok = svc.FindProduct("keep")
	assert.True(t, ok)
}

func TestFindProductByName(t *testing.T) {
	svc, st := newTestCatalog(t)
	require.NoError(t, st.SetProducts([]models.Product{{ID: "p1", Name: "Savanna Bootcut"}}))

	byName, ok := svc.FindProduct("Savanna Bootcut")
	require.True(t, ok)
	assert.Equal(t, "p1", byName.ID)

	_, ok = svc.FindProduct("no such thing")
	assert.False(t, ok)
}
