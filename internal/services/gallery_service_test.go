package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

func newTestGallery(t *testing.T) (*GalleryService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	return NewGalleryService(st, NewWorkerGateway("", "")), st
}

func seedGallery(t *testing.T, st *store.Store) {
	t.Helper()
	require.NoError(t, st.SetGallery([]models.GalleryItem{
		{ID: "g1", Title: "First", OrderIndex: 0},
		{ID: "g2", Title: "Second", OrderIndex: 1},
		{ID: "g3", Title: "Third", OrderIndex: 2},
	}))
}

func TestSwapAdjacent(t *testing.T) {
	svc, st := newTestGallery(t)
	seedGallery(t, st)

	require.NoError(t, svc.SwapAdjacent(0, ""))

	items := svc.Fetch(true, "").Items
	require.Len(t, items, 3)
	assert.Equal(t, []string{"g2", "g1", "g3"}, []string{items[0].ID, items[1].ID, items[2].ID})
	for i, item := range items {
		assert.Equal(t, i, item.OrderIndex, "indices stay dense after a swap")
	}
}

func TestSwapAdjacentRejectsOutOfRange(t *testing.T) {
	svc, st := newTestGallery(t)
	seedGallery(t, st)

	assert.ErrorIs(t, svc.SwapAdjacent(-1, ""), ErrInvalidSwapIndex)
	assert.ErrorIs(t, svc.SwapAdjacent(2, ""), ErrInvalidSwapIndex, "last item has no successor")
}

func TestRemoveItemRenumbers(t *testing.T) {
	svc, st := newTestGallery(t)
	seedGallery(t, st)

	require.NoError(t, svc.RemoveItem("g2", ""))

	items := svc.Fetch(true, "").Items
	require.Len(t, items, 2)
	assert.Equal(t, "g1", items[0].ID)
	assert.Equal(t, 0, items[0].OrderIndex)
	assert.Equal(t, "g3", items[1].ID)
	assert.Equal(t, 1, items[1].OrderIndex)

	assert.ErrorIs(t, svc.RemoveItem("g2", ""), ErrGalleryItemNotFound)
}

func TestAddItemAppendsAtEnd(t *testing.T) {
	svc, st := newTestGallery(t)
	seedGallery(t, st)

	added, err := svc.AddItem(models.GalleryItem{Title: "Fourth"}, "")
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, 3, added.OrderIndex)
}

func TestUpdateItemKeepsPosition(t *testing.T) {
	svc, st := newTestGallery(t)
	seedGallery(t, st)

	require.NoError(t, svc.UpdateItem(models.GalleryItem{ID: "g2", Title: "Renamed", OrderIndex: 99}, ""))

	items := svc.Fetch(true, "").Items
	assert.Equal(t, "Renamed", items[1].Title)
	assert.Equal(t, 1, items[1].OrderIndex)
}

func TestHiddenGalleryIsEmptyForShoppers(t *testing.T) {
	svc, st := newTestGallery(t)
	seedGallery(t, st)

	visible := false
	_, err := svc.UpdateConfig(models.GalleryConfigPatch{Visible: &visible}, "")
	require.NoError(t, err)

	public := svc.Fetch(false, "")
	assert.Empty(t, public.Items)
	assert.False(t, public.Config.Visible, "config is still returned while hidden")

	admin := svc.Fetch(true, "")
	assert.Len(t, admin.Items, 3)
}

func TestUpdateConfigMergesPatch(t *testing.T) {
	svc, _ := newTestGallery(t)

	columns := 4
	updated, err := svc.UpdateConfig(models.GalleryConfigPatch{Columns: &columns}, "")
	require.NoError(t, err)

	assert.Equal(t, 4, updated.Columns)
	assert.Equal(t, models.GalleryLayoutGrid, updated.Layout, "unpatched fields keep their value")
	assert.True(t, updated.Visible)
}
