package store

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkadris/storefront/internal/models"
)

func newTestStore(t *testing.T) (*Store, *MemoryKV) {
	t.Helper()
	kv := NewMemoryKV()
	return New(kv), kv
}

func TestProductsSeedDefaults(t *testing.T) {
	st, _ := newTestStore(t)

	products := st.Products()
	require.Len(t, products, 3)
	assert.Equal(t, "Savanna Bootcut", products[0].Name)
	for _, p := range products {
		assert.True(t, p.Published)
		assert.NotZero(t, p.CreatedAt)
	}
}

func TestProductsMalformedDocumentFallsBack(t *testing.T) {
	st, kv := newTestStore(t)
	require.NoError(t, kv.Set(CollectionProducts, []byte("{nonsense")))

	products := st.Products()
	require.Len(t, products, 3, "malformed document should yield the seed catalog")
}

func TestProductsStampMissingTimestamps(t *testing.T) {
	st, _ := newTestStore(t)
	require.NoError(t, st.SetProducts([]models.Product{{ID: "x", Name: "Unstamped"}}))

	products := st.Products()
	require.Len(t, products, 1)
	assert.NotZero(t, products[0].CreatedAt)
}

func TestOrdersEmptyByDefault(t *testing.T) {
	st, _ := newTestStore(t)
	assert.Empty(t, st.Orders())

	require.NoError(t, st.AppendOrder(models.Order{ID: "o1"}))
	require.NoError(t, st.AppendOrder(models.Order{ID: "o2"}))
	assert.Len(t, st.Orders(), 2)
}

func TestSiteConfigMergesPartialOverDefaults(t *testing.T) {
	st, kv := newTestStore(t)

	partial := []byte(`{"logoText":"Atelier Nine","featureToggles":{"enablePayments":true}}`)
	require.NoError(t, kv.Set(CollectionSiteConfig, partial))

	cfg := st.SiteConfig()
	assert.Equal(t, "Atelier Nine", cfg.LogoText)
	assert.Equal(t, DefaultSiteConfig().HeroTitle, cfg.HeroTitle, "absent fields keep defaults")
	assert.True(t, cfg.FeatureToggles.EnablePayments)
	assert.True(t, cfg.FeatureToggles.EnableCommissions, "nested toggle defaults survive a partial record")
	assert.NotEmpty(t, cfg.FeaturedFits)
}

func TestSiteConfigRoundTripIsStable(t *testing.T) {
	st, _ := newTestStore(t)

	first := st.SiteConfig()
	require.NoError(t, st.SetSiteConfig(first))
	second := st.SiteConfig()

	assert.Equal(t, first, second)
}

func TestGalleryConfigDefaults(t *testing.T) {
	st, _ := newTestStore(t)

	cfg := st.GalleryConfig()
	assert.Equal(t, models.GalleryLayoutGrid, cfg.Layout)
	assert.Equal(t, 3, cfg.Columns)
	assert.Equal(t, 6, cfg.DisplayCount)
	assert.True(t, cfg.Visible)
}

func TestMaintenanceDefaultsDown(t *testing.T) {
	st, _ := newTestStore(t)
	assert.False(t, st.Maintenance())

	require.NoError(t, st.SetMaintenance(true))
	assert.True(t, st.Maintenance())
}

func TestWritePublishesChange(t *testing.T) {
	st, _ := newTestStore(t)

	changes, cancel := st.Hub().Subscribe()
	defer cancel()

	require.NoError(t, st.SetMaintenance(true))

	select {
	case change := <-changes:
		assert.Equal(t, CollectionMaintenance, change.Collection)
	default:
		t.Fatal("expected a change notification after a write")
	}
}

func TestSubscribeCancelStopsDelivery(t *testing.T) {
	st, _ := newTestStore(t)

	changes, cancel := st.Hub().Subscribe()
	cancel()

	require.NoError(t, st.SetMaintenance(true))

	_, open := <-changes
	assert.False(t, open, "cancelled subscription should be closed")
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()

	value := []byte(`{"a":1}`)
	require.NoError(t, kv.Set("doc", value))
	value[0] = 'X'

	got, ok, err := kv.Get("doc")
	require.NoError(t, err)
	require.True(t, ok)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(got, &decoded))
	assert.Equal(t, 1, decoded["a"])
}
