package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkadris/storefront/internal/store"
)

func newTestSettings(t *testing.T) (*SettingsService, *store.Store) {
	t.Helper()
	st := store.New(store.NewMemoryKV())
	return NewSettingsService(st, NewWorkerGateway("", "")), st
}

func TestSettingsGetReturnsDefaults(t *testing.T) {
	svc, _ := newTestSettings(t)

	config := svc.Get()
	assert.Equal(t, "D-Kadris", config.LogoText)
	assert.NotEmpty(t, config.FeaturedFits)
}

func TestSettingsUpdateMergesPatch(t *testing.T) {
	svc, _ := newTestSettings(t)

	updated, err := svc.Update([]byte(`{"heroTitle":"New Season","featureToggles":{"enablePayments":true}}`), "")
	require.NoError(t, err)

	assert.Equal(t, "New Season", updated.HeroTitle)
	assert.Equal(t, "D-Kadris", updated.LogoText, "unpatched fields survive")
	assert.True(t, updated.FeatureToggles.EnablePayments)
	assert.True(t, updated.FeatureToggles.EnableCommissions, "unpatched toggles keep their defaults")

	// The merged record is what subsequent reads return.
	assert.Equal(t, updated, svc.Get())
}

func TestSettingsUpdateRejectsMalformedPatch(t *testing.T) {
	svc, _ := newTestSettings(t)

	_, err := svc.Update([]byte(`{broken`), "")
	assert.Error(t, err)
	assert.Equal(t, "D-Kadris", svc.Get().LogoText, "a bad patch changes nothing")
}

func TestMaintenanceToggle(t *testing.T) {
	svc, _ := newTestSettings(t)

	assert.False(t, svc.Maintenance())
	require.NoError(t, svc.SetMaintenance(true))
	assert.True(t, svc.Maintenance())
	require.NoError(t, svc.SetMaintenance(false))
	assert.False(t, svc.Maintenance())
}
