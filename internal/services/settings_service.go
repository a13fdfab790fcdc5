package services

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

// SettingsService manages the singleton site configuration and the
// maintenance switch. Reads merge stored overrides over the full defaults;
// writes replace the stored record and broadcast the change.
type SettingsService struct {
	store   *store.Store
	gateway *WorkerGateway
}

// NewSettingsService constructs a SettingsService. gateway may be nil.
func NewSettingsService(st *store.Store, gateway *WorkerGateway) *SettingsService {
	return &SettingsService{store: st, gateway: gateway}
}

// Get returns the site configuration, preferring the worker while reachable.
func (s *SettingsService) Get() models.SiteConfig {
	if s.gateway.Configured() && s.gateway.IsActive() {
		if config, err := s.gateway.Settings(); err == nil {
			return config
		} else {
			log.Printf("[Settings] remote fetch failed, falling back to local: %v", err)
		}
	}
	return s.store.SiteConfig()
}

// Update merges a partial JSON patch over the current configuration, stores
// the full resulting record and mirrors it to the worker best effort. Fields
// absent from the patch keep their current value, feature toggles included.
func (s *SettingsService) Update(patch []byte, token string) (models.SiteConfig, error) {
	config := s.store.SiteConfig()
	if err := json.Unmarshal(patch, &config); err != nil {
		return models.SiteConfig{}, fmt.Errorf("invalid settings payload: %w", err)
	}

	if err := s.store.SetSiteConfig(config); err != nil {
		return models.SiteConfig{}, err
	}

	if s.gateway.Configured() && s.gateway.IsActive() {
		if _, err := s.gateway.SaveSettings(config, token); err != nil {
			log.Printf("[Settings] remote save failed: %v", err)
		}
	}
	return config, nil
}

// Maintenance reports whether the maintenance gate is up.
func (s *SettingsService) Maintenance() bool {
	return s.store.Maintenance()
}

// SetMaintenance toggles the maintenance gate.
func (s *SettingsService) SetMaintenance(enabled bool) error {
	return s.store.SetMaintenance(enabled)
}
