package store

import (
	"encoding/json"
	"log"
	"time"

	"github.com/dkadris/storefront/internal/models"
)

// Collection keys. Each key owns exactly one document in the KV backend.
const (
	CollectionProducts      = "products"
	CollectionOrders        = "orders"
	CollectionAffiliates    = "affiliates"
	CollectionPayouts       = "payouts"
	CollectionGallery       = "gallery"
	CollectionGalleryConfig = "gallery_config"
	CollectionSiteConfig    = "site_config"
	CollectionMaintenance   = "maintenance"
)

// Store exposes typed get/set accessors per collection over a KV backend.
// Reads never fail: missing or malformed documents fall back to the defaults
// defined in this package. Every successful write publishes a Change through
// the hub.
type Store struct {
	kv  KV
	hub *Hub
}

// New constructs a Store over the given backend.
func New(kv KV) *Store {
	return &Store{kv: kv, hub: NewHub()}
}

// Hub returns the change-notification hub for this store.
func (s *Store) Hub() *Hub {
	return s.hub
}

// read unmarshals the document under key into out. It returns false (leaving
// out untouched by the caller's defaults) when the document is missing or
// malformed; storage-level failures are logged, never propagated.
func (s *Store) read(key string, out any) bool {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		log.Printf("[Store] read %s failed: %v", key, err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		log.Printf("[Store] malformed document %s, using defaults: %v", key, err)
		return false
	}
	return true
}

func (s *Store) write(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := s.kv.Set(key, raw); err != nil {
		return err
	}
	s.hub.Publish(key)
	return nil
}

// Products returns the product collection, seeding the defaults when nothing
// has been stored yet. Items missing a creation timestamp get stamped so
// timestamp-based sorting stays total.
func (s *Store) Products() []models.Product {
	var products []models.Product
	if !s.read(CollectionProducts, &products) {
		return defaultProducts()
	}
	now := time.Now().UnixMilli()
	for i := range products {
		if products[i].CreatedAt == 0 {
			products[i].CreatedAt = now
		}
	}
	return products
}

// SetProducts replaces the product collection.
func (s *Store) SetProducts(products []models.Product) error {
	return s.write(CollectionProducts, products)
}

// Orders returns all recorded orders.
func (s *Store) Orders() []models.Order {
	var orders []models.Order
	s.read(CollectionOrders, &orders)
	return orders
}

// SetOrders replaces the order collection.
func (s *Store) SetOrders(orders []models.Order) error {
	return s.write(CollectionOrders, orders)
}

// AppendOrder adds one order to the collection.
func (s *Store) AppendOrder(order models.Order) error {
	return s.SetOrders(append(s.Orders(), order))
}

// Affiliates returns all partner accounts keyed by email.
func (s *Store) Affiliates() map[string]models.Affiliate {
	affiliates := make(map[string]models.Affiliate)
	s.read(CollectionAffiliates, &affiliates)
	return affiliates
}

// SetAffiliates replaces the affiliate collection.
func (s *Store) SetAffiliates(affiliates map[string]models.Affiliate) error {
	return s.write(CollectionAffiliates, affiliates)
}

// Payouts returns all payout requests.
func (s *Store) Payouts() []models.PayoutRequest {
	var payouts []models.PayoutRequest
	s.read(CollectionPayouts, &payouts)
	return payouts
}

// SetPayouts replaces the payout collection.
func (s *Store) SetPayouts(payouts []models.PayoutRequest) error {
	return s.write(CollectionPayouts, payouts)
}

// Gallery returns the curated image collection.
func (s *Store) Gallery() []models.GalleryItem {
	var items []models.GalleryItem
	s.read(CollectionGallery, &items)
	return items
}

// SetGallery replaces the gallery collection.
func (s *Store) SetGallery(items []models.GalleryItem) error {
	return s.write(CollectionGallery, items)
}

// GalleryConfig returns the gallery layout configuration.
func (s *Store) GalleryConfig() models.GalleryConfig {
	config := DefaultGalleryConfig()
	s.read(CollectionGalleryConfig, &config)
	return config
}

// SetGalleryConfig replaces the gallery configuration.
func (s *Store) SetGalleryConfig(config models.GalleryConfig) error {
	return s.write(CollectionGalleryConfig, config)
}

// SiteConfig returns the site configuration: the stored partial record merged
// over the full defaults. Fields absent from the stored document keep their
// default, including nested feature toggles, so adding a toggle in a future
// version needs no migration of existing records.
func (s *Store) SiteConfig() models.SiteConfig {
	config := DefaultSiteConfig()
	s.read(CollectionSiteConfig, &config)
	if len(config.FeaturedFits) == 0 {
		config.FeaturedFits = defaultFeaturedFits()
	}
	return config
}

// SetSiteConfig replaces the stored site configuration.
func (s *Store) SetSiteConfig(config models.SiteConfig) error {
	return s.write(CollectionSiteConfig, config)
}

// Maintenance reports whether the maintenance gate is up.
func (s *Store) Maintenance() bool {
	var enabled bool
	s.read(CollectionMaintenance, &enabled)
	return enabled
}

// SetMaintenance toggles the maintenance gate.
func (s *Store) SetMaintenance(enabled bool) error {
	return s.write(CollectionMaintenance, enabled)
}
