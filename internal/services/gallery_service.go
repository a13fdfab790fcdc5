package services

import (
	"errors"
	"log"
	"sort"

	"github.com/google/uuid"

	"github.com/dkadris/storefront/internal/models"
	"github.com/dkadris/storefront/internal/store"
)

// Gallery service errors.
var (
	ErrGalleryItemNotFound = errors.New("gallery item not found")
	ErrInvalidSwapIndex    = errors.New("swap index out of range")
)

// GalleryService manages the curated image gallery and its layout
// configuration. Item order indices are kept dense (0..n-1) by every
// mutation.
type GalleryService struct {
	store   *store.Store
	gateway *WorkerGateway
}

// NewGalleryService constructs a GalleryService. gateway may be nil.
func NewGalleryService(st *store.Store, gateway *WorkerGateway) *GalleryService {
	return &GalleryService{store: st, gateway: gateway}
}

// Fetch returns the gallery items and configuration. A hidden gallery yields
// an empty item list for non-administrative callers, but the configuration is
// always returned. Remote data is preferred while the worker is reachable.
func (s *GalleryService) Fetch(admin bool, token string) GalleryPayload {
	if s.gateway.Configured() && s.gateway.IsActive() {
		requestToken := ""
		if admin {
			requestToken = token
		}
		if payload, err := s.gateway.Gallery(requestToken); err == nil {
			return *payload
		} else {
			log.Printf("[Gallery] remote fetch failed, falling back to local: %v", err)
		}
	}

	config := s.store.GalleryConfig()
	if !admin && !config.Visible {
		return GalleryPayload{Items: []models.GalleryItem{}, Config: config}
	}

	items := s.store.Gallery()
	sort.SliceStable(items, func(i, j int) bool { return items[i].OrderIndex < items[j].OrderIndex })
	return GalleryPayload{Items: items, Config: config}
}

// Replace overwrites the items and/or the configuration, renumbering items.
func (s *GalleryService) Replace(items []models.GalleryItem, patch *models.GalleryConfigPatch, token string) error {
	if items != nil {
		if err := s.saveItems(items, token); err != nil {
			return err
		}
	}
	if patch != nil {
		if _, err := s.UpdateConfig(*patch, token); err != nil {
			return err
		}
	}
	return nil
}

// AddItem appends a new gallery item at the end of the display sequence.
func (s *GalleryService) AddItem(item models.GalleryItem, token string) (models.GalleryItem, error) {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	items := s.store.Gallery()
	item.OrderIndex = len(items)
	if err := s.saveItems(append(items, item), token); err != nil {
		return models.GalleryItem{}, err
	}
	return item, nil
}

// UpdateItem replaces an existing item, keeping its position.
func (s *GalleryService) UpdateItem(item models.GalleryItem, token string) error {
	items := s.store.Gallery()
	for i := range items {
		if items[i].ID == item.ID {
			item.OrderIndex = items[i].OrderIndex
			items[i] = item
			return s.saveItems(items, token)
		}
	}
	return ErrGalleryItemNotFound
}

// RemoveItem deletes an item by id and renumbers the remainder.
func (s *GalleryService) RemoveItem(id, token string) error {
	items := s.store.Gallery()
	kept := make([]models.GalleryItem, 0, len(items))
	found := false
	for _, item := range items {
		if item.ID == id {
			found = true
			continue
		}
		kept = append(kept, item)
	}
	if !found {
		return ErrGalleryItemNotFound
	}
	return s.saveItems(kept, token)
}

// SwapAdjacent exchanges the items at display positions index and index+1.
func (s *GalleryService) SwapAdjacent(index int, token string) error {
	items := s.store.Gallery()
	sort.SliceStable(items, func(i, j int) bool { return items[i].OrderIndex < items[j].OrderIndex })
	if index < 0 || index+1 >= len(items) {
		return ErrInvalidSwapIndex
	}
	items[index], items[index+1] = items[index+1], items[index]
	for i := range items {
		items[i].OrderIndex = i
	}
	return s.saveItems(items, token)
}

// UpdateConfig merges a partial configuration update over the stored one.
func (s *GalleryService) UpdateConfig(patch models.GalleryConfigPatch, token string) (models.GalleryConfig, error) {
	config := s.store.GalleryConfig()
	if patch.Layout != nil {
		config.Layout = *patch.Layout
	}
	if patch.Columns != nil {
		config.Columns = *patch.Columns
	}
	if patch.DisplayCount != nil {
		config.DisplayCount = *patch.DisplayCount
	}
	if patch.Visible != nil {
		config.Visible = *patch.Visible
	}

	if err := s.store.SetGalleryConfig(config); err != nil {
		return models.GalleryConfig{}, err
	}
	s.mirror(nil, &config, token)
	return config, nil
}

// saveItems renumbers the items in display order and persists them.
func (s *GalleryService) saveItems(items []models.GalleryItem, token string) error {
	sort.SliceStable(items, func(i, j int) bool { return items[i].OrderIndex < items[j].OrderIndex })
	for i := range items {
		items[i].OrderIndex = i
	}
	if err := s.store.SetGallery(items); err != nil {
		return err
	}
	s.mirror(items, nil, token)
	return nil
}

// mirror pushes gallery changes to the worker, best effort.
func (s *GalleryService) mirror(items []models.GalleryItem, config *models.GalleryConfig, token string) {
	if !s.gateway.Configured() || !s.gateway.IsActive() {
		return
	}
	if err := s.gateway.SaveGallery(items, config, token); err != nil {
		log.Printf("[Gallery] remote save failed: %v", err)
	}
}
