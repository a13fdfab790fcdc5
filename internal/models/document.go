package models

import "time"

// Document is one persisted collection blob. Every storefront collection
// (products, orders, affiliates, gallery, settings, ...) is stored as a single
// JSON document under its collection key.
type Document struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     []byte    `gorm:"type:jsonb" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
