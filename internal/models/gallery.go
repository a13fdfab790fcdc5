package models

// Gallery layout modes.
const (
	GalleryLayoutGrid     = "grid"
	GalleryLayoutCarousel = "carousel"
)

// GalleryItem is one curated image. OrderIndex values are kept dense
// (0..n-1 in display order) by every gallery mutation.
type GalleryItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	OrderIndex  int    `json:"orderIndex"`
}

// GalleryConfig is the singleton layout configuration for the gallery section.
type GalleryConfig struct {
	Layout       string `json:"layout"`
	Columns      int    `json:"columns"`
	DisplayCount int    `json:"displayCount"`
	Visible      bool   `json:"visible"`
}

// GalleryConfigPatch carries a partial configuration update; nil fields are
// left untouched.
type GalleryConfigPatch struct {
	Layout       *string `json:"layout"`
	Columns      *int    `json:"columns"`
	DisplayCount *int    `json:"displayCount"`
	Visible      *bool   `json:"visible"`
}
