package store

import "github.com/dkadris/storefront/internal/models"

// Seed catalog shown before an administrator has saved any products.
func defaultProducts() []models.Product {
	return []models.Product{
		{
			ID:        "1",
			Name:      "Savanna Bootcut",
			Price:     15000,
			Category:  models.CategoryMen,
			Type:      "trouser",
			Image:     "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=800&auto=format&fit=crop",
			Quantity:  100,
			Published: true,
			CreatedAt: 1672531200000,
		},
		{
			ID:        "2",
			Name:      "Lagos Slim Fit",
			Price:     15000,
			Category:  models.CategoryWomen,
			Type:      "shirt",
			Image:     "https://images.unsplash.com/photo-1582552938357-32b906df40cb?w=800&auto=format&fit=crop",
			Quantity:  80,
			Published: true,
			CreatedAt: 1672617600000,
		},
		{
			ID:        "3",
			Name:      "Signature Stitch",
			Price:     18000,
			Category:  models.CategoryMen,
			Type:      "jacket",
			Image:     "https://images.unsplash.com/photo-1516762689617-e1cffcef479d?w=800&auto=format&fit=crop",
			Quantity:  50,
			Published: true,
			CreatedAt: 1672704000000,
		},
	}
}

// DefaultGalleryConfig returns the gallery layout used until the
// administrator changes it.
func DefaultGalleryConfig() models.GalleryConfig {
	return models.GalleryConfig{
		Layout:       models.GalleryLayoutGrid,
		Columns:      3,
		DisplayCount: 6,
		Visible:      true,
	}
}

func defaultFeaturedFits() []models.FeaturedFit {
	return []models.FeaturedFit{
		{
			ID:          "f1",
			Title:       "Savanna Bootcut",
			Description: "The ultimate classic for any occasion.",
			Image:       "https://images.unsplash.com/photo-1541099649105-f69ad21f3246?w=1000&auto=format&fit=crop",
			LayoutType:  models.FitLayoutBold,
		},
		{
			ID:          "f2",
			Title:       "Lagos Slim Fit",
			Description: "Precision cut for the modern urban dweller.",
			Image:       "https://images.unsplash.com/photo-1582552938357-32b906df40cb?w=800&auto=format&fit=crop",
			LayoutType:  models.FitLayoutTall,
		},
		{
			ID:          "f3",
			Title:       "Signature Stitch",
			Description: "Our premium artisanal denim line.",
			Image:       "https://images.unsplash.com/photo-1516762689617-e1cffcef479d?w=800&auto=format&fit=crop",
			LayoutType:  models.FitLayoutStandard,
		},
	}
}

// DefaultSiteConfig returns the complete branding record used as the merge
// base for stored overrides.
func DefaultSiteConfig() models.SiteConfig {
	return models.SiteConfig{
		LogoText:       "D-Kadris",
		LogoType:       "text",
		LogoWidth:      150,
		LogoHeight:     50,
		HeroTitle:      "Authentic Denim.\nTailored in Nigeria.\nWorn by You.",
		HeroSubtitle:   "Premium jeans crafted with pride.",
		HeroBgType:     "url",
		HeroBgURL:      "https://images.unsplash.com/photo-1542272604-787c3835535d?q=80&w=2000&auto=format&fit=crop",
		ShopButtonText: "Shop Collection",
		BrandQuote:     `"Every stitch tells a story of Nigerian craftsmanship."`,
		FacebookURL:    "https://www.facebook.com/profile.php?id=61559673571368",
		InstagramURL:   "https://www.instagram.com/dkadris_tailoring",
		TikTokURL:      "https://www.tiktok.com/@dkadris.tailoring",
		FooterContent:  "Ready-to-wear sizes also available in all major cities.",
		ContactEmail:   "info@dkadris.com",
		ContactPhone:   "+234 816 391 4835",
		FeaturedFits:   defaultFeaturedFits(),
		FeatureToggles: models.FeatureToggles{
			EnableCommissions:          true,
			EnableAffiliateWithdrawals: true,
		},
	}
}
