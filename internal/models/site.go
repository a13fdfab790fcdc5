package models

// Featured fit layout types controlling the presentational span.
const (
	FitLayoutStandard = "standard"
	FitLayoutBold     = "bold"
	FitLayoutWide     = "wide"
	FitLayoutTall     = "tall"
)

// FeatureToggles gates optional storefront features independently, so a new
// toggle can be added without migrating stored records.
type FeatureToggles struct {
	EnablePayments             bool `json:"enablePayments"`
	EnableVendorAccounts       bool `json:"enableVendorAccounts"`
	EnableBulkOrders           bool `json:"enableBulkOrders"`
	EnableCommissions          bool `json:"enableCommissions"`
	EnableAffiliateWithdrawals bool `json:"enableAffiliateWithdrawals"`
}

// FeaturedFit is one showcase entry on the landing page.
type FeaturedFit struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	LayoutType  string `json:"layoutType"`
}

// SiteConfig is the singleton content/branding record, versioned only by
// last-write-wins overwrite.
type SiteConfig struct {
	LogoText       string         `json:"logoText"`
	LogoType       string         `json:"logoType"`
	LogoImage      string         `json:"logoImage,omitempty"`
	LogoWidth      int            `json:"logoWidth,omitempty"`
	LogoHeight     int            `json:"logoHeight,omitempty"`
	HeroTitle      string         `json:"heroTitle"`
	HeroSubtitle   string         `json:"heroSubtitle"`
	HeroBgType     string         `json:"heroBgType"`
	HeroBgURL      string         `json:"heroBgUrl"`
	HeroBgUpload   string         `json:"heroBgUpload,omitempty"`
	ShopButtonText string         `json:"shopButtonText"`
	BrandQuote     string         `json:"brandQuote"`
	FacebookURL    string         `json:"facebookUrl"`
	InstagramURL   string         `json:"instagramUrl"`
	TikTokURL      string         `json:"tiktokUrl"`
	FooterContent  string         `json:"footerContent"`
	ContactEmail   string         `json:"contactEmail"`
	ContactPhone   string         `json:"contactPhone"`
	FeaturedFits   []FeaturedFit  `json:"featuredFits"`
	FeatureToggles FeatureToggles `json:"featureToggles"`
}
