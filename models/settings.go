package models

import "time"

// SiteSettings is the display-only branding row the storefront header
// reads. There is exactly one row; updates overwrite it.
type SiteSettings struct {
	ID        int       `json:"id"`
	SiteName  string    `json:"site_name"`
	Tagline   string    `json:"tagline,omitempty"`
	LogoURL   string    `json:"logo_url,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}
