package dto

import "stayfront/internal/domain/listings"

type ListingOverview struct {
	ID              string   `json:"id"`
	HostID          string   `json:"host_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Category        string   `json:"category"`
	Rate            float64  `json:"rate"`
	DiscountPercent float64  `json:"discount_percent"`
	GuestsLimit     int      `json:"guests_limit"`
	Photos          []string `json:"photos"`
	ThumbnailURL    string   `json:"thumbnail_url"`
	City            string   `json:"city"`
	Country         string   `json:"country"`
	Rating          float64  `json:"rating"`
	BaseQuote       Quote    `json:"base_quote"`
}

func MapListingOverview(l *listings.Listing, base Quote) ListingOverview {
	return ListingOverview{
		ID:              string(l.ID),
		HostID:          l.HostID,
		Title:           l.Title,
		Description:     l.Description,
		Category:        string(l.Category),
		Rate:            l.Rate,
		DiscountPercent: l.DiscountPercent,
		GuestsLimit:     l.GuestsLimit,
		Photos:          append([]string(nil), l.Photos...),
		ThumbnailURL:    l.ThumbnailURL,
		City:            l.City,
		Country:         l.Country,
		Rating:          l.Rating,
		BaseQuote:       base,
	}
}

type BlackoutUpdate struct {
	ListingID string   `json:"listing_id"`
	Dates     []string `json:"dates"`
	Skipped   int      `json:"skipped"`
}

type PhotoUpload struct {
	ListingID string `json:"listing_id"`
	URL       string `json:"url"`
}
