package dto

import "stayfront/internal/domain/pricing"

type Quote struct {
	ListingID  string  `json:"listing_id"`
	Category   string  `json:"category"`
	Nights     int     `json:"nights"`
	Guests     int     `json:"guests"`
	UnitPrice  float64 `json:"unit_price"`
	UnitCount  int     `json:"unit_count"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

func MapQuote(listingID string, category pricing.Category, nights, guests int, q pricing.RateQuote) Quote {
	return Quote{
		ListingID:  listingID,
		Category:   string(category),
		Nights:     nights,
		Guests:     guests,
		UnitPrice:  q.UnitPrice,
		UnitCount:  q.UnitCount,
		Subtotal:   q.Subtotal,
		ServiceFee: q.ServiceFee,
		Total:      q.Total,
	}
}
