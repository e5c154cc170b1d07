package booking

import (
	"context"

	"stayfront/internal/app/dto"
	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
)

type QuoteQuery struct {
	ListingID string
	Nights    int
	Guests    int
}

// QuoteHandler recomputes the guest-facing price breakdown from the listing
// rate and the requested stay length/guest count.
type QuoteHandler struct {
	Listings domainlistings.Repository
}

func (h *QuoteHandler) Handle(ctx context.Context, q QuoteQuery) (dto.Quote, error) {
	listing, err := h.Listings.ByID(ctx, domainlistings.ListingID(q.ListingID))
	if err != nil {
		return dto.Quote{}, err
	}
	guests := clampGuests(q.Guests, listing.GuestsLimit)
	quote := pricing.Quote(listing.Rate, listing.DiscountPercent, listing.Category, q.Nights, guests)
	return dto.MapQuote(string(listing.ID), listing.Category, q.Nights, guests, quote), nil
}

func clampGuests(guests, limit int) int {
	if guests < 1 {
		guests = 1
	}
	if limit > 0 && guests > limit {
		guests = limit
	}
	return guests
}
