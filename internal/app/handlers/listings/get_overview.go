package listings

import (
	"context"

	"stayfront/internal/app/dto"
	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
)

type GetOverviewQuery struct {
	ListingID string
}

// GetOverviewHandler serves listing detail with the base quote (no range
// chosen yet: nightly rate for homes, per-guest unit for the rest).
type GetOverviewHandler struct {
	Listings domainlistings.Repository
}

func (h *GetOverviewHandler) Handle(ctx context.Context, q GetOverviewQuery) (dto.ListingOverview, error) {
	listing, err := h.Listings.ByID(ctx, domainlistings.ListingID(q.ListingID))
	if err != nil {
		return dto.ListingOverview{}, err
	}
	quote := pricing.Quote(listing.Rate, listing.DiscountPercent, listing.Category, 0, 1)
	base := dto.MapQuote(string(listing.ID), listing.Category, 0, 1, quote)
	return dto.MapListingOverview(listing, base), nil
}
