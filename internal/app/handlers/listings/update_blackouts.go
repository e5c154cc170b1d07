package listings

import (
	"context"
	"log/slog"
	"time"

	"stayfront/internal/app/dto"
	domainlistings "stayfront/internal/domain/listings"
)

type UpdateBlackoutsCommand struct {
	ListingID string
	Dates     []string
}

// UpdateBlackoutsHandler replaces the host-declared blackout list. Uses the
// same normalizer as the guest-side availability build, so a date a host can
// store is always a date the calendar can block.
type UpdateBlackoutsHandler struct {
	Listings domainlistings.Repository
	Logger   *slog.Logger
	Now      func() time.Time
}

func (h *UpdateBlackoutsHandler) Handle(ctx context.Context, cmd UpdateBlackoutsCommand) (dto.BlackoutUpdate, error) {
	listing, err := h.Listings.ByID(ctx, domainlistings.ListingID(cmd.ListingID))
	if err != nil {
		return dto.BlackoutUpdate{}, err
	}

	raw := make([]any, 0, len(cmd.Dates))
	for _, d := range cmd.Dates {
		raw = append(raw, d)
	}
	skipped := listing.ReplaceBlackoutDates(raw, h.now())
	if skipped > 0 && h.Logger != nil {
		h.Logger.Warn("unparseable blackout dates dropped", "listing_id", cmd.ListingID, "skipped", skipped)
	}

	if err := h.Listings.Save(ctx, listing); err != nil {
		return dto.BlackoutUpdate{}, err
	}

	stored := make([]string, 0, len(listing.BlackoutDates))
	for _, entry := range listing.BlackoutDates {
		if s, ok := entry.(string); ok {
			stored = append(stored, s)
		}
	}
	return dto.BlackoutUpdate{ListingID: cmd.ListingID, Dates: stored, Skipped: skipped}, nil
}

func (h *UpdateBlackoutsHandler) now() time.Time {
	if h.Now != nil {
		return h.Now()
	}
	return time.Now()
}
