package availability

import (
	"context"
	"log/slog"
	"time"

	"stayfront/internal/app/dto"
	domainavailability "stayfront/internal/domain/availability"
	"stayfront/internal/domain/calday"
	domainlistings "stayfront/internal/domain/listings"
	domainreservation "stayfront/internal/domain/reservation"
)

// SnapshotSource builds a fresh availability index for a listing: host
// blackout dates from the listing record plus occupied nights from a query
// over its reservations. Every range evaluation works on such a snapshot,
// never on cached or incrementally updated state.
type SnapshotSource struct {
	Listings     domainlistings.Repository
	Reservations domainreservation.Repository
	Logger       *slog.Logger
	Clock        func() time.Time
}

func (s SnapshotSource) Snapshot(ctx context.Context, listingID string) (*domainavailability.Index, *domainlistings.Listing, error) {
	listing, err := s.Listings.ByID(ctx, domainlistings.ListingID(listingID))
	if err != nil {
		return nil, nil, err
	}

	spans, err := s.Reservations.ActiveSpans(ctx, listing.ID)
	if err != nil {
		// Degrade to "no known occupancy" rather than failing the whole
		// availability computation.
		if s.Logger != nil {
			s.Logger.Warn("reservation query failed, occupancy unknown", "listing_id", listingID, "error", err)
		}
		spans = nil
	}

	idx := domainavailability.Build(domainavailability.BuildInput{
		BlackoutDates: listing.BlackoutDates,
		Reservations:  spans,
		Now:           s.Now(),
	})
	if s.Logger != nil && (idx.SkippedBlackouts() > 0 || idx.SkippedReservations() > 0) {
		s.Logger.Warn("unparseable dates skipped while building availability",
			"listing_id", listingID,
			"skipped_blackouts", idx.SkippedBlackouts(),
			"skipped_reservations", idx.SkippedReservations())
	}
	return idx, listing, nil
}

func (s SnapshotSource) Now() time.Time {
	if s.Clock != nil {
		return s.Clock()
	}
	return time.Now()
}

type GetCalendarQuery struct {
	ListingID string
}

// GetCalendarHandler serves the unavailable-day set for the calendar widget.
type GetCalendarHandler struct {
	Source SnapshotSource
}

func (h *GetCalendarHandler) Handle(ctx context.Context, q GetCalendarQuery) (dto.Calendar, error) {
	idx, listing, err := h.Source.Snapshot(ctx, q.ListingID)
	if err != nil {
		return dto.Calendar{}, err
	}
	today := calday.Today(h.Source.Now())
	return dto.MapCalendar(string(listing.ID), today.Format(), idx), nil
}
