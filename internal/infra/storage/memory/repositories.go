package memory

import (
	"context"
	"sync"

	domainavailability "stayfront/internal/domain/availability"
	domainlistings "stayfront/internal/domain/listings"
	domainreservation "stayfront/internal/domain/reservation"
)

// ListingRepository is an in-memory implementation used for dev fixtures and
// tests.
type ListingRepository struct {
	mu    sync.RWMutex
	items map[domainlistings.ListingID]*domainlistings.Listing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{
		items: make(map[domainlistings.ListingID]*domainlistings.Listing),
	}
}

// ByID returns a detached copy of the listing or
// listings.ErrListingNotFound. Handlers mutate the result outside the
// repository lock; only Save publishes changes back.
func (r *ListingRepository) ByID(ctx context.Context, id domainlistings.ListingID) (*domainlistings.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	listing, ok := r.items[id]
	if !ok {
		return nil, domainlistings.ErrListingNotFound
	}
	return copyListing(listing), nil
}

// Save stores/updates a listing entry, detached from the caller's value.
func (r *ListingRepository) Save(ctx context.Context, listing *domainlistings.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[listing.ID] = copyListing(listing)
	return nil
}

func copyListing(l *domainlistings.Listing) *domainlistings.Listing {
	cp := *l
	cp.BlackoutDates = append([]any(nil), l.BlackoutDates...)
	cp.Photos = append([]string(nil), l.Photos...)
	return &cp
}

// ReservationRepository keeps reservations in memory.
type ReservationRepository struct {
	mu    sync.RWMutex
	items map[string]*domainreservation.Reservation
}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{items: make(map[string]*domainreservation.Reservation)}
}

func (r *ReservationRepository) ByID(ctx context.Context, id string) (*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.items[id]
	if !ok {
		return nil, domainreservation.ErrReservationNotFound
	}
	cp := *res
	return &cp, nil
}

func (r *ReservationRepository) Save(ctx context.Context, res *domainreservation.Reservation) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *res
	r.items[res.ID] = &cp
	return nil
}

// ActiveSpans returns raw spans for the listing; dates are normalized
// CalendarDay values here, which the index accepts as-is.
func (r *ReservationRepository) ActiveSpans(ctx context.Context, listingID domainlistings.ListingID) ([]domainavailability.Span, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var spans []domainavailability.Span
	for _, res := range r.items {
		if res.ListingID != listingID {
			continue
		}
		spans = append(spans, domainavailability.Span{
			CheckIn:  res.CheckIn,
			CheckOut: res.CheckOut,
			Status:   string(res.Status),
		})
	}
	return spans, nil
}

func (r *ReservationRepository) ListByGuest(ctx context.Context, guestID string) ([]*domainreservation.Reservation, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []*domainreservation.Reservation
	for _, res := range r.items {
		if res.GuestID == guestID {
			cp := *res
			out = append(out, &cp)
		}
	}
	return out, nil
}
