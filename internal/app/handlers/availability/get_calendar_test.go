package availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainavailability "stayfront/internal/domain/availability"
	"stayfront/internal/domain/calday"
	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
	domainreservation "stayfront/internal/domain/reservation"
	"stayfront/internal/infra/storage/memory"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.Local)

type failingReservations struct{}

func (failingReservations) ByID(context.Context, string) (*domainreservation.Reservation, error) {
	return nil, assert.AnError
}

func (failingReservations) Save(context.Context, *domainreservation.Reservation) error {
	return assert.AnError
}

func (failingReservations) ActiveSpans(context.Context, domainlistings.ListingID) ([]domainavailability.Span, error) {
	return nil, assert.AnError
}

func (failingReservations) ListByGuest(context.Context, string) ([]*domainreservation.Reservation, error) {
	return nil, assert.AnError
}

func seedListing(t *testing.T, repo *memory.ListingRepository, blackouts ...string) {
	t.Helper()
	raw := make([]any, 0, len(blackouts))
	for _, b := range blackouts {
		raw = append(raw, b)
	}
	listing, err := domainlistings.New(domainlistings.CreateParams{
		ID:            "lst-1",
		HostID:        "host-1",
		Title:         "Harbor loft",
		Category:      pricing.CategoryHome,
		Rate:          1000,
		GuestsLimit:   4,
		BlackoutDates: raw,
		Now:           testNow,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), listing))
}

func seedReservation(t *testing.T, repo *memory.ReservationRepository, checkIn, checkOut string) {
	t.Helper()
	start, err := calday.Normalize(checkIn)
	require.NoError(t, err)
	end, err := calday.Normalize(checkOut)
	require.NoError(t, err)
	res, err := domainreservation.New(domainreservation.CreateParams{
		ID:        "res-" + checkIn,
		ListingID: "lst-1",
		GuestID:   "guest-1",
		CheckIn:   start,
		CheckOut:  end,
		Guests:    2,
		Now:       testNow,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), res))
}

func TestSnapshotMergesBlackoutsAndReservations(t *testing.T) {
	listings := memory.NewListingRepository()
	reservations := memory.NewReservationRepository()
	seedListing(t, listings, "2025-12-25")
	seedReservation(t, reservations, "2025-06-10", "2025-06-12")

	source := SnapshotSource{
		Listings:     listings,
		Reservations: reservations,
		Clock:        func() time.Time { return testNow },
	}

	idx, listing, err := source.Snapshot(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, domainlistings.ListingID("lst-1"), listing.ID)
	assert.Equal(t, 3, idx.Size())

	days := idx.Days()
	assert.Equal(t, "2025-06-10", days[0].Format())
	assert.Equal(t, "2025-06-11", days[1].Format())
	assert.Equal(t, "2025-12-25", days[2].Format())
}

func TestSnapshotUnknownListing(t *testing.T) {
	source := SnapshotSource{
		Listings:     memory.NewListingRepository(),
		Reservations: memory.NewReservationRepository(),
	}

	_, _, err := source.Snapshot(context.Background(), "missing")
	assert.ErrorIs(t, err, domainlistings.ErrListingNotFound)
}

func TestSnapshotDegradesWhenReservationQueryFails(t *testing.T) {
	listings := memory.NewListingRepository()
	seedListing(t, listings, "2025-12-25")

	source := SnapshotSource{
		Listings:     listings,
		Reservations: failingReservations{},
		Clock:        func() time.Time { return testNow },
	}

	idx, _, err := source.Snapshot(context.Background(), "lst-1")
	require.NoError(t, err)
	// Blackouts still apply; occupancy is simply unknown.
	assert.Equal(t, 1, idx.Size())
}

func TestGetCalendarHandler(t *testing.T) {
	listings := memory.NewListingRepository()
	reservations := memory.NewReservationRepository()
	seedListing(t, listings, "2025-12-25", "2025-12-24")
	seedReservation(t, reservations, "2025-06-10", "2025-06-12")

	h := &GetCalendarHandler{Source: SnapshotSource{
		Listings:     listings,
		Reservations: reservations,
		Clock:        func() time.Time { return testNow },
	}}

	cal, err := h.Handle(context.Background(), GetCalendarQuery{ListingID: "lst-1"})
	require.NoError(t, err)
	assert.Equal(t, "lst-1", cal.ListingID)
	assert.Equal(t, "2025-06-01", cal.Today)
	assert.Equal(t, []string{"2025-06-10", "2025-06-11", "2025-12-24", "2025-12-25"}, cal.UnavailableDays)
}
