package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayfront/internal/domain/calday"
	domainlistings "stayfront/internal/domain/listings"
	domainreservation "stayfront/internal/domain/reservation"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func seedListing(t *testing.T, repo *ListingRepository) *domainlistings.Listing {
	t.Helper()
	listing, err := domainlistings.New(domainlistings.CreateParams{
		ID:            "lst-1",
		HostID:        "host-1",
		Title:         "Harbor loft",
		Rate:          1000,
		GuestsLimit:   4,
		BlackoutDates: []any{"2025-12-25"},
		Now:           testNow,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), listing))
	return listing
}

func TestListingByIDReturnsDetachedCopy(t *testing.T) {
	repo := NewListingRepository()
	seedListing(t, repo)

	got, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)

	// Mutations on the loaded value must not leak into the store until Save.
	got.Title = "renamed"
	got.BlackoutDates = append(got.BlackoutDates, "2025-12-31")
	got.Photos = append(got.Photos, "https://cdn.example/x.jpg")

	stored, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, "Harbor loft", stored.Title)
	assert.Equal(t, []any{"2025-12-25"}, stored.BlackoutDates)
	assert.Empty(t, stored.Photos)
}

func TestListingSaveDetachesFromCaller(t *testing.T) {
	repo := NewListingRepository()
	listing := seedListing(t, repo)

	listing.BlackoutDates = append(listing.BlackoutDates, "2026-01-01")

	stored, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, []any{"2025-12-25"}, stored.BlackoutDates)
}

func TestListingSavePublishesChanges(t *testing.T) {
	repo := NewListingRepository()
	seedListing(t, repo)

	got, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	got.ReplaceBlackoutDates([]any{"2026-02-14"}, testNow)
	require.NoError(t, repo.Save(context.Background(), got))

	stored, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, []any{"2026-02-14"}, stored.BlackoutDates)
}

func TestReservationByIDReturnsDetachedCopy(t *testing.T) {
	repo := NewReservationRepository()
	res, err := domainreservation.New(domainreservation.CreateParams{
		ID:        "res-1",
		ListingID: "lst-1",
		GuestID:   "guest-1",
		CheckIn:   calday.FromDate(2025, time.June, 10),
		CheckOut:  calday.FromDate(2025, time.June, 13),
		Guests:    2,
		Now:       testNow,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), res))

	got, err := repo.ByID(context.Background(), "res-1")
	require.NoError(t, err)
	got.Cancel(testNow)

	stored, err := repo.ByID(context.Background(), "res-1")
	require.NoError(t, err)
	assert.Equal(t, domainreservation.StatusPending, stored.Status)

	spans, err := repo.ActiveSpans(context.Background(), "lst-1")
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "pending", spans[0].Status)
}
