package listings

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainlistings "stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
	"stayfront/internal/infra/storage/memory"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

type fakePhotoStore struct {
	keys []string
	err  error
}

func (f *fakePhotoStore) Upload(_ context.Context, key string, reader io.Reader, _ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	f.keys = append(f.keys, key)
	return "https://cdn.example/" + key, nil
}

func seedListing(t *testing.T) *memory.ListingRepository {
	t.Helper()
	repo := memory.NewListingRepository()
	listing, err := domainlistings.New(domainlistings.CreateParams{
		ID:              "lst-1",
		HostID:          "host-1",
		Title:           "Harbor loft",
		Category:        pricing.CategoryHome,
		Rate:            1200,
		DiscountPercent: 10,
		GuestsLimit:     4,
		Now:             testNow,
	})
	require.NoError(t, err)
	require.NoError(t, repo.Save(context.Background(), listing))
	return repo
}

func TestGetOverviewIncludesBaseQuote(t *testing.T) {
	h := &GetOverviewHandler{Listings: seedListing(t)}

	overview, err := h.Handle(context.Background(), GetOverviewQuery{ListingID: "lst-1"})
	require.NoError(t, err)

	assert.Equal(t, "lst-1", overview.ID)
	assert.Equal(t, "home", overview.Category)
	// No range chosen yet: base nightly rate with discount, single unit.
	assert.InDelta(t, 1080, overview.BaseQuote.UnitPrice, 1e-9)
	assert.Equal(t, 1, overview.BaseQuote.UnitCount)
	assert.InDelta(t, 1134, overview.BaseQuote.Total, 1e-9)
}

func TestGetOverviewUnknownListing(t *testing.T) {
	h := &GetOverviewHandler{Listings: memory.NewListingRepository()}

	_, err := h.Handle(context.Background(), GetOverviewQuery{ListingID: "missing"})
	assert.ErrorIs(t, err, domainlistings.ErrListingNotFound)
}

func TestUpdateBlackoutsStoresCanonicalDates(t *testing.T) {
	repo := seedListing(t)
	h := &UpdateBlackoutsHandler{Listings: repo, Now: func() time.Time { return testNow }}

	result, err := h.Handle(context.Background(), UpdateBlackoutsCommand{
		ListingID: "lst-1",
		Dates:     []string{"2025-12-31", "2025-12-25", "2025-12-25", "bogus"},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, []string{"2025-12-25", "2025-12-31"}, result.Dates)

	stored, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, []any{"2025-12-25", "2025-12-31"}, stored.BlackoutDates)
}

func TestUploadPhoto(t *testing.T) {
	repo := seedListing(t)
	store := &fakePhotoStore{}
	h := &UploadPhotoHandler{Listings: repo, Photos: store, Now: func() time.Time { return testNow }}

	result, err := h.Handle(context.Background(), UploadPhotoCommand{
		ListingID:   "lst-1",
		Filename:    "Front Door.JPG",
		ContentType: "image/jpeg",
		Content:     strings.NewReader("jpeg-bytes"),
	})
	require.NoError(t, err)

	require.Len(t, store.keys, 1)
	assert.True(t, strings.HasPrefix(store.keys[0], "listings/lst-1/"))
	assert.True(t, strings.HasSuffix(store.keys[0], ".jpg"))
	assert.Equal(t, "https://cdn.example/"+store.keys[0], result.URL)

	stored, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Equal(t, []string{result.URL}, stored.Photos)
	assert.Equal(t, result.URL, stored.ThumbnailURL)
}

func TestUploadPhotoStoreFailure(t *testing.T) {
	repo := seedListing(t)
	store := &fakePhotoStore{err: assert.AnError}
	h := &UploadPhotoHandler{Listings: repo, Photos: store}

	_, err := h.Handle(context.Background(), UploadPhotoCommand{
		ListingID: "lst-1",
		Filename:  "a.jpg",
		Content:   strings.NewReader("x"),
	})
	assert.ErrorIs(t, err, assert.AnError)

	stored, err := repo.ByID(context.Background(), "lst-1")
	require.NoError(t, err)
	assert.Empty(t, stored.Photos)
}
