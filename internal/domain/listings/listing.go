package listings

import (
	"context"
	"errors"
	"sort"
	"time"

	"stayfront/internal/domain/calday"
	"stayfront/internal/domain/pricing"
)

var (
	ErrListingNotFound = errors.New("listings: not found")
	ErrInvalidRate     = errors.New("listings: rate must be non-negative")
	ErrTitleRequired   = errors.New("listings: title required")
)

type ListingID string

// Listing is the guest-facing listing record as stored. BlackoutDates stays
// raw because stored entries are heterogeneous (ISO strings, native dates,
// database timestamp wrappers); the availability index normalizes them.
type Listing struct {
	ID              ListingID
	HostID          string
	Title           string
	Description     string
	Category        pricing.Category
	Rate            float64
	DiscountPercent float64
	GuestsLimit     int
	BlackoutDates   []any
	Photos          []string
	ThumbnailURL    string
	City            string
	Country         string
	Rating          float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Repository interface {
	ByID(ctx context.Context, id ListingID) (*Listing, error)
	Save(ctx context.Context, listing *Listing) error
}

type CreateParams struct {
	ID              ListingID
	HostID          string
	Title           string
	Description     string
	Category        pricing.Category
	Rate            float64
	DiscountPercent float64
	GuestsLimit     int
	BlackoutDates   []any
	Photos          []string
	ThumbnailURL    string
	City            string
	Country         string
	Rating          float64
	Now             time.Time
}

func New(params CreateParams) (*Listing, error) {
	if params.Title == "" {
		return nil, ErrTitleRequired
	}
	if params.Rate < 0 {
		return nil, ErrInvalidRate
	}
	category := params.Category
	if category == "" {
		category = pricing.CategoryHome
	}
	guests := params.GuestsLimit
	if guests <= 0 {
		guests = 1
	}
	now := params.Now.UTC()
	return &Listing{
		ID:              params.ID,
		HostID:          params.HostID,
		Title:           params.Title,
		Description:     params.Description,
		Category:        category,
		Rate:            params.Rate,
		DiscountPercent: params.DiscountPercent,
		GuestsLimit:     guests,
		BlackoutDates:   append([]any(nil), params.BlackoutDates...),
		Photos:          append([]string(nil), params.Photos...),
		ThumbnailURL:    params.ThumbnailURL,
		City:            params.City,
		Country:         params.Country,
		Rating:          params.Rating,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// ReplaceBlackoutDates swaps the host-declared blackout list wholesale.
// Entries are normalized, deduplicated and stored in canonical YYYY-MM-DD
// form; entries that fail to parse are dropped and counted.
func (l *Listing) ReplaceBlackoutDates(raw []any, now time.Time) (skipped int) {
	seen := make(map[int64]calday.CalendarDay, len(raw))
	for _, entry := range raw {
		day, err := calday.Normalize(entry)
		if err != nil {
			skipped++
			continue
		}
		seen[day.UnixMilli()] = day
	}
	days := make([]calday.CalendarDay, 0, len(seen))
	for _, day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	stored := make([]any, 0, len(days))
	for _, day := range days {
		stored = append(stored, day.Format())
	}
	l.BlackoutDates = stored
	l.UpdatedAt = now.UTC()
	return skipped
}

// AddPhoto appends an uploaded photo URL, promoting the first one to
// thumbnail.
func (l *Listing) AddPhoto(url string, now time.Time) {
	if url == "" {
		return
	}
	l.Photos = append(l.Photos, url)
	if l.ThumbnailURL == "" {
		l.ThumbnailURL = url
	}
	l.UpdatedAt = now.UTC()
}
