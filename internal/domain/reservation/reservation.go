package reservation

import (
	"context"
	"errors"
	"time"

	"stayfront/internal/domain/availability"
	"stayfront/internal/domain/calday"
	"stayfront/internal/domain/listings"
	"stayfront/internal/domain/pricing"
)

var (
	ErrReservationNotFound = errors.New("reservation: not found")
	ErrInvalidGuests       = errors.New("reservation: guests count must be positive")
	ErrGuestRequired       = errors.New("reservation: guest id required")
	ErrInvalidRange        = errors.New("reservation: checkout must be after checkin")
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusReserved  Status = "reserved"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// Occupies reports whether the reservation blocks nights on the calendar.
func (s Status) Occupies() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusReserved:
		return true
	}
	return false
}

// Reservation is a stay with normalized endpoints. The span is half-open:
// the guest occupies nights [CheckIn, CheckOut).
type Reservation struct {
	ID        string
	ListingID listings.ListingID
	GuestID   string
	CheckIn   calday.CalendarDay
	CheckOut  calday.CalendarDay
	Status    Status
	Guests    int
	Nights    int
	Category  pricing.Category
	Total     float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Repository interface {
	ByID(ctx context.Context, id string) (*Reservation, error)
	Save(ctx context.Context, r *Reservation) error
	// ActiveSpans returns the raw date spans of every reservation for the
	// listing, for the availability index to normalize and filter.
	ActiveSpans(ctx context.Context, listingID listings.ListingID) ([]availability.Span, error)
	ListByGuest(ctx context.Context, guestID string) ([]*Reservation, error)
}

type CreateParams struct {
	ID        string
	ListingID listings.ListingID
	GuestID   string
	CheckIn   calday.CalendarDay
	CheckOut  calday.CalendarDay
	Guests    int
	Category  pricing.Category
	Total     float64
	Now       time.Time
}

// New constructs a pending reservation from an already validated range.
func New(params CreateParams) (*Reservation, error) {
	if params.GuestID == "" {
		return nil, ErrGuestRequired
	}
	if params.Guests <= 0 {
		return nil, ErrInvalidGuests
	}
	if params.CheckIn.IsZero() || params.CheckOut.IsZero() || !params.CheckOut.After(params.CheckIn) {
		return nil, ErrInvalidRange
	}
	now := params.Now.UTC()
	return &Reservation{
		ID:        params.ID,
		ListingID: params.ListingID,
		GuestID:   params.GuestID,
		CheckIn:   params.CheckIn,
		CheckOut:  params.CheckOut,
		Status:    StatusPending,
		Guests:    params.Guests,
		Nights:    params.CheckIn.DaysUntil(params.CheckOut),
		Category:  params.Category,
		Total:     params.Total,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Cancel releases the reservation's nights.
func (r *Reservation) Cancel(now time.Time) {
	r.Status = StatusCancelled
	r.UpdatedAt = now.UTC()
}
