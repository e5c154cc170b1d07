package dto

import "stayfront/internal/domain/reservation"

// ProposedBooking is the record handed onward to payment/booking-creation.
// Dates are serialized with the local-date formatter, never a UTC serializer,
// so they round-trip through the normalizer.
type ProposedBooking struct {
	ID        string  `json:"id"`
	ListingID string  `json:"listing_id"`
	GuestID   string  `json:"guest_id"`
	CheckIn   string  `json:"check_in"`
	CheckOut  string  `json:"check_out"`
	Guests    int     `json:"guests"`
	Nights    int     `json:"nights"`
	Category  string  `json:"category"`
	Status    string  `json:"status"`
	Total     float64 `json:"total"`
}

func MapProposedBooking(r *reservation.Reservation) ProposedBooking {
	return ProposedBooking{
		ID:        r.ID,
		ListingID: string(r.ListingID),
		GuestID:   r.GuestID,
		CheckIn:   r.CheckIn.Format(),
		CheckOut:  r.CheckOut.Format(),
		Guests:    r.Guests,
		Nights:    r.Nights,
		Category:  string(r.Category),
		Status:    string(r.Status),
		Total:     r.Total,
	}
}

type GuestBookingCollection struct {
	Items []ProposedBooking `json:"items"`
}
