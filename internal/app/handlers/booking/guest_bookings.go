package booking

import (
	"context"

	"stayfront/internal/app/dto"
	domainreservation "stayfront/internal/domain/reservation"
)

type ListGuestBookingsQuery struct {
	GuestID string
}

type ListGuestBookingsHandler struct {
	Reservations domainreservation.Repository
}

func (h *ListGuestBookingsHandler) Handle(ctx context.Context, q ListGuestBookingsQuery) (dto.GuestBookingCollection, error) {
	items, err := h.Reservations.ListByGuest(ctx, q.GuestID)
	if err != nil {
		return dto.GuestBookingCollection{}, err
	}
	out := dto.GuestBookingCollection{Items: make([]dto.ProposedBooking, 0, len(items))}
	for _, r := range items {
		out.Items = append(out.Items, dto.MapProposedBooking(r))
	}
	return out, nil
}
