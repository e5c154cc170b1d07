package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	availabilityapp "stayfront/internal/app/handlers/availability"

	"stayfront/internal/app/dto"
	"stayfront/internal/domain/calday"
	"stayfront/internal/domain/pricing"
	domainreservation "stayfront/internal/domain/reservation"
)

const proposedTopic = "booking.proposed"

// EventPublisher is the broker port; matches the Kafka producer.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, key string, payload []byte, headers map[string]string) error
}

type ProposeBookingCommand struct {
	ListingID string
	GuestID   string
	CheckIn   string
	CheckOut  string
	Guests    int
}

type ProposeBookingResult struct {
	Check   dto.RangeCheck
	Booking *dto.ProposedBooking
}

// ProposeBookingHandler re-runs the range validation server-side against a
// transactional-read-equivalent fresh snapshot before persisting the pending
// reservation. The client already validated interactively, but its snapshot
// may be stale; two guests racing for the same nights must not both succeed.
type ProposeBookingHandler struct {
	Source       availabilityapp.SnapshotSource
	Reservations domainreservation.Repository
	Events       EventPublisher
}

func (h *ProposeBookingHandler) Handle(ctx context.Context, cmd ProposeBookingCommand) (*ProposeBookingResult, error) {
	idx, listing, err := h.Source.Snapshot(ctx, cmd.ListingID)
	if err != nil {
		return nil, err
	}

	check := checkRange(cmd.CheckIn, cmd.CheckOut, idx)
	if !check.Valid {
		return &ProposeBookingResult{Check: check}, nil
	}

	// Both parses succeeded above.
	start, _ := calday.Normalize(cmd.CheckIn)
	end, _ := calday.Normalize(cmd.CheckOut)
	now := h.Source.Now()

	nights := start.DaysUntil(end)
	guests := clampGuests(cmd.Guests, listing.GuestsLimit)
	quote := pricing.Quote(listing.Rate, listing.DiscountPercent, listing.Category, nights, guests)

	res, err := domainreservation.New(domainreservation.CreateParams{
		ID:        uuid.NewString(),
		ListingID: listing.ID,
		GuestID:   cmd.GuestID,
		CheckIn:   start,
		CheckOut:  end,
		Guests:    guests,
		Category:  listing.Category,
		Total:     quote.Total,
		Now:       now,
	})
	if err != nil {
		return nil, err
	}

	if err := h.Reservations.Save(ctx, res); err != nil {
		return nil, err
	}

	booking := dto.MapProposedBooking(res)
	h.publish(ctx, booking, now)
	return &ProposeBookingResult{Check: check, Booking: &booking}, nil
}

// publish emits booking.proposed for downstream consumers (payments,
// notifications). A broker failure never fails the booking itself.
func (h *ProposeBookingHandler) publish(ctx context.Context, booking dto.ProposedBooking, now time.Time) {
	if h.Events == nil {
		return
	}
	payload, err := json.Marshal(booking)
	if err != nil {
		return
	}
	headers := map[string]string{"occurred_at": now.UTC().Format(time.RFC3339)}
	if err := h.Events.Publish(ctx, proposedTopic, booking.ID, payload, headers); err != nil {
		if h.Source.Logger != nil {
			h.Source.Logger.Warn("booking.proposed publish failed", "reservation_id", booking.ID, "error", err)
		}
	}
}
