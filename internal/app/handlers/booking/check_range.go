package booking

import (
	"context"

	availabilityapp "stayfront/internal/app/handlers/availability"

	"stayfront/internal/app/dto"
	domainavailability "stayfront/internal/domain/availability"
	"stayfront/internal/domain/calday"
)

type CheckRangeQuery struct {
	ListingID string
	CheckIn   string
	CheckOut  string
}

// CheckRangeHandler validates a proposed check-in/check-out pair against a
// fresh availability snapshot. Malformed dates fail closed: the range is
// reported invalid instead of skipping the check.
type CheckRangeHandler struct {
	Source availabilityapp.SnapshotSource
}

func (h *CheckRangeHandler) Handle(ctx context.Context, q CheckRangeQuery) (dto.RangeCheck, error) {
	idx, _, err := h.Source.Snapshot(ctx, q.ListingID)
	if err != nil {
		return dto.RangeCheck{}, err
	}
	return checkRange(q.CheckIn, q.CheckOut, idx), nil
}

func checkRange(checkIn, checkOut string, idx *domainavailability.Index) dto.RangeCheck {
	start, err := calday.Normalize(checkIn)
	if err != nil {
		return dto.RangeCheck{Reason: string(domainavailability.ReasonInvalidDate)}
	}
	end, err := calday.Normalize(checkOut)
	if err != nil {
		return dto.RangeCheck{Reason: string(domainavailability.ReasonInvalidDate)}
	}
	return dto.MapRangeCheck(domainavailability.ValidateRange(start, end, idx))
}
