package availability

import "stayfront/internal/domain/calday"

type Reason string

const (
	ReasonInvalidDate             Reason = "invalid-date"
	ReasonCheckoutNotAfterCheckin Reason = "checkout-not-after-checkin"
	ReasonUnavailableDate         Reason = "range-contains-unavailable-date"
)

// Result is the structured outcome of a range validation. Rejections carry a
// machine-readable reason instead of an error so interactive callers can
// show them inline without disturbing selection state.
type Result struct {
	Valid    bool
	Reason   Reason
	Conflict calday.CalendarDay
}

func valid() Result                 { return Result{Valid: true} }
func rejected(reason Reason) Result { return Result{Reason: reason} }

// ValidateRange decides whether the stay [start, end) can be reserved
// against the index. The checkout day itself is never checked; the
// convention must match the occupied-span expansion in Build, or
// back-to-back stays break.
func ValidateRange(start, end calday.CalendarDay, idx *Index) Result {
	if start.IsZero() || end.IsZero() {
		return rejected(ReasonInvalidDate)
	}
	if !end.After(start) {
		return rejected(ReasonCheckoutNotAfterCheckin)
	}
	for d := start; d.Before(end); d = d.AddDays(1) {
		if idx.IsUnavailable(d) {
			res := rejected(ReasonUnavailableDate)
			res.Conflict = d
			return res
		}
	}
	return valid()
}
