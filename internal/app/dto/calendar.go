package dto

import "stayfront/internal/domain/availability"

// Calendar is the per-listing availability snapshot handed to the calendar
// widget. Days are serialized YYYY-MM-DD so they round-trip through the
// normalizer without a UTC shift.
type Calendar struct {
	ListingID       string   `json:"listing_id"`
	Today           string   `json:"today"`
	UnavailableDays []string `json:"unavailable_days"`
}

func MapCalendar(listingID string, today string, idx *availability.Index) Calendar {
	days := idx.Days()
	out := make([]string, 0, len(days))
	for _, day := range days {
		out = append(out, day.Format())
	}
	return Calendar{ListingID: listingID, Today: today, UnavailableDays: out}
}

// RangeCheck mirrors the validator result for inline display.
type RangeCheck struct {
	Valid       bool   `json:"valid"`
	Reason      string `json:"reason,omitempty"`
	ConflictDay string `json:"conflict_day,omitempty"`
}

func MapRangeCheck(res availability.Result) RangeCheck {
	check := RangeCheck{Valid: res.Valid, Reason: string(res.Reason)}
	if !res.Conflict.IsZero() {
		check.ConflictDay = res.Conflict.Format()
	}
	return check
}
