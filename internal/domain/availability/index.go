package availability

import (
	"sort"
	"time"

	"stayfront/internal/domain/calday"
)

// Span is a reservation as stored: raw date values plus status. Dates stay
// raw here because stored records can carry ISO strings, native dates or
// database timestamp wrappers; the index normalizes them itself.
type Span struct {
	CheckIn  any
	CheckOut any
	Status   string
}

// occupies reports whether a reservation in the given status blocks nights.
func occupies(status string) bool {
	switch status {
	case "pending", "confirmed", "reserved":
		return true
	}
	return false
}

type BuildInput struct {
	BlackoutDates []any
	Reservations  []Span
	Now           time.Time
}

// Index is the merged set of unavailable calendar days for one listing:
// host blackout dates unioned with nights occupied by active reservations.
// Rebuilt from a fresh snapshot on every listing load, never updated in
// place.
type Index struct {
	days  map[int64]calday.CalendarDay
	today calday.CalendarDay

	skippedBlackouts    int
	skippedReservations int
}

// Build merges blackout dates and occupied nights into an Index. Entries
// that fail to normalize are skipped and counted rather than failing the
// whole computation; callers log the counters. Each reservation span
// [checkIn, checkOut) is expanded night by night with the checkout day
// excluded; a guest does not occupy the room the night they check out.
func Build(input BuildInput) *Index {
	idx := &Index{
		days:  make(map[int64]calday.CalendarDay),
		today: calday.Today(input.Now),
	}

	for _, raw := range input.BlackoutDates {
		day, err := calday.Normalize(raw)
		if err != nil {
			idx.skippedBlackouts++
			continue
		}
		idx.days[day.UnixMilli()] = day
	}

	for _, span := range input.Reservations {
		if !occupies(span.Status) {
			continue
		}
		checkIn, err := calday.Normalize(span.CheckIn)
		if err != nil {
			idx.skippedReservations++
			continue
		}
		checkOut, err := calday.Normalize(span.CheckOut)
		if err != nil {
			idx.skippedReservations++
			continue
		}
		if !checkOut.After(checkIn) {
			idx.skippedReservations++
			continue
		}
		for d := checkIn; d.Before(checkOut); d = d.AddDays(1) {
			idx.days[d.UnixMilli()] = d
		}
	}

	return idx
}

// IsUnavailable reports whether the day cannot be the start of a stay night.
func (idx *Index) IsUnavailable(day calday.CalendarDay) bool {
	if idx == nil {
		return false
	}
	_, ok := idx.days[day.UnixMilli()]
	return ok
}

// IsPast reports whether the day precedes local today.
func (idx *Index) IsPast(day calday.CalendarDay) bool {
	if idx == nil {
		return false
	}
	return day.Before(idx.today)
}

// Days returns the unavailable days in ascending order for calendar
// rendering.
func (idx *Index) Days() []calday.CalendarDay {
	if idx == nil {
		return nil
	}
	out := make([]calday.CalendarDay, 0, len(idx.days))
	for _, day := range idx.days {
		out = append(out, day)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

func (idx *Index) Size() int {
	if idx == nil {
		return 0
	}
	return len(idx.days)
}

// SkippedBlackouts counts blackout entries dropped on parse failure.
func (idx *Index) SkippedBlackouts() int {
	if idx == nil {
		return 0
	}
	return idx.skippedBlackouts
}

// SkippedReservations counts reservations dropped because a date failed to
// normalize or the span was inverted. Dropping under-reports occupancy.
func (idx *Index) SkippedReservations() int {
	if idx == nil {
		return 0
	}
	return idx.skippedReservations
}
