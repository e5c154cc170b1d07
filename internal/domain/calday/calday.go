package calday

import (
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrUnparseable = errors.New("calday: unparseable date value")

const isoLayout = "2006-01-02"

// CalendarDay is a date pinned to local midnight with no time-of-day
// component. Two values represent the same day iff their UnixMilli
// representations are equal. The zero value is invalid and reported by IsZero.
type CalendarDay struct {
	t time.Time
}

// FromDate builds a day directly from calendar components in local time.
func FromDate(year int, month time.Month, day int) CalendarDay {
	return CalendarDay{t: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// Today truncates now to the local calendar day.
func Today(now time.Time) CalendarDay {
	local := now.Local()
	return FromDate(local.Year(), local.Month(), local.Day())
}

// Normalize converts any supported raw date representation into a
// CalendarDay. ISO strings are parsed component-wise in local time; a UTC
// parse path would shift the date by the viewer's offset. Date-like values
// are rebuilt from their year/month/day, discarding time-of-day and zone
// artifacts.
func Normalize(raw any) (CalendarDay, error) {
	switch v := raw.(type) {
	case CalendarDay:
		if v.IsZero() {
			return CalendarDay{}, ErrUnparseable
		}
		return v, nil
	case time.Time:
		return fromTime(v)
	case *time.Time:
		if v == nil {
			return CalendarDay{}, ErrUnparseable
		}
		return fromTime(*v)
	case string:
		t, err := time.ParseInLocation(isoLayout, v, time.Local)
		if err != nil {
			return CalendarDay{}, fmt.Errorf("%w: %q", ErrUnparseable, v)
		}
		return CalendarDay{t: t}, nil
	case primitive.DateTime:
		return fromTime(v.Time())
	case interface{ Time() time.Time }:
		return fromTime(v.Time())
	default:
		return CalendarDay{}, fmt.Errorf("%w: %T", ErrUnparseable, raw)
	}
}

func fromTime(t time.Time) (CalendarDay, error) {
	if t.IsZero() {
		return CalendarDay{}, ErrUnparseable
	}
	local := t.Local()
	return FromDate(local.Year(), local.Month(), local.Day()), nil
}

func (d CalendarDay) IsZero() bool { return d.t.IsZero() }

// Time exposes the underlying local-midnight instant.
func (d CalendarDay) Time() time.Time { return d.t }

// UnixMilli is the canonical comparable representation of a day.
func (d CalendarDay) UnixMilli() int64 { return d.t.UnixMilli() }

func (d CalendarDay) Equal(other CalendarDay) bool {
	return d.UnixMilli() == other.UnixMilli()
}

func (d CalendarDay) Before(other CalendarDay) bool {
	return d.UnixMilli() < other.UnixMilli()
}

func (d CalendarDay) After(other CalendarDay) bool {
	return d.UnixMilli() > other.UnixMilli()
}

// AddDays steps whole calendar days, staying correct across DST transitions.
func (d CalendarDay) AddDays(n int) CalendarDay {
	return CalendarDay{t: time.Date(d.t.Year(), d.t.Month(), d.t.Day()+n, 0, 0, 0, 0, time.Local)}
}

// DaysUntil counts calendar days from d to other; negative when other is
// earlier. Computed over UTC-pinned dates so DST-shortened days count as one.
func (d CalendarDay) DaysUntil(other CalendarDay) int {
	a := time.Date(d.t.Year(), d.t.Month(), d.t.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(other.t.Year(), other.t.Month(), other.t.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// Format emits the same-day-safe YYYY-MM-DD form that Normalize accepts.
func (d CalendarDay) Format() string { return d.t.Format(isoLayout) }

func (d CalendarDay) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format()
}

// Min returns the earlier of two days, Max the later. Used for hover-preview
// ordering where the hovered day may precede the committed start.
func Min(a, b CalendarDay) CalendarDay {
	if b.Before(a) {
		return b
	}
	return a
}

func Max(a, b CalendarDay) CalendarDay {
	if b.After(a) {
		return b
	}
	return a
}
