package selection

import (
	"stayfront/internal/domain/availability"
	"stayfront/internal/domain/calday"
)

// State of the two-step range picker.
type State int

const (
	// Empty: no start chosen yet.
	Empty State = iota
	// AwaitingEnd: start chosen, waiting for a checkout day.
	AwaitingEnd
	// Complete: both endpoints committed.
	Complete
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case AwaitingEnd:
		return "awaiting-end"
	case Complete:
		return "complete"
	}
	return "unknown"
}

// DayStyle classifies a day for rendering. Endpoint takes precedence over
// the range styles.
type DayStyle int

const (
	StylePlain DayStyle = iota
	StyleDisabled
	StyleEndpoint
	StyleInRange
	StyleInPreview
)

// Outcome reports what a click did. Rejections carry the validator's reason;
// ignored clicks on past or unavailable days have Changed=false and no
// reason.
type Outcome struct {
	State    State
	Changed  bool
	Reason   availability.Reason
	Conflict calday.CalendarDay
}

// Picker drives interactive check-in/check-out selection against a fixed
// availability snapshot. The committed range is replaced wholesale on
// restart, never partially mutated.
type Picker struct {
	avail *availability.Index
	start calday.CalendarDay
	end   calday.CalendarDay
	state State
}

func NewPicker(avail *availability.Index) *Picker {
	return &Picker{avail: avail}
}

func (p *Picker) State() State { return p.state }

// Range returns the committed endpoints; ok is false until Complete.
func (p *Picker) Range() (start, end calday.CalendarDay, ok bool) {
	if p.state != Complete {
		return calday.CalendarDay{}, calday.CalendarDay{}, false
	}
	return p.start, p.end, true
}

// Start returns the chosen check-in day while AwaitingEnd or Complete.
func (p *Picker) Start() calday.CalendarDay { return p.start }

// Click advances the picker with the clicked day. Unavailable days are
// ignored when they would become a check-in; as a checkout candidate they
// stay clickable, because the checkout night itself is never occupied and
// the validator applies the same half-open convention.
func (p *Picker) Click(day calday.CalendarDay) Outcome {
	if day.IsZero() || p.avail.IsPast(day) {
		return Outcome{State: p.state}
	}

	if p.state != AwaitingEnd {
		if p.avail.IsUnavailable(day) {
			return Outcome{State: p.state}
		}
		// First click of a (re)started selection.
		p.start = day
		p.end = calday.CalendarDay{}
		p.state = AwaitingEnd
		return Outcome{State: p.state, Changed: true}
	}

	if day.Before(p.start) {
		if p.avail.IsUnavailable(day) {
			return Outcome{State: p.state}
		}
		// An earlier click corrects an over-eager first pick without an
		// explicit clear step.
		p.start = day
		return Outcome{State: p.state, Changed: true}
	}
	if day.Equal(p.start) {
		return Outcome{State: p.state, Reason: availability.ReasonCheckoutNotAfterCheckin}
	}

	res := availability.ValidateRange(p.start, day, p.avail)
	if !res.Valid {
		return Outcome{State: p.state, Reason: res.Reason, Conflict: res.Conflict}
	}
	p.end = day
	p.state = Complete
	return Outcome{State: p.state, Changed: true}
}

// Clear resets the picker from any state.
func (p *Picker) Clear() {
	p.start = calday.CalendarDay{}
	p.end = calday.CalendarDay{}
	p.state = Empty
}

// Hover computes the preview span for the hovered day while AwaitingEnd.
// Hovering before the start is visually valid even though clicking it would
// restart selection, so the span is min/max ordered. Pure rendering aid:
// committed state is never touched.
func (p *Picker) Hover(day calday.CalendarDay) (from, to calday.CalendarDay, ok bool) {
	if p.state != AwaitingEnd || day.IsZero() {
		return calday.CalendarDay{}, calday.CalendarDay{}, false
	}
	return calday.Min(p.start, day), calday.Max(p.start, day), true
}

// DayStyle classifies a day for rendering given the currently hovered day
// (zero value when nothing is hovered).
func (p *Picker) DayStyle(day, hovered calday.CalendarDay) DayStyle {
	if p.avail.IsPast(day) || p.avail.IsUnavailable(day) {
		return StyleDisabled
	}
	if p.state != Empty && day.Equal(p.start) {
		return StyleEndpoint
	}
	if p.state == Complete {
		if day.Equal(p.end) {
			return StyleEndpoint
		}
		if day.After(p.start) && day.Before(p.end) {
			return StyleInRange
		}
		return StylePlain
	}
	if from, to, ok := p.Hover(hovered); ok {
		if !day.Before(from) && !day.After(to) {
			return StyleInPreview
		}
	}
	return StylePlain
}
