package selection

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stayfront/internal/domain/availability"
	"stayfront/internal/domain/calday"
)

var pickerNow = time.Date(2025, time.June, 1, 9, 0, 0, 0, time.Local)

func day(s string) calday.CalendarDay {
	d, err := calday.Normalize(s)
	if err != nil {
		panic(err)
	}
	return d
}

func newIndex(blackouts ...string) *availability.Index {
	raw := make([]any, 0, len(blackouts))
	for _, b := range blackouts {
		raw = append(raw, b)
	}
	return availability.Build(availability.BuildInput{BlackoutDates: raw, Now: pickerNow})
}

func TestClickSequenceToComplete(t *testing.T) {
	p := NewPicker(newIndex())

	out := p.Click(day("2025-06-10"))
	assert.True(t, out.Changed)
	assert.Equal(t, AwaitingEnd, p.State())

	out = p.Click(day("2025-06-13"))
	assert.True(t, out.Changed)
	assert.Equal(t, Complete, p.State())

	start, end, ok := p.Range()
	require.True(t, ok)
	assert.Equal(t, "2025-06-10", start.Format())
	assert.Equal(t, "2025-06-13", end.Format())
}

func TestClickIgnoresPastAndUnavailableDays(t *testing.T) {
	p := NewPicker(newIndex("2025-06-15"))

	out := p.Click(day("2025-05-20"))
	assert.False(t, out.Changed)
	assert.Empty(t, out.Reason)
	assert.Equal(t, Empty, p.State())

	out = p.Click(day("2025-06-15"))
	assert.False(t, out.Changed)
	assert.Empty(t, out.Reason)
	assert.Equal(t, Empty, p.State())
}

func TestEarlierClickMovesStart(t *testing.T) {
	p := NewPicker(newIndex())

	p.Click(day("2025-06-20"))
	out := p.Click(day("2025-06-15"))

	assert.True(t, out.Changed)
	assert.Equal(t, AwaitingEnd, p.State())
	assert.Equal(t, "2025-06-15", p.Start().Format())

	_, _, ok := p.Range()
	assert.False(t, ok)
}

func TestSameDayClickRejectedInPlace(t *testing.T) {
	p := NewPicker(newIndex())

	p.Click(day("2025-06-10"))
	out := p.Click(day("2025-06-10"))

	assert.False(t, out.Changed)
	assert.Equal(t, availability.ReasonCheckoutNotAfterCheckin, out.Reason)
	assert.Equal(t, AwaitingEnd, p.State())
	assert.Equal(t, "2025-06-10", p.Start().Format())
}

func TestEndClickBlockedByUnavailableNight(t *testing.T) {
	p := NewPicker(newIndex("2025-06-12"))

	p.Click(day("2025-06-10"))
	out := p.Click(day("2025-06-14"))

	assert.False(t, out.Changed)
	assert.Equal(t, availability.ReasonUnavailableDate, out.Reason)
	assert.Equal(t, "2025-06-12", out.Conflict.Format())
	assert.Equal(t, AwaitingEnd, p.State())
}

func TestCheckoutOnUnavailableDayAllowed(t *testing.T) {
	p := NewPicker(newIndex("2025-06-12"))

	p.Click(day("2025-06-10"))
	out := p.Click(day("2025-06-12"))

	assert.True(t, out.Changed)
	assert.Equal(t, Complete, p.State())

	start, end, ok := p.Range()
	require.True(t, ok)
	assert.Equal(t, "2025-06-10", start.Format())
	assert.Equal(t, "2025-06-12", end.Format())
}

func TestUnavailableStartStaysIgnoredWhileAwaitingEnd(t *testing.T) {
	p := NewPicker(newIndex("2025-06-05"))

	p.Click(day("2025-06-10"))
	out := p.Click(day("2025-06-05"))

	assert.False(t, out.Changed)
	assert.Empty(t, out.Reason)
	assert.Equal(t, AwaitingEnd, p.State())
	assert.Equal(t, "2025-06-10", p.Start().Format())
}

func TestRestartAfterComplete(t *testing.T) {
	p := NewPicker(newIndex())

	p.Click(day("2025-06-10"))
	p.Click(day("2025-06-13"))
	require.Equal(t, Complete, p.State())

	out := p.Click(day("2025-06-20"))
	assert.True(t, out.Changed)
	assert.Equal(t, AwaitingEnd, p.State())
	assert.Equal(t, "2025-06-20", p.Start().Format())

	_, _, ok := p.Range()
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	p := NewPicker(newIndex())

	p.Click(day("2025-06-10"))
	p.Click(day("2025-06-13"))
	p.Clear()

	assert.Equal(t, Empty, p.State())
	assert.True(t, p.Start().IsZero())
	_, _, ok := p.Range()
	assert.False(t, ok)
}

func TestHoverPreview(t *testing.T) {
	p := NewPicker(newIndex())

	_, _, ok := p.Hover(day("2025-06-12"))
	assert.False(t, ok, "no preview before a start is chosen")

	p.Click(day("2025-06-10"))

	from, to, ok := p.Hover(day("2025-06-14"))
	require.True(t, ok)
	assert.Equal(t, "2025-06-10", from.Format())
	assert.Equal(t, "2025-06-14", to.Format())

	// Hovering before the start still yields an ordered span.
	from, to, ok = p.Hover(day("2025-06-07"))
	require.True(t, ok)
	assert.Equal(t, "2025-06-07", from.Format())
	assert.Equal(t, "2025-06-10", to.Format())

	p.Click(day("2025-06-14"))
	_, _, ok = p.Hover(day("2025-06-20"))
	assert.False(t, ok, "no preview once complete")
}

func TestDayStyles(t *testing.T) {
	p := NewPicker(newIndex("2025-06-18"))

	p.Click(day("2025-06-10"))
	p.Click(day("2025-06-13"))

	none := calday.CalendarDay{}
	assert.Equal(t, StyleEndpoint, p.DayStyle(day("2025-06-10"), none))
	assert.Equal(t, StyleEndpoint, p.DayStyle(day("2025-06-13"), none))
	assert.Equal(t, StyleInRange, p.DayStyle(day("2025-06-11"), none))
	assert.Equal(t, StyleInRange, p.DayStyle(day("2025-06-12"), none))
	assert.Equal(t, StylePlain, p.DayStyle(day("2025-06-14"), none))
	assert.Equal(t, StyleDisabled, p.DayStyle(day("2025-06-18"), none))
	assert.Equal(t, StyleDisabled, p.DayStyle(day("2025-05-01"), none))
}

func TestDayStylePreviewWhileAwaitingEnd(t *testing.T) {
	p := NewPicker(newIndex())

	p.Click(day("2025-06-10"))
	hovered := day("2025-06-13")

	assert.Equal(t, StyleEndpoint, p.DayStyle(day("2025-06-10"), hovered))
	assert.Equal(t, StyleInPreview, p.DayStyle(day("2025-06-11"), hovered))
	assert.Equal(t, StyleInPreview, p.DayStyle(day("2025-06-13"), hovered))
	assert.Equal(t, StylePlain, p.DayStyle(day("2025-06-14"), hovered))
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "empty", Empty.String())
	assert.Equal(t, "awaiting-end", AwaitingEnd.String())
	assert.Equal(t, "complete", Complete.String())
}
