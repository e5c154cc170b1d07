package pricing

import "math"

type Category string

const (
	CategoryHome       Category = "home"
	CategoryService    Category = "service"
	CategoryExperience Category = "experience"
)

// IsHome reports whether the category is night-priced lodging rather than a
// unit-priced service or experience.
func (c Category) IsHome() bool { return c == CategoryHome }

const serviceFeeRate = 0.05

// RateQuote is the derived price breakdown shown to the guest. Recomputed on
// every guests/nights/discount change, never persisted.
type RateQuote struct {
	UnitPrice  float64
	UnitCount  int
	Subtotal   float64
	ServiceFee float64
	Total      float64
}

// Quote derives the breakdown from the listing rate and stay parameters.
// Rounding to whole currency units happens only at the service-fee step; the
// discounted unit price stays fractional.
func Quote(rate, discountPercent float64, category Category, nights, guests int) RateQuote {
	if rate < 0 {
		rate = 0
	}
	if discountPercent < 0 {
		discountPercent = 0
	}
	if discountPercent > 100 {
		discountPercent = 100
	}
	if guests < 1 {
		guests = 1
	}
	if nights < 0 {
		nights = 0
	}

	unit := rate * (1 - discountPercent/100)

	var subtotal float64
	var units int
	switch {
	case category.IsHome() && nights > 0:
		units = nights * guests
		subtotal = unit * float64(units)
	case category.IsHome():
		// No date range chosen yet: show the base nightly rate only.
		units = 1
		subtotal = unit
	default:
		units = guests
		subtotal = unit * float64(guests)
	}

	fee := math.Round(subtotal * serviceFeeRate)
	return RateQuote{
		UnitPrice:  unit,
		UnitCount:  units,
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
	}
}
