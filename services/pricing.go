package services

import "time"

// Quote is the priced breakdown of a stay, in integer Rupiah.
// Subtotal = rate x headcount (one night for the whole party),
// Total = Subtotal x nights.
type Quote struct {
	Subtotal int64 `json:"subtotal"`
	Total    int64 `json:"total"`
}

// Nights returns the whole-night duration between two dates under
// half-open semantics: 2024-06-05 -> 2024-06-07 is 2 nights. Time-of-day
// components are truncated before subtracting.
func Nights(checkIn, checkOut time.Time) int {
	ci := time.Date(checkIn.Year(), checkIn.Month(), checkIn.Day(), 0, 0, 0, 0, time.UTC)
	co := time.Date(checkOut.Year(), checkOut.Month(), checkOut.Day(), 0, 0, 0, 0, time.UTC)
	return int(co.Sub(ci).Hours() / 24)
}

// ComputePrice derives the amount due for a stay from the per-person
// nightly rate, the headcount, and the number of nights. All arithmetic is
// on integer minor units so totals stay exact across multi-night,
// multi-person stays.
func ComputePrice(ratePerPerson int64, headcount, nights int) (Quote, error) {
	if headcount < 1 || nights < 1 {
		return Quote{}, ErrInvalidInput
	}
	if ratePerPerson <= 0 {
		return Quote{}, ErrInvalidInput
	}

	subtotal := ratePerPerson * int64(headcount)
	return Quote{
		Subtotal: subtotal,
		Total:    subtotal * int64(nights),
	}, nil
}
