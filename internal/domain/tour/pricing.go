package tour

// PerPersonPrice returns the effective per-guest price after discount.
// No rounding is applied here; display formatting is a presentation concern.
func PerPersonPrice(p Price) float64 {
	return p.Amount - p.Amount*p.Discount
}

// TotalPrice returns the discounted price for numGuests guests.
// Callers validate numGuests > 0 before reaching this calculator.
func TotalPrice(p Price, numGuests int) float64 {
	return PerPersonPrice(p) * float64(numGuests)
}

// Savings returns the total amount saved through the discount
func Savings(p Price, numGuests int) float64 {
	return p.Amount * p.Discount * float64(numGuests)
}
