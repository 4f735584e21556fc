package rental

import "time"

// DelayFee charges pricePerDay for every whole calendar day elapsed between
// rentDate and today. The charge starts on day one, it is not limited to
// days beyond the agreed rental period. Same-day return owes nothing.
func DelayFee(rentDate time.Time, today time.Time, pricePerDay int) int {
	days := daysBetween(rentDate, today)
	if days <= 0 {
		return 0
	}
	return pricePerDay * days
}

// daysBetween counts calendar days, ignoring time-of-day on both ends.
func daysBetween(from time.Time, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
