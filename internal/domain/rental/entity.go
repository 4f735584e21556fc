package rental

import (
	"time"

	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Return closes an active rental: sets the return date and the delay fee.
// A returned rental is terminal, calling Return again fails.
func Return(r *models.Rental, pricePerDay int, now time.Time) error {
	if err := CanReturn(StatusOf(r)); err != nil {
		return err
	}

	today := models.DateOf(now)
	fee := DelayFee(r.RentDate.Time, now, pricePerDay)

	r.ReturnDate = &today
	r.DelayFee = &fee
	return nil
}
