package rental

import (
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

// ===============================
// Rental Status
// ===============================

type Status string

const (
	StatusActive   Status = "active"
	StatusReturned Status = "returned"
)

// StatusOf derives the lifecycle state from the record itself:
// a rental is active until its return date is set.
func StatusOf(r *models.Rental) Status {
	if r.ReturnDate != nil {
		return StatusReturned
	}
	return StatusActive
}

// ===============================
// Validations
// ===============================

// CanReturn define se um aluguel pode ser devolvido
func CanReturn(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanDelete define se um aluguel pode ser removido
func CanDelete(current Status) error {
	if current != StatusActive {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
