package rental

import (
	"context"

	"github.com/gbmahou1/boardcamp-backend/internal/audit"
	domain "github.com/gbmahou1/boardcamp-backend/internal/domain/rental"
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
)

type DeleteRental struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteRental(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteRental {
	return &DeleteRental{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteRental) Execute(
	ctx context.Context,
	rentalID uint,
) error {

	r, err := uc.repo.GetRentalByID(ctx, rentalID)
	if err != nil {
		return httperr.ErrBusiness("rental_not_found")
	}

	// Only outstanding rentals can be removed; a returned one is frozen.
	if err := domain.CanDelete(domain.StatusOf(r)); err != nil {
		return err
	}

	if err := uc.repo.DeleteRental(ctx, r); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "rental_deleted",
		Entity:   "rental",
		EntityID: &r.ID,
	})

	return nil
}
