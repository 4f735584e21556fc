package rental

import (
	"context"
	"time"

	"github.com/gbmahou1/boardcamp-backend/internal/audit"
	domain "github.com/gbmahou1/boardcamp-backend/internal/domain/rental"
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
	"github.com/gbmahou1/boardcamp-backend/internal/timezone"
)

type ReturnRental struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewReturnRental(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ReturnRental {
	return &ReturnRental{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *ReturnRental) Execute(
	ctx context.Context,
	rentalID uint,
) (*models.Rental, error) {

	r, err := uc.repo.GetRentalByID(ctx, rentalID)
	if err != nil {
		return nil, httperr.ErrBusiness("rental_not_found")
	}

	game, err := uc.repo.GetGameByID(ctx, r.GameID)
	if err != nil {
		return nil, httperr.ErrBusiness("game_not_found")
	}

	if err := domain.Return(r, game.PricePerDay, uc.now()); err != nil {
		return nil, err
	}

	// ReturnDate and DelayFee land in a single UPDATE.
	if err := uc.repo.UpdateRental(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "rental_returned",
		Entity:   "rental",
		EntityID: &r.ID,
	})

	return r, nil
}
