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

// ======================================================
// INPUT
// ======================================================

type CreateRentalInput struct {
	CustomerID uint
	GameID     uint
	DaysRented int
}

// ======================================================
// USE CASE
// ======================================================

type CreateRental struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCreateRental(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateRental {
	return &CreateRental{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateRental) Execute(
	ctx context.Context,
	in CreateRentalInput,
) (*models.Rental, error) {

	if in.DaysRented <= 0 {
		return nil, httperr.ErrBusiness("invalid_days_rented")
	}

	customer, err := uc.repo.GetCustomerByID(ctx, in.CustomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	game, err := uc.repo.GetGameByID(ctx, in.GameID)
	if err != nil {
		return nil, httperr.ErrBusiness("game_not_found")
	}

	r := &models.Rental{
		CustomerID:    customer.ID,
		GameID:        game.ID,
		RentDate:      models.DateOf(uc.now()),
		DaysRented:    in.DaysRented,
		OriginalPrice: game.PricePerDay * in.DaysRented,
	}

	// Stock is rechecked inside the repository transaction, the read
	// above only fixes the price.
	if err := uc.repo.CreateRental(ctx, r); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "rental_created",
		Entity:   "rental",
		EntityID: &r.ID,
	})

	return r, nil
}
