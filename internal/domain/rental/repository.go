package rental

import (
	"context"

	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

// ListFilter carries the query-parameter filters of the rental listing.
// Zero values mean "no filter"; Limit 0 means no limit.
type ListFilter struct {
	CustomerID uint
	GameID     uint
	Offset     int
	Limit      int
}

type Repository interface {
	// -------- Customer / Game (read-only lookups) --------
	GetCustomerByID(
		ctx context.Context,
		id uint,
	) (*models.Customer, error)

	GetGameByID(
		ctx context.Context,
		id uint,
	) (*models.Game, error)

	// -------- Rental (create, stock-guarded) --------

	// CreateRental inserts r only while the game still has a free copy.
	// The active-rental count and the insert run in one transaction with
	// the game row locked, so the last copy cannot be handed out twice.
	// Returns a business error ("out_of_stock") when no copy is free.
	CreateRental(
		ctx context.Context,
		r *models.Rental,
	) error

	// -------- Rental (state change) --------
	GetRentalByID(
		ctx context.Context,
		id uint,
	) (*models.Rental, error)

	UpdateRental(
		ctx context.Context,
		r *models.Rental,
	) error

	DeleteRental(
		ctx context.Context,
		r *models.Rental,
	) error

	// -------- Rental (listing) --------
	ListRentals(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Rental, error)
}
