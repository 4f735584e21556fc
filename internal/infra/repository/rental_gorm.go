package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/gbmahou1/boardcamp-backend/internal/domain/rental"
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

type RentalGormRepository struct {
	db *gorm.DB
}

func NewRentalGormRepository(db *gorm.DB) *RentalGormRepository {
	return &RentalGormRepository{db: db}
}

// --------------------------------------------------
// Customer / Game
// --------------------------------------------------

func (r *RentalGormRepository) GetCustomerByID(
	ctx context.Context,
	id uint,
) (*models.Customer, error) {

	var customer models.Customer
	if err := r.db.WithContext(ctx).First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *RentalGormRepository) GetGameByID(
	ctx context.Context,
	id uint,
) (*models.Game, error) {

	var game models.Game
	if err := r.db.WithContext(ctx).First(&game, id).Error; err != nil {
		return nil, err
	}
	return &game, nil
}

// --------------------------------------------------
// Rental (create, stock-guarded)
// --------------------------------------------------

func (r *RentalGormRepository) CreateRental(
	ctx context.Context,
	rental *models.Rental,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		// Lock the game row so two creates for the last copy serialize.
		var game models.Game
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&game, rental.GameID).Error; err != nil {
			return err
		}

		var active int64
		if err := tx.
			Model(&models.Rental{}).
			Where("game_id = ? AND return_date IS NULL", rental.GameID).
			Count(&active).Error; err != nil {
			return err
		}

		if !domain.StockAvailable(game.StockTotal, active) {
			return httperr.ErrBusiness("out_of_stock")
		}

		return tx.Create(rental).Error
	})
}

// --------------------------------------------------
// Rental (state change)
// --------------------------------------------------

func (r *RentalGormRepository) GetRentalByID(
	ctx context.Context,
	id uint,
) (*models.Rental, error) {

	var rental models.Rental
	if err := r.db.WithContext(ctx).First(&rental, id).Error; err != nil {
		return nil, err
	}

	return &rental, nil
}

func (r *RentalGormRepository) UpdateRental(
	ctx context.Context,
	rental *models.Rental,
) error {
	return r.db.WithContext(ctx).Save(rental).Error
}

func (r *RentalGormRepository) DeleteRental(
	ctx context.Context,
	rental *models.Rental,
) error {
	return r.db.WithContext(ctx).Delete(rental).Error
}

// --------------------------------------------------
// Rental (listing)
// --------------------------------------------------

func (r *RentalGormRepository) ListRentals(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Rental, error) {

	q := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Game").
		Preload("Game.Category")

	if filter.CustomerID != 0 {
		q = q.Where("customer_id = ?", filter.CustomerID)
	}

	if filter.GameID != 0 {
		q = q.Where("game_id = ?", filter.GameID)
	}

	if filter.Offset > 0 {
		q = q.Offset(filter.Offset)
	}

	if filter.Limit > 0 {
		q = q.Limit(filter.Limit)
	}

	var rentals []models.Rental
	if err := q.
		Order("id ASC").
		Find(&rentals).Error; err != nil {
		return nil, err
	}

	return rentals, nil
}

// Compile-time check
var _ domain.Repository = (*RentalGormRepository)(nil)
