package rental

import (
	"context"

	domain "github.com/gbmahou1/boardcamp-backend/internal/domain/rental"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

// repoMock implements domain.Repository with per-test function fields.
// A nil field means the test does not expect that call.
type repoMock struct {
	getCustomerFn func(ctx context.Context, id uint) (*models.Customer, error)
	getGameFn     func(ctx context.Context, id uint) (*models.Game, error)
	createFn      func(ctx context.Context, r *models.Rental) error
	getRentalFn   func(ctx context.Context, id uint) (*models.Rental, error)
	updateFn      func(ctx context.Context, r *models.Rental) error
	deleteFn      func(ctx context.Context, r *models.Rental) error
	listFn        func(ctx context.Context, f domain.ListFilter) ([]models.Rental, error)
}

func (m *repoMock) GetCustomerByID(ctx context.Context, id uint) (*models.Customer, error) {
	return m.getCustomerFn(ctx, id)
}

func (m *repoMock) GetGameByID(ctx context.Context, id uint) (*models.Game, error) {
	return m.getGameFn(ctx, id)
}

func (m *repoMock) CreateRental(ctx context.Context, r *models.Rental) error {
	return m.createFn(ctx, r)
}

func (m *repoMock) GetRentalByID(ctx context.Context, id uint) (*models.Rental, error) {
	return m.getRentalFn(ctx, id)
}

func (m *repoMock) UpdateRental(ctx context.Context, r *models.Rental) error {
	return m.updateFn(ctx, r)
}

func (m *repoMock) DeleteRental(ctx context.Context, r *models.Rental) error {
	return m.deleteFn(ctx, r)
}

func (m *repoMock) ListRentals(ctx context.Context, f domain.ListFilter) ([]models.Rental, error) {
	return m.listFn(ctx, f)
}

var _ domain.Repository = (*repoMock)(nil)
