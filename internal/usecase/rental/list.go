package rental

import (
	"context"

	domain "github.com/gbmahou1/boardcamp-backend/internal/domain/rental"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

const maxListLimit = 200

type ListRentals struct {
	repo domain.Repository
}

func NewListRentals(repo domain.Repository) *ListRentals {
	return &ListRentals{repo: repo}
}

// Execute lists rentals newest-last with optional customer/game filters.
// Offset and limit are clamped before they reach the query.
func (uc *ListRentals) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Rental, error) {

	if filter.Offset < 0 {
		filter.Offset = 0
	}
	if filter.Limit < 0 {
		filter.Limit = 0
	}
	if filter.Limit > maxListLimit {
		filter.Limit = maxListLimit
	}

	return uc.repo.ListRentals(ctx, filter)
}
