package rental

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

func TestDeleteRental_Active(t *testing.T) {
	rental := outstandingRental(fixedNow.AddDate(0, 0, -2))

	var deleted *models.Rental
	repo := &repoMock{
		getRentalFn: func(ctx context.Context, id uint) (*models.Rental, error) {
			return rental, nil
		},
		deleteFn: func(ctx context.Context, r *models.Rental) error {
			deleted = r
			return nil
		},
	}

	uc := NewDeleteRental(repo, nil)
	require.NoError(t, uc.Execute(context.Background(), 42))
	assert.Equal(t, rental, deleted)
}

func TestDeleteRental_NotFound(t *testing.T) {
	repo := &repoMock{
		getRentalFn: func(ctx context.Context, id uint) (*models.Rental, error) {
			return nil, errors.New("record not found")
		},
	}

	uc := NewDeleteRental(repo, nil)
	err := uc.Execute(context.Background(), 99)
	assert.True(t, httperr.IsBusiness(err, "rental_not_found"))
}

func TestDeleteRental_ReturnedIsFrozen(t *testing.T) {
	rental := outstandingRental(fixedNow.AddDate(0, 0, -5))
	returned := models.DateOf(fixedNow)
	rental.ReturnDate = &returned

	repo := &repoMock{
		getRentalFn: func(ctx context.Context, id uint) (*models.Rental, error) {
			return rental, nil
		},
		// deleteFn nil: the record must survive.
	}

	uc := NewDeleteRental(repo, nil)
	err := uc.Execute(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}

// Return first, then delete: the two terminal transitions exclude each other.
func TestReturnThenDeleteExcludeEachOther(t *testing.T) {
	rental := outstandingRental(fixedNow.AddDate(0, 0, -5))

	repo := &repoMock{
		getRentalFn: func(ctx context.Context, id uint) (*models.Rental, error) {
			return rental, nil
		},
		getGameFn: func(ctx context.Context, id uint) (*models.Game, error) {
			return testGame(1), nil
		},
		updateFn: func(ctx context.Context, r *models.Rental) error {
			return nil
		},
	}

	returnUC := newReturnUC(repo)
	_, err := returnUC.Execute(context.Background(), 42)
	require.NoError(t, err)

	deleteUC := NewDeleteRental(repo, nil)
	err = deleteUC.Execute(context.Background(), 42)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
}
