package rental

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStockAvailable(t *testing.T) {
	assert.True(t, StockAvailable(1, 0))
	assert.True(t, StockAvailable(3, 2))

	// Every copy out means no new rental.
	assert.False(t, StockAvailable(1, 1))
	assert.False(t, StockAvailable(3, 3))
	assert.False(t, StockAvailable(3, 4))
}
