package rental

// StockAvailable reports whether a game with stockTotal physical copies can
// take one more rental given how many are currently out.
func StockAvailable(stockTotal int, activeCount int64) bool {
	return activeCount < int64(stockTotal)
}
