package dto

// GameListDTO is a game row joined with its category name, the shape the
// listing endpoint returns.
type GameListDTO struct {
	ID           uint   `json:"id"`
	Name         string `json:"name"`
	Image        string `json:"image"`
	StockTotal   int    `json:"stockTotal"`
	CategoryID   uint   `json:"categoryId"`
	PricePerDay  int    `json:"pricePerDay"`
	CategoryName string `json:"categoryName"`
}
