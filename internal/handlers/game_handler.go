package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbmahou1/boardcamp-backend/internal/audit"
	"github.com/gbmahou1/boardcamp-backend/internal/dto"
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/httpresp"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

type GameHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewGameHandler(db *gorm.DB, audit *audit.Dispatcher) *GameHandler {
	return &GameHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateGameRequest struct {
	Name        string `json:"name" binding:"required"`
	Image       string `json:"image"`
	StockTotal  int    `json:"stockTotal" binding:"required,gt=0"`
	CategoryID  uint   `json:"categoryId" binding:"required"`
	PricePerDay int    `json:"pricePerDay" binding:"required,gt=0"`
}

// --------- Handlers ---------

// List returns games joined with their category name, optionally filtered
// by a name prefix.
func (h *GameHandler) List(c *gin.Context) {
	name := strings.TrimSpace(c.Query("name"))

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Game{}).
		Select("games.*, categories.name AS category_name").
		Joins("JOIN categories ON categories.id = games.category_id")

	if name != "" {
		q = q.Where("games.name LIKE ?", name+"%")
	}

	games := []dto.GameListDTO{}
	if err := q.
		Order("games.id ASC").
		Scan(&games).Error; err != nil {

		httperr.Internal(c, "game_list_failed", "Erro ao listar jogos.")
		return
	}

	httpresp.OK(c, games)
}

func (h *GameHandler) Create(c *gin.Context) {
	var req CreateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	var category models.Category
	if err := h.db.WithContext(ctx).First(&category, req.CategoryID).Error; err != nil {
		httperr.BadRequest(c, "category_not_found", "Categoria não encontrada.")
		return
	}

	game := models.Game{
		Name:        req.Name,
		Image:       req.Image,
		StockTotal:  req.StockTotal,
		CategoryID:  category.ID,
		PricePerDay: req.PricePerDay,
	}

	if err := h.db.WithContext(ctx).Create(&game).Error; err != nil {
		httperr.Internal(c, "game_create_failed", "Erro ao criar jogo.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "game_created",
		Entity:   "game",
		EntityID: &game.ID,
	})

	httpresp.Created(c, game)
}
