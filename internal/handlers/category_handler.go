package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbmahou1/boardcamp-backend/internal/audit"
	dbpkg "github.com/gbmahou1/boardcamp-backend/internal/db"
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/httpresp"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

type CategoryHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCategoryHandler(db *gorm.DB, audit *audit.Dispatcher) *CategoryHandler {
	return &CategoryHandler{db: db, audit: audit}
}

// --------- Requests ---------

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// --------- Handlers ---------

func (h *CategoryHandler) List(c *gin.Context) {
	var categories []models.Category
	if err := h.db.WithContext(c.Request.Context()).
		Order("id ASC").
		Find(&categories).Error; err != nil {

		httperr.Internal(c, "category_list_failed", "Erro ao listar categorias.")
		return
	}

	httpresp.OK(c, categories)
}

func (h *CategoryHandler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Nome é obrigatório.")
		return
	}

	ctx := c.Request.Context()

	var count int64
	if err := h.db.WithContext(ctx).
		Model(&models.Category{}).
		Where("name = ?", req.Name).
		Count(&count).Error; err != nil {

		httperr.Internal(c, "category_check_failed", "Erro ao validar categoria.")
		return
	}
	if count > 0 {
		httperr.Conflict(c, "category_exists", "Categoria já existe.")
		return
	}

	category := models.Category{Name: req.Name}
	if err := h.db.WithContext(ctx).Create(&category).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			httperr.Conflict(c, "category_exists", "Categoria já existe.")
			return
		}
		httperr.Internal(c, "category_create_failed", "Erro ao criar categoria.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "category_created",
		Entity:   "category",
		EntityID: &category.ID,
	})

	httpresp.Created(c, category)
}
