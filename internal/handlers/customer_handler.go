package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbmahou1/boardcamp-backend/internal/audit"
	dbpkg "github.com/gbmahou1/boardcamp-backend/internal/db"
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/httpresp"
	"github.com/gbmahou1/boardcamp-backend/internal/models"
)

type CustomerHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCustomerHandler(db *gorm.DB, audit *audit.Dispatcher) *CustomerHandler {
	return &CustomerHandler{db: db, audit: audit}
}

// --------- Requests ---------

// CustomerRequest serves both create and update, the contract is the same.
type CustomerRequest struct {
	Name     string      `json:"name" binding:"required"`
	Phone    string      `json:"phone" binding:"required,phone"`
	CPF      string      `json:"cpf" binding:"required,cpf"`
	Birthday models.Date `json:"birthday" binding:"required"`
}

// --------- Handlers ---------

func (h *CustomerHandler) List(c *gin.Context) {
	cpf := strings.TrimSpace(c.Query("cpf"))

	q := h.db.WithContext(c.Request.Context())

	if cpf != "" {
		q = q.Where("cpf LIKE ?", cpf+"%")
	}

	customers := []models.Customer{}
	if err := q.
		Order("id ASC").
		Find(&customers).Error; err != nil {

		httperr.Internal(c, "customer_list_failed", "Erro ao listar clientes.")
		return
	}

	httpresp.OK(c, customers)
}

// GetByID keeps the original contract of a singleton array on success.
func (h *CustomerHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	var customer models.Customer
	if err := h.db.WithContext(c.Request.Context()).
		First(&customer, uint(id)).Error; err != nil {

		httperr.NotFound(c, "customer_not_found", "Cliente não encontrado.")
		return
	}

	httpresp.OK(c, []models.Customer{customer})
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	if taken, err := h.cpfTaken(c, req.CPF, 0); err != nil || taken {
		if err == nil {
			httperr.Conflict(c, "cpf_exists", "CPF já cadastrado.")
		}
		return
	}

	customer := models.Customer{
		Name:     req.Name,
		Phone:    req.Phone,
		CPF:      req.CPF,
		Birthday: req.Birthday,
	}

	if err := h.db.WithContext(ctx).Create(&customer).Error; err != nil {
		if dbpkg.IsUniqueViolation(err) {
			httperr.Conflict(c, "cpf_exists", "CPF já cadastrado.")
			return
		}
		httperr.Internal(c, "customer_create_failed", "Erro ao criar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_created",
		Entity:   "customer",
		EntityID: &customer.ID,
	})

	httpresp.Created(c, customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_request", "Identificador inválido.")
		return
	}
	customerID := uint(id)

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ctx := c.Request.Context()

	// O cliente pode manter o próprio CPF.
	if taken, err := h.cpfTaken(c, req.CPF, customerID); err != nil || taken {
		if err == nil {
			httperr.Conflict(c, "cpf_exists", "CPF já cadastrado.")
		}
		return
	}

	updates := map[string]any{
		"name":     req.Name,
		"phone":    req.Phone,
		"cpf":      req.CPF,
		"birthday": req.Birthday,
	}

	if err := h.db.WithContext(ctx).
		Model(&models.Customer{}).
		Where("id = ?", customerID).
		Updates(updates).Error; err != nil {

		if dbpkg.IsUniqueViolation(err) {
			httperr.Conflict(c, "cpf_exists", "CPF já cadastrado.")
			return
		}
		httperr.Internal(c, "customer_update_failed", "Erro ao atualizar cliente.")
		return
	}

	h.audit.Dispatch(audit.Event{
		Action:   "customer_updated",
		Entity:   "customer",
		EntityID: &customerID,
	})

	c.Status(200)
}

// cpfTaken writes a 500 itself on storage failure; callers only handle the
// conflict case.
func (h *CustomerHandler) cpfTaken(c *gin.Context, cpf string, excludeID uint) (bool, error) {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.Customer{}).
		Where("cpf = ?", cpf)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		httperr.Internal(c, "customer_check_failed", "Erro ao validar CPF.")
		return false, err
	}

	return count > 0, nil
}
