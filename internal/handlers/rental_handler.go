package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/gbmahou1/boardcamp-backend/internal/domain/rental"
	"github.com/gbmahou1/boardcamp-backend/internal/dto"
	"github.com/gbmahou1/boardcamp-backend/internal/httperr"
	"github.com/gbmahou1/boardcamp-backend/internal/httpresp"
	ucRental "github.com/gbmahou1/boardcamp-backend/internal/usecase/rental"
)

// ======================================================
// HANDLER
// ======================================================

type RentalHandler struct {
	createUC *ucRental.CreateRental
	returnUC *ucRental.ReturnRental
	deleteUC *ucRental.DeleteRental
	listUC   *ucRental.ListRentals
}

func NewRentalHandler(
	createUC *ucRental.CreateRental,
	returnUC *ucRental.ReturnRental,
	deleteUC *ucRental.DeleteRental,
	listUC *ucRental.ListRentals,
) *RentalHandler {
	return &RentalHandler{
		createUC: createUC,
		returnUC: returnUC,
		deleteUC: deleteUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateRentalRequest struct {
	CustomerID uint `json:"customerId" binding:"required"`
	GameID     uint `json:"gameId" binding:"required"`
	DaysRented int  `json:"daysRented" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *RentalHandler) Create(c *gin.Context) {
	var req CreateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	rental, err := h.createUC.Execute(c.Request.Context(), ucRental.CreateRentalInput{
		CustomerID: req.CustomerID,
		GameID:     req.GameID,
		DaysRented: req.DaysRented,
	})
	if err != nil {
		// Missing references, bad duration and exhausted stock all map
		// to 400 on this endpoint.
		if be, ok := httperr.AsBusiness(err); ok {
			httperr.BadRequest(c, be.Code, "Não foi possível criar o aluguel.")
			return
		}
		httperr.Internal(c, "rental_create_failed", "Erro ao criar aluguel.")
		return
	}

	httpresp.Created(c, rental)
}

// ======================================================
// LIST
// ======================================================

func (h *RentalHandler) List(c *gin.Context) {
	filter := domain.ListFilter{
		CustomerID: uintQuery(c, "customerId"),
		GameID:     uintQuery(c, "gameId"),
		Offset:     intQuery(c, "offset"),
		Limit:      intQuery(c, "limit"),
	}

	rentals, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		httperr.Internal(c, "rental_list_failed", "Erro ao listar aluguéis.")
		return
	}

	out := make([]dto.RentalListDTO, 0, len(rentals))
	for _, r := range rentals {
		out = append(out, dto.NewRentalListDTO(r))
	}

	httpresp.OK(c, out)
}

// ======================================================
// RETURN
// ======================================================

func (h *RentalHandler) Return(c *gin.Context) {
	id, ok := rentalIDParam(c)
	if !ok {
		return
	}

	rental, err := h.returnUC.Execute(c.Request.Context(), id)
	if err != nil {
		writeRentalStateError(c, err)
		return
	}

	httpresp.OK(c, rental)
}

// ======================================================
// DELETE
// ======================================================

func (h *RentalHandler) Delete(c *gin.Context) {
	id, ok := rentalIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), id); err != nil {
		writeRentalStateError(c, err)
		return
	}

	c.Status(200)
}

// ======================================================
// HELPERS
// ======================================================

func rentalIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.NotFound(c, "rental_not_found", "Aluguel não encontrado.")
		return 0, false
	}
	return uint(id), true
}

// writeRentalStateError maps the unknown-id and frozen-state failures shared
// by return and delete.
func writeRentalStateError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "rental_not_found"):
		httperr.NotFound(c, "rental_not_found", "Aluguel não encontrado.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Aluguel já devolvido.")
	default:
		httperr.Internal(c, "rental_update_failed", "Erro ao atualizar aluguel.")
	}
}

func uintQuery(c *gin.Context, key string) uint {
	v, err := strconv.ParseUint(c.Query(key), 10, 64)
	if err != nil {
		return 0
	}
	return uint(v)
}

func intQuery(c *gin.Context, key string) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil {
		return 0
	}
	return v
}
