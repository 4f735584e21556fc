package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gbmahou1/boardcamp-backend/internal/audit"
	"github.com/gbmahou1/boardcamp-backend/internal/handlers"
	infraRepo "github.com/gbmahou1/boardcamp-backend/internal/infra/repository"
	ucRental "github.com/gbmahou1/boardcamp-backend/internal/usecase/rental"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	rentalRepo := infraRepo.NewRentalGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — RENTALS
	// ======================================================
	createRentalUC := ucRental.NewCreateRental(rentalRepo, auditDispatcher)
	returnRentalUC := ucRental.NewReturnRental(rentalRepo, auditDispatcher)
	deleteRentalUC := ucRental.NewDeleteRental(rentalRepo, auditDispatcher)
	listRentalsUC := ucRental.NewListRentals(rentalRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	categoryHandler := handlers.NewCategoryHandler(db, auditDispatcher)
	gameHandler := handlers.NewGameHandler(db, auditDispatcher)
	customerHandler := handlers.NewCustomerHandler(db, auditDispatcher)

	rentalHandler := handlers.NewRentalHandler(
		createRentalUC,
		returnRentalUC,
		deleteRentalUC,
		listRentalsUC,
	)

	// ======================================================
	// ROTAS
	// ======================================================
	r.GET("/categories", categoryHandler.List)
	r.POST("/categories", categoryHandler.Create)

	r.GET("/games", gameHandler.List)
	r.POST("/games", gameHandler.Create)

	r.GET("/customers", customerHandler.List)
	r.GET("/customers/:id", customerHandler.GetByID)
	r.POST("/customers", customerHandler.Create)
	r.PUT("/customers/:id", customerHandler.Update)

	r.POST("/rentals", rentalHandler.Create)
	r.GET("/rentals", rentalHandler.List)
	r.POST("/rentals/:id/return", rentalHandler.Return)
	r.DELETE("/rentals/:id", rentalHandler.Delete)
}
