package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ong-esperanza/donaciones-api/internal/application/auth"
	"github.com/ong-esperanza/donaciones-api/internal/application/basket"
	"github.com/ong-esperanza/donaciones-api/internal/application/distribution"
	"github.com/ong-esperanza/donaciones-api/internal/application/donation"
	"github.com/ong-esperanza/donaciones-api/internal/application/report"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
	"github.com/ong-esperanza/donaciones-api/internal/domain/entity"
	"github.com/ong-esperanza/donaciones-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC             *auth.UseCase
	UserUC             *usecase.UserUseCase
	DonorUC            *usecase.DonorUseCase
	CollaboratorUC     *usecase.CollaboratorUseCase
	FamilyUC           *usecase.FamilyUseCase
	CampaignUC         *usecase.CampaignUseCase
	CategoryUC         *usecase.CategoryUseCase
	ProductUC          *usecase.ProductUseCase
	StockUC            *usecase.StockUseCase
	CreateDonation     *donation.CreateDonationUseCase
	QueryDonations     *donation.QueryDonationsUseCase
	FoodBasketUC       *basket.FoodBasketUseCase
	CreateDistribution *distribution.CreateDistributionUseCase
	QueryDistributions *distribution.QueryDistributionsUseCase
	ReportUC           *report.UseCase
	Tokens             *jwt.Manager
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Tokens))

	// Users (solo admin)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.GetByID)
	users.Put("/:id", userHandler.Update)

	// Donors (protegido)
	donors := protected.Group("/donors")
	donorHandler := NewDonorHandler(deps.DonorUC)
	donors.Post("/", donorHandler.Create)
	donors.Get("/", donorHandler.List)
	donors.Get("/:id", donorHandler.GetByID)
	donors.Put("/:id", donorHandler.Update)
	donors.Patch("/:id/active", donorHandler.SetActive)
	donors.Delete("/:id", donorHandler.Delete)

	// Collaborators (protegido)
	collaborators := protected.Group("/collaborators")
	collaboratorHandler := NewCollaboratorHandler(deps.CollaboratorUC)
	collaborators.Post("/", collaboratorHandler.Create)
	collaborators.Get("/", collaboratorHandler.List)
	collaborators.Get("/:id", collaboratorHandler.GetByID)
	collaborators.Put("/:id", collaboratorHandler.Update)
	collaborators.Patch("/:id/active", collaboratorHandler.SetActive)
	collaborators.Delete("/:id", collaboratorHandler.Delete)

	// Families (protegido)
	families := protected.Group("/families")
	familyHandler := NewFamilyHandler(deps.FamilyUC)
	families.Post("/", familyHandler.Create)
	families.Get("/", familyHandler.List)
	families.Get("/:id", familyHandler.GetByID)
	families.Put("/:id", familyHandler.Update)
	families.Patch("/:id/active", familyHandler.SetActive)
	families.Delete("/:id", familyHandler.Delete)

	// Campaigns (protegido)
	campaigns := protected.Group("/campaigns")
	campaignHandler := NewCampaignHandler(deps.CampaignUC)
	campaigns.Post("/", campaignHandler.Create)
	campaigns.Get("/", campaignHandler.List)
	campaigns.Get("/:id", campaignHandler.GetByID)
	campaigns.Put("/:id", campaignHandler.Update)

	// Categories y sectors (protegido, catálogos)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	protected.Get("/sectors", categoryHandler.ListSectors)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	stockHandler := NewStockHandler(deps.StockUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)

	// Stock (protegido): ajuste aditivo fuera del CRUD de productos.
	protected.Patch("/stock/:productId", stockHandler.Adjust)

	// Donations (protegido)
	donations := protected.Group("/donations")
	donationHandler := NewDonationHandler(deps.CreateDonation, deps.QueryDonations)
	donations.Post("/", donationHandler.Create)
	donations.Get("/", donationHandler.List)
	donations.Get("/:id", donationHandler.GetByID)

	// Food baskets (protegido)
	foodBaskets := protected.Group("/food-baskets")
	foodBasketHandler := NewFoodBasketHandler(deps.FoodBasketUC)
	foodBaskets.Post("/", foodBasketHandler.Create)
	foodBaskets.Get("/", foodBasketHandler.List)
	foodBaskets.Get("/:id", foodBasketHandler.GetByID)
	foodBaskets.Put("/:id", foodBasketHandler.Update)

	// Distributions (protegido)
	distributions := protected.Group("/food-basket-distributions")
	distributionHandler := NewDistributionHandler(deps.CreateDistribution, deps.QueryDistributions)
	distributions.Post("/", distributionHandler.Create)
	distributions.Get("/", distributionHandler.List)
	distributions.Get("/:id", distributionHandler.GetByID)
	distributions.Patch("/:id/status", distributionHandler.UpdateStatus)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/donations", reportHandler.Donations)
	reports.Get("/stock", reportHandler.Stock)
	reports.Get("/campaigns", reportHandler.Campaigns)
	reports.Get("/collaborators", reportHandler.Collaborators)
}
