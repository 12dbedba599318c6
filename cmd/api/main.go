package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/ong-esperanza/donaciones-api/internal/application/auth"
	"github.com/ong-esperanza/donaciones-api/internal/application/basket"
	"github.com/ong-esperanza/donaciones-api/internal/application/distribution"
	"github.com/ong-esperanza/donaciones-api/internal/application/donation"
	"github.com/ong-esperanza/donaciones-api/internal/application/report"
	"github.com/ong-esperanza/donaciones-api/internal/application/usecase"
	"github.com/ong-esperanza/donaciones-api/internal/infrastructure/postgres"
	httpRouter "github.com/ong-esperanza/donaciones-api/internal/interfaces/http"
	"github.com/ong-esperanza/donaciones-api/pkg/config"
	"github.com/ong-esperanza/donaciones-api/pkg/jwt"
	"github.com/ong-esperanza/donaciones-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Los montos viajan como números JSON, no como strings.
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	donorRepo := postgres.NewDonorRepository(pool)
	collaboratorRepo := postgres.NewCollaboratorRepository(pool)
	familyRepo := postgres.NewFamilyRepository(pool)
	campaignRepo := postgres.NewCampaignRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	sectorRepo := postgres.NewSectorRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	donationRepo := postgres.NewDonationRepository(pool)
	foodBasketRepo := postgres.NewFoodBasketRepository(pool)
	distributionRepo := postgres.NewDistributionRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	tokens := jwt.NewManager(cfg.JWT.Secret, time.Duration(cfg.JWT.Expiration)*time.Minute, cfg.JWT.Issuer)

	authUC := auth.NewUseCase(userRepo, tokens, log)
	userUC := usecase.NewUserUseCase(userRepo)
	donorUC := usecase.NewDonorUseCase(donorRepo)
	collaboratorUC := usecase.NewCollaboratorUseCase(collaboratorRepo, sectorRepo)
	familyUC := usecase.NewFamilyUseCase(familyRepo)
	campaignUC := usecase.NewCampaignUseCase(campaignRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, sectorRepo)
	productUC := usecase.NewProductUseCase(productRepo, categoryRepo)
	stockUC := usecase.NewStockUseCase(txRunner, log)
	createDonationUC := donation.NewCreateDonationUseCase(txRunner, donorRepo, collaboratorRepo, campaignRepo, productRepo, log)
	queryDonationsUC := donation.NewQueryDonationsUseCase(donationRepo, donorRepo, collaboratorRepo, campaignRepo, productRepo)
	foodBasketUC := basket.NewFoodBasketUseCase(txRunner, foodBasketRepo, productRepo, log)
	createDistributionUC := distribution.NewCreateDistributionUseCase(txRunner, foodBasketRepo, familyRepo, collaboratorRepo, campaignRepo, log)
	queryDistributionsUC := distribution.NewQueryDistributionsUseCase(distributionRepo)
	reportUC := report.NewUseCase(reportRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Donaciones API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:             authUC,
		UserUC:             userUC,
		DonorUC:            donorUC,
		CollaboratorUC:     collaboratorUC,
		FamilyUC:           familyUC,
		CampaignUC:         campaignUC,
		CategoryUC:         categoryUC,
		ProductUC:          productUC,
		StockUC:            stockUC,
		CreateDonation:     createDonationUC,
		QueryDonations:     queryDonationsUC,
		FoodBasketUC:       foodBasketUC,
		CreateDistribution: createDistributionUC,
		QueryDistributions: queryDistributionsUC,
		ReportUC:           reportUC,
		Tokens:             tokens,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
