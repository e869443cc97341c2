package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"galeana-pepper/internal/api/handlers"
	"galeana-pepper/internal/api/routes"
	"galeana-pepper/internal/middleware"
	"galeana-pepper/internal/utils"
	"galeana-pepper/internal/utils/mailing"
	"galeana-pepper/internal/utils/storage"
	"galeana-pepper/pkg/dashboard"
	"galeana-pepper/pkg/descarga"
	"galeana-pepper/pkg/embarque"
	"galeana-pepper/pkg/inventario"
	"galeana-pepper/pkg/jwt"
	"galeana-pepper/pkg/pesaje"
	"galeana-pepper/pkg/procesamiento"
	"galeana-pepper/pkg/producto"
	"galeana-pepper/pkg/proveedor"
	"galeana-pepper/pkg/tanque"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var ErrJWTSecretMissing = errors.New("JWT_SECRET is not configured")

// NewApp wires every repository, service and handler onto a fiber app. The
// returned func ends open tank streams and must run before the app shuts down.
func NewApp(ctx context.Context, db *gorm.DB, log *zap.Logger) (*fiber.App, func(), error) {
	loc, err := PlantLocation()
	if err != nil {
		return nil, nil, err
	}
	secret := utils.GetConfig("JWT_SECRET")
	if secret == "" {
		return nil, nil, ErrJWTSecretMissing
	}

	utils.InitValidator()
	app := fiber.New(fiber.Config{
		AppName: "galeana-pepper",
	})
	middlewares := middleware.NewMiddleware(utils.GetConfig("ALLOWED_ORIGINS"))
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, nil, fmt.Errorf("creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, nil, fmt.Errorf("opening access log: %w", err)
	}
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   loc.String(),
		Output:     file,
	}))

	rateLimit, err := strconv.Atoi(utils.GetConfig("RATE_LIMIT"))
	if err != nil || rateLimit <= 0 {
		rateLimit = 20
	}
	app.Use(limiter.New(limiter.Config{
		Max:        rateLimit,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3, err := storage.NewAwsS3(ctx)
	if err != nil {
		return nil, nil, err
	}
	var mailer mailing.Mailer
	if mailConfig := mailing.LoadMailConfig(); mailConfig.Configured() {
		mailer = mailing.NewMailer(mailConfig)
	} else {
		log.Info("smtp not configured, rejection notices disabled")
	}
	hub := tanque.NewHub(16)

	// Repository
	proveedorRepository := proveedor.NewProveedorRepository(db)
	productoRepository := producto.NewProductoRepository(db)
	tanqueRepository := tanque.NewTanqueRepository(db)
	embarqueRepository := embarque.NewEmbarqueRepository(db)
	dashboardRepository := dashboard.NewDashboardRepository(db)

	// Service
	jwtService := jwt.NewJWTService(secret, utils.GetConfig("JWT_ISSUER"))
	notifier := descarga.NewMailNotifier(mailer, utils.GetConfig("NOTIFY_EMAIL"), log.Named("notifier"))
	proveedorService := proveedor.NewProveedorService(proveedorRepository, log.Named("proveedor"))
	productoService := producto.NewProductoService(productoRepository, proveedorRepository, s3, log.Named("producto"), loc)
	pesajeService := pesaje.NewPesajeService(productoRepository, log.Named("pesaje"), loc)
	descargaService := descarga.NewDescargaService(productoRepository, notifier, log.Named("descarga"), loc)
	procesamientoService := procesamiento.NewProcesamientoService(productoRepository, log.Named("procesamiento"), loc)
	tanqueService := tanque.NewTanqueService(tanqueRepository, productoRepository, hub, log.Named("tanque"))
	embarqueService := embarque.NewEmbarqueService(embarqueRepository, productoRepository, log.Named("embarque"))
	dashboardService := dashboard.NewDashboardService(dashboardRepository, productoRepository, loc)
	inventarioService := inventario.NewInventarioService(productoRepository, loc)

	// routes
	routesConfig := routes.Config{
		App:                  app,
		ProveedorHandler:     handlers.NewProveedorHandler(proveedorService, validator),
		ProductoHandler:      handlers.NewProductoHandler(productoService, validator),
		PesajeHandler:        handlers.NewPesajeHandler(pesajeService, validator),
		DescargaHandler:      handlers.NewDescargaHandler(descargaService, validator),
		ProcesamientoHandler: handlers.NewProcesamientoHandler(procesamientoService, validator),
		TanqueHandler:        handlers.NewTanqueHandler(tanqueService, validator),
		EmbarqueHandler:      handlers.NewEmbarqueHandler(embarqueService, validator),
		DashboardHandler:     handlers.NewDashboardHandler(dashboardService),
		InventarioHandler:    handlers.NewInventarioHandler(inventarioService),
		Middleware:           middlewares,
		JWTService:           jwtService,
	}
	routesConfig.Setup()

	app.Hooks().OnShutdown(func() error {
		return file.Close()
	})
	return app, hub.Close, nil
}

// PlantLocation loads the timezone used for plant days and displayed times.
func PlantLocation() (*time.Location, error) {
	name := utils.GetConfig("PLANT_TIMEZONE")
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("loading plant timezone %q: %w", name, err)
	}
	return loc, nil
}
