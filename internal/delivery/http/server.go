package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/cityinfo-api/internal/config"
	"github.com/cityinfo-api/internal/delivery/http/handler"
	"github.com/cityinfo-api/internal/delivery/http/middleware"
	"github.com/cityinfo-api/internal/pkg/errors"
	"github.com/cityinfo-api/internal/pkg/token"
	"github.com/cityinfo-api/internal/pkg/utils"
)

// uploadOverhead leaves room for multipart framing around the largest accepted file.
const uploadOverhead = 1 << 20

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

// Handlers - набор обработчиков, регистрируемых сервером
type Handlers struct {
	City            *handler.CityHandler
	PointOfInterest *handler.PointOfInterestHandler
	Auth            *handler.AuthHandler
	File            *handler.FileHandler
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app      *fiber.App
	config   *config.Config
	logger   *zap.Logger
	tokens   *token.Service
	handlers Handlers
	checks   map[string]HealthCheck
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	tokens *token.Service,
	handlers Handlers,
	checks map[string]HealthCheck,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "CityInfo API",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    int(cfg.Files.MaxUploadBytes) + uploadOverhead,
		ErrorHandler: errorHandler(logger),
	})

	s := &Server{
		app:      app,
		config:   cfg,
		logger:   logger,
		tokens:   tokens,
		handlers: handlers,
		checks:   checks,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.RequestID())
	s.app.Use(middleware.ErrorDetail(s.config.IsDevelopment()))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/health", s.health)

	api := s.app.Group("/api")

	api.Post("/authentication/authenticate", s.handlers.Auth.Authenticate)

	authenticated := middleware.Authenticate(s.tokens, s.logger)

	cities := api.Group("/cities", authenticated)
	cities.Get("/", s.handlers.City.GetCities)
	cities.Get("/:id", s.handlers.City.GetCity)

	pois := cities.Group("/:cityId/pointsofinterest",
		middleware.RequireClaim(token.ClaimCity, s.config.Auth.RequiredCity))
	pois.Get("/", s.handlers.PointOfInterest.GetPointsOfInterest)
	pois.Post("/", s.handlers.PointOfInterest.CreatePointOfInterest)
	pois.Get("/:pointOfInterestId", s.handlers.PointOfInterest.GetPointOfInterest)
	pois.Put("/:pointOfInterestId", s.handlers.PointOfInterest.UpdatePointOfInterest)
	pois.Patch("/:pointOfInterestId", s.handlers.PointOfInterest.PartiallyUpdatePointOfInterest)
	pois.Delete("/:pointOfInterestId", s.handlers.PointOfInterest.DeletePointOfInterest)

	files := api.Group("/files", authenticated)
	files.Get("/:id", s.handlers.File.GetFile)
	files.Post("/", s.handlers.File.UploadFile)
}

// health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health [get]
func (s *Server) health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	status := fiber.StatusOK
	components := fiber.Map{}
	for name, check := range s.checks {
		if err := check(ctx); err != nil {
			s.logger.Warn("Health check failed", zap.String("component", name), zap.Error(err))
			components[name] = "unhealthy"
			status = fiber.StatusServiceUnavailable
			continue
		}
		components[name] = "healthy"
	}

	overall := "healthy"
	if status != fiber.StatusOK {
		overall = "unhealthy"
	}

	return c.Status(status).JSON(fiber.Map{
		"status":     overall,
		"components": components,
		"time":       time.Now().UTC(),
	})
}

// App exposes the underlying fiber application, e.g. for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler renders errors that reach fiber (unknown routes, oversized bodies,
// recovered panics) in the same envelope as handler errors.
func errorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if fe, ok := err.(*fiber.Error); ok {
			return utils.SendError(c, errors.New(fiberErrorCode(fe.Code), fe.Message, fe.Code))
		}

		logger.Error("Unhandled error",
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return utils.SendError(c, err)
	}
}

func fiberErrorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return "NOT_FOUND"
	case fiber.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case fiber.StatusRequestEntityTooLarge:
		return "REQUEST_TOO_LARGE"
	case fiber.StatusBadRequest:
		return "BAD_REQUEST"
	default:
		return "HTTP_ERROR"
	}
}
