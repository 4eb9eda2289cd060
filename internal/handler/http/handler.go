package http

import (
	"github.com/MKhiriev/echosell-api/internal/config"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/internal/service"
	"github.com/go-playground/validator/v10"
)

// Handler carries the dependencies of the HTTP transport layer: the domain
// services, the request validator, and the base logger used to derive
// request-scoped loggers.
type Handler struct {
	services *service.Services

	cfg config.App

	validate *validator.Validate

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler with all its dependencies.
func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		validate: validator.New(),
		logger:   logger,
	}
}
