package http

import (
	"time"

	"github.com/storynest/storynest/internal/config"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/service"
)

type Handler struct {
	services *service.Services

	// environment controls the session cookie's Secure attribute: it is set
	// in every environment except "development".
	environment string

	// sessionTTL mirrors the server-side session lifetime into the cookie's
	// Max-Age. The server-side expiry stays authoritative.
	sessionTTL time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:    services,
		environment: cfg.Environment,
		sessionTTL:  cfg.SessionTTL,
		logger:      logger,
	}
}
