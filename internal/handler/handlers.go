package handler

import (
	"github.com/avelkin/courses-api/internal/config"
	"github.com/avelkin/courses-api/internal/handler/http"
	"github.com/avelkin/courses-api/internal/logger"
	"github.com/avelkin/courses-api/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
