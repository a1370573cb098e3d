package httpapi

import (
	"github.com/munjalisha10-hub/giftgenie-backend/internal/logger"
	"github.com/munjalisha10-hub/giftgenie-backend/internal/quiz"
)

type API struct {
	service *quiz.Service
	log     *logger.Logger
}

func NewAPI(service *quiz.Service, log *logger.Logger) *API {
	if log == nil {
		log = logger.NewNop()
	}
	return &API{
		service: service,
		log:     log,
	}
}
