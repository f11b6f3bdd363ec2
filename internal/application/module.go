package application

import (
	"github.com/ecodeclub/careerhub/internal/application/internal/domain"
	"github.com/ecodeclub/careerhub/internal/application/internal/event"
	"github.com/ecodeclub/careerhub/internal/application/internal/service"
	"github.com/ecodeclub/careerhub/internal/application/internal/web"
)

type Module struct {
	Hdl      *Handler
	Svc      Service
	Consumer *AccountDeletedEventConsumer
}

type Application = domain.Application
type Status = domain.Status
type Service = service.ApplicationService
type Handler = web.Handler
type AccountDeletedEventConsumer = event.AccountDeletedEventConsumer
