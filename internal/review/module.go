package review

import (
	"github.com/ecodeclub/careerhub/internal/review/internal/domain"
	"github.com/ecodeclub/careerhub/internal/review/internal/event"
	"github.com/ecodeclub/careerhub/internal/review/internal/service"
	"github.com/ecodeclub/careerhub/internal/review/internal/web"
)

type Module struct {
	Hdl      *Handler
	Svc      Service
	Consumer *AccountDeletedEventConsumer
}

type Review = domain.Review
type Stats = domain.Stats
type Service = service.ReviewService
type Handler = web.Handler
type AccountDeletedEventConsumer = event.AccountDeletedEventConsumer
