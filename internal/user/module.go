package user

import (
	"github.com/ecodeclub/careerhub/internal/user/internal/domain"
	"github.com/ecodeclub/careerhub/internal/user/internal/event"
	"github.com/ecodeclub/careerhub/internal/user/internal/service"
	"github.com/ecodeclub/careerhub/internal/user/internal/web"
)

type Module struct {
	Hdl *Handler
	Svc Service
}

var ErrUserNotFound = service.ErrUserNotFound

type User = domain.User
type Service = service.UserService

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler

type AccountDeletedEvent = event.AccountDeletedEvent

const AccountDeletedEventName = event.AccountDeletedEventName
