package company

import (
	"github.com/ecodeclub/careerhub/internal/company/internal/domain"
	"github.com/ecodeclub/careerhub/internal/company/internal/service"
	"github.com/ecodeclub/careerhub/internal/company/internal/web"
)

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
}

type Company = domain.Company
type Service = service.CompanyService
type Handler = web.Handler
type AdminHandler = web.AdminHandler

var ErrCompanyNotFound = service.ErrCompanyNotFound
