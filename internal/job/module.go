package job

import (
	"github.com/ecodeclub/careerhub/internal/job/internal/domain"
	"github.com/ecodeclub/careerhub/internal/job/internal/service"
	"github.com/ecodeclub/careerhub/internal/job/internal/web"
)

type Module struct {
	AdminHdl *AdminHandler
	Hdl      *Handler
	Svc      Service
}

type Job = domain.Job
type Salary = domain.Salary
type WorkType = domain.WorkType
type Service = service.JobService
type Handler = web.Handler
type AdminHandler = web.AdminHandler

var ErrJobNotFound = service.ErrJobNotFound
