package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/careerhub/internal/job/internal/domain"
	"github.com/ecodeclub/careerhub/internal/job/internal/service"
	"github.com/ecodeclub/careerhub/internal/pkg/httpx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.JobService
}

func NewHandler(svc service.JobService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/jobs")
	g.GET("", ginx.W(h.List))
	g.GET("/:id", ginx.W(h.Detail))
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	j, err := h.svc.Detail(ctx.Request.Context(), ctx.Context.Param("id"))
	if errors.Is(err, service.ErrJobNotFound) {
		return httpx.Respond(ctx, http.StatusNotFound, jobNotFoundResult)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newJobVO(j)}, nil
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	offset := max(httpx.IntQuery(ctx, "offset", 0), 0)
	limit := httpx.IntQuery(ctx, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	jobs, total, err := h.svc.List(ctx.Request.Context(), ctx.Context.Query("companyId"), offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListJobResp{
			Total: total,
			List: slice.Map(jobs, func(idx int, src domain.Job) JobVO {
				return newJobVO(src)
			}),
		},
	}, nil
}

func newJobVO(j domain.Job) JobVO {
	return JobVO{
		ID:        j.ID,
		CompanyID: j.CompanyID,
		Title:     j.Title,
		Location:  j.Location,
		Type:      string(j.Type),
		Remote:    j.Remote,
		Salary: Salary{
			Min:      j.Salary.Min,
			Max:      j.Salary.Max,
			Currency: j.Salary.Currency,
		},
		Description: j.Description,
		Ctime:       j.Ctime,
		Utime:       j.Utime,
	}
}
