package web

import (
	"errors"
	"net/http"

	"github.com/ecodeclub/careerhub/internal/company/internal/domain"
	"github.com/ecodeclub/careerhub/internal/company/internal/service"
	"github.com/ecodeclub/careerhub/internal/pkg/httpx"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.CompanyService
}

func NewHandler(svc service.CompanyService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/companies")
	g.GET("", ginx.W(h.List))
	g.GET("/:id", ginx.W(h.Detail))
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	company, err := h.svc.GetById(ctx.Request.Context(), ctx.Context.Param("id"))
	if errors.Is(err, service.ErrCompanyNotFound) {
		return httpx.Respond(ctx, http.StatusNotFound, notFoundResult)
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newCompanyVO(company),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	offset := max(httpx.IntQuery(ctx, "offset", 0), 0)
	limit := httpx.IntQuery(ctx, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	companies, total, err := h.svc.List(ctx.Request.Context(), offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListCompanyResp{
			Total: total,
			List: slice.Map(companies, func(idx int, src domain.Company) CompanyVO {
				return newCompanyVO(src)
			}),
		},
	}, nil
}

func newCompanyVO(c domain.Company) CompanyVO {
	return CompanyVO{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}
