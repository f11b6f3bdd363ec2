package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecodeclub/careerhub/internal/job/internal/domain"
	"github.com/ecodeclub/careerhub/internal/job/internal/errs"
	"github.com/ecodeclub/careerhub/internal/job/internal/service"
	"github.com/ecodeclub/careerhub/internal/pkg/httpx"
	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.JobService
	vd  *validation.Validator
}

func NewAdminHandler(svc service.JobService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
		vd:  validation.NewValidator(),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/job")
	g.POST("/save", httpx.B[SaveJobReq](errs.InvalidInput.Code, h.Save))
	g.POST("/delete", httpx.B[IdReq](errs.InvalidInput.Code, h.Delete))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveJobReq) (ginx.Result, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.CompanyID = strings.TrimSpace(req.CompanyID)
	req.Title = strings.TrimSpace(req.Title)
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	id, err := h.svc.Save(ctx.Request.Context(), domain.Job{
		ID:        req.ID,
		CompanyID: req.CompanyID,
		Title:     req.Title,
		Location:  req.Location,
		Type:      domain.WorkType(req.Type),
		Remote:    req.Remote,
		Salary: domain.Salary{
			Min:      req.Salary.Min,
			Max:      req.Salary.Max,
			Currency: req.Salary.Currency,
		},
		Description: req.Description,
	})
	switch {
	case errors.Is(err, service.ErrCompanyNotFound):
		return httpx.Respond(ctx, http.StatusNotFound, companyNotFoundResult)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: id}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "删除成功"}, nil
}
