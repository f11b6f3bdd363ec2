package web

import (
	"strings"

	"github.com/ecodeclub/careerhub/internal/company/internal/domain"
	"github.com/ecodeclub/careerhub/internal/company/internal/errs"
	"github.com/ecodeclub/careerhub/internal/company/internal/service"
	"github.com/ecodeclub/careerhub/internal/pkg/httpx"
	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	svc service.CompanyService
	vd  *validation.Validator
}

func NewAdminHandler(svc service.CompanyService) *AdminHandler {
	return &AdminHandler{
		svc: svc,
		vd:  validation.NewValidator(),
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/company")
	g.POST("/save", httpx.B[SaveCompanyReq](errs.InvalidInput.Code, h.Save))
	g.POST("/delete", httpx.B[IdReq](errs.InvalidInput.Code, h.Delete))
}

func (h *AdminHandler) Save(ctx *ginx.Context, req SaveCompanyReq) (ginx.Result, error) {
	req.ID = strings.TrimSpace(req.ID)
	req.Name = strings.TrimSpace(req.Name)
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	id, err := h.svc.Save(ctx.Request.Context(), domain.Company{
		ID:          req.ID,
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *AdminHandler) Delete(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Delete(ctx.Request.Context(), req.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "删除成功",
	}, nil
}
