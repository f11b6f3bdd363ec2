package web

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecodeclub/careerhub/internal/application/internal/domain"
	"github.com/ecodeclub/careerhub/internal/application/internal/errs"
	"github.com/ecodeclub/careerhub/internal/application/internal/service"
	"github.com/ecodeclub/careerhub/internal/pkg/ectx"
	"github.com/ecodeclub/careerhub/internal/pkg/httpx"
	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var (
	errUnauthorized = errors.New("未登录")
	errInvalidId    = errors.New("投递记录 id 不合法")
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.ApplicationService
	vd  *validation.Validator
}

func NewHandler(svc service.ApplicationService) *Handler {
	return &Handler{
		svc: svc,
		vd:  validation.NewValidator(),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/applications")
	g.POST("", httpx.B[ApplyReq](errs.InvalidInput.Code, h.Apply))
	g.GET("", ginx.W(h.List))
	g.GET("/:id", ginx.W(h.Detail))
	g.PUT("/:id/status", httpx.B[UpdateStatusReq](errs.InvalidInput.Code, h.UpdateStatus))
	g.PUT("/:id/notes", httpx.B[UpdateNotesReq](errs.InvalidInput.Code, h.UpdateNotes))
	g.PUT("/:id/interview", httpx.B[UpdateInterviewReq](errs.InvalidInput.Code, h.UpdateInterview))
	g.PUT("/:id/offer", httpx.B[UpdateOfferReq](errs.InvalidInput.Code, h.UpdateOffer))
}

func (h *Handler) Apply(ctx *ginx.Context, req ApplyReq) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return h.fail(ctx, errUnauthorized)
	}
	req.JobID = strings.TrimSpace(req.JobID)
	req.Notes = strings.TrimSpace(req.Notes)
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	a, err := h.svc.Apply(ctx.Request.Context(), uid, req.JobID, req.Notes)
	if err != nil {
		return h.fail(ctx, err)
	}
	return httpx.Respond(ctx, http.StatusCreated, ginx.Result{
		Msg:  "Application submitted successfully",
		Data: newApplicationVO(a),
	})
}

// List 支持 status、search、sort 三个查询参数
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return h.fail(ctx, errUnauthorized)
	}
	req := ListReq{
		Status: ctx.Context.Query("status"),
		Search: strings.TrimSpace(ctx.Context.Query("search")),
		Sort:   ctx.Context.Query("sort"),
	}
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	q := domain.Query{
		Search: req.Search,
		SortBy: domain.SortBy(req.Sort),
	}
	if req.Status != "all" {
		q.Status = domain.Status(req.Status)
	}
	apps, counts, err := h.svc.List(ctx.Request.Context(), uid, q)
	if err != nil {
		return h.fail(ctx, err)
	}
	resp := ListApplicationResp{
		Applications: slice.Map(apps, func(idx int, src domain.Application) ApplicationVO {
			return newApplicationVO(src)
		}),
		Counts: make(map[string]int64, len(counts)+1),
	}
	var total int64
	for st, cnt := range counts {
		resp.Counts[string(st)] = cnt
		total += cnt
	}
	resp.Counts["all"] = total
	return ginx.Result{Data: resp}, nil
}

func (h *Handler) Detail(ctx *ginx.Context) (ginx.Result, error) {
	uid, id, err := h.ids(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}
	a, err := h.svc.Detail(ctx.Request.Context(), uid, id)
	return h.respond(ctx, a, err)
}

func (h *Handler) UpdateStatus(ctx *ginx.Context, req UpdateStatusReq) (ginx.Result, error) {
	uid, id, err := h.ids(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}
	if err = h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	a, err := h.svc.UpdateStatus(ctx.Request.Context(), uid, id, domain.Status(req.Status))
	return h.respond(ctx, a, err)
}

func (h *Handler) UpdateNotes(ctx *ginx.Context, req UpdateNotesReq) (ginx.Result, error) {
	uid, id, err := h.ids(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if err = h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	a, err := h.svc.UpdateNotes(ctx.Request.Context(), uid, id, req.Notes)
	return h.respond(ctx, a, err)
}

func (h *Handler) UpdateInterview(ctx *ginx.Context, req UpdateInterviewReq) (ginx.Result, error) {
	uid, id, err := h.ids(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}
	a, err := h.svc.UpdateInterview(ctx.Request.Context(), uid, id, toMilli(req.InterviewDate))
	return h.respond(ctx, a, err)
}

func (h *Handler) UpdateOffer(ctx *ginx.Context, req UpdateOfferReq) (ginx.Result, error) {
	uid, id, err := h.ids(ctx)
	if err != nil {
		return h.fail(ctx, err)
	}
	req.Notes = strings.TrimSpace(req.Notes)
	if err = h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	a, err := h.svc.UpdateOffer(ctx.Request.Context(), uid, id, domain.Offer{
		Salary:    req.Salary,
		StartDate: toMilli(req.StartDate),
		Notes:     req.Notes,
	})
	return h.respond(ctx, a, err)
}

func (h *Handler) ids(ctx *ginx.Context) (int64, int64, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return 0, 0, errUnauthorized
	}
	id, err := strconv.ParseInt(ctx.Context.Param("id"), 10, 64)
	if err != nil {
		return 0, 0, errInvalidId
	}
	return uid, id, nil
}

func (h *Handler) respond(ctx *ginx.Context, a domain.Application, err error) (ginx.Result, error) {
	if err != nil {
		return h.fail(ctx, err)
	}
	return ginx.Result{Data: newApplicationVO(a)}, nil
}

func (h *Handler) fail(ctx *ginx.Context, err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, errUnauthorized), errors.Is(err, service.ErrAccountNotFound):
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	case errors.Is(err, errInvalidId), errors.Is(err, service.ErrApplicationNotFound):
		return httpx.Respond(ctx, http.StatusNotFound, applicationNotFoundResult)
	case errors.Is(err, service.ErrJobNotFound):
		return httpx.Respond(ctx, http.StatusNotFound, jobNotFoundResult)
	case errors.Is(err, service.ErrDuplicateApplication):
		return httpx.Respond(ctx, http.StatusConflict, duplicateApplicationResult)
	case errors.Is(err, service.ErrIllegalTransition):
		return httpx.Respond(ctx, http.StatusConflict, illegalTransitionResult)
	default:
		return systemErrorResult, err
	}
}
