package web

import (
	"errors"
	"math"
	"net/http"
	"strings"

	"github.com/ecodeclub/careerhub/internal/pkg/ectx"
	"github.com/ecodeclub/careerhub/internal/pkg/httpx"
	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/careerhub/internal/review/internal/domain"
	"github.com/ecodeclub/careerhub/internal/review/internal/errs"
	"github.com/ecodeclub/careerhub/internal/review/internal/service"
	"github.com/ecodeclub/careerhub/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
	anonymous    = "Anonymous"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc     service.ReviewService
	userSvc user.Service
	vd      *validation.Validator
	logger  *elog.Component
}

func NewHandler(svc service.ReviewService, userSvc user.Service) *Handler {
	return &Handler{
		svc:     svc,
		userSvc: userSvc,
		vd:      validation.NewValidator(),
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	g := server.Group("/reviews")
	g.GET("", ginx.W(h.List))
	g.GET("/stats", ginx.W(h.Stats))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/reviews", httpx.B[CreateReviewReq](errs.InvalidInput.Code, h.Create))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReviewReq) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	req.CompanyID = strings.TrimSpace(req.CompanyID)
	req.Title = strings.TrimSpace(req.Title)
	req.Content = strings.TrimSpace(req.Content)
	req.Position = strings.TrimSpace(req.Position)
	req.Pros = slice.Map(req.Pros, func(idx int, src string) string { return strings.TrimSpace(src) })
	req.Cons = slice.Map(req.Cons, func(idx int, src string) string { return strings.TrimSpace(src) })
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}

	r, err := h.svc.Create(ctx.Request.Context(), domain.Review{
		Uid:             uid,
		CompanyID:       req.CompanyID,
		Rating:          req.Rating,
		WorkEnvironment: req.WorkEnvironment,
		Compensation:    req.Compensation,
		CareerGrowth:    req.CareerGrowth,
		Title:           req.Title,
		Content:         req.Content,
		Pros:            req.Pros,
		Cons:            req.Cons,
		Position:        req.Position,
		WorkType:        domain.WorkType(req.WorkType),
		Verified:        req.IsVerified,
	})
	switch {
	case errors.Is(err, service.ErrAccountNotFound):
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	case errors.Is(err, service.ErrCompanyNotFound):
		return httpx.Respond(ctx, http.StatusNotFound, companyNotFoundResult)
	case errors.Is(err, service.ErrDuplicateReview):
		return httpx.Respond(ctx, http.StatusConflict, duplicateReviewResult)
	case err != nil:
		return systemErrorResult, err
	}
	return httpx.Respond(ctx, http.StatusCreated, ginx.Result{
		Msg: "Review submitted successfully",
		Data: CreateReviewResp{
			Review: ReviewSummary{
				ID:        r.ID,
				Rating:    r.Rating,
				Title:     r.Title,
				CreatedAt: formatTime(r.Ctime),
			},
		},
	})
}

// List 按照创建时间倒序分页，page 从 1 开始
func (h *Handler) List(ctx *ginx.Context) (ginx.Result, error) {
	companyId := strings.TrimSpace(ctx.Context.Query("companyId"))
	if companyId == "" {
		return httpx.Respond(ctx, http.StatusBadRequest, companyRequiredResult)
	}
	page := httpx.IntQuery(ctx, "page", defaultPage)
	if page < 1 {
		page = defaultPage
	}
	limit := httpx.IntQuery(ctx, "limit", defaultLimit)
	if limit < 1 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	// offset 不能溢出
	page = min(page, math.MaxInt/limit)

	reviews, total, err := h.svc.List(ctx.Request.Context(), companyId, (page-1)*limit, limit)
	if err != nil {
		return systemErrorResult, err
	}
	names := h.userNames(ctx, reviews)
	return ginx.Result{
		Data: ListReviewResp{
			Reviews: slice.Map(reviews, func(idx int, src domain.Review) ReviewVO {
				name, ok := names[src.Uid]
				if !ok || name == "" {
					name = anonymous
				}
				return newReviewVO(src, name)
			}),
			Pagination: Pagination{
				Page:  page,
				Limit: limit,
				Total: total,
				Pages: (total + int64(limit) - 1) / int64(limit),
			},
		},
	}, nil
}

// 查不到用户名也不影响列表
func (h *Handler) userNames(ctx *ginx.Context, reviews []domain.Review) map[int64]string {
	res := make(map[int64]string, len(reviews))
	if len(reviews) == 0 {
		return res
	}
	uids := slice.Map(reviews, func(idx int, src domain.Review) int64 {
		return src.Uid
	})
	users, err := h.userSvc.FindByIds(ctx.Request.Context(), uids)
	if err != nil {
		h.logger.Error("查询评价的作者失败",
			elog.Any("uids", uids),
			elog.FieldErr(err))
		return res
	}
	for uid, u := range users {
		res[uid] = u.FullName
	}
	return res
}

func (h *Handler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	companyId := strings.TrimSpace(ctx.Context.Query("companyId"))
	if companyId == "" {
		return httpx.Respond(ctx, http.StatusBadRequest, companyRequiredResult)
	}
	stats, err := h.svc.Stats(ctx.Request.Context(), companyId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newStatsVO(stats)}, nil
}
