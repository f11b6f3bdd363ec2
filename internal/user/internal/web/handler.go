package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/ecodeclub/careerhub/internal/pkg/ectx"
	"github.com/ecodeclub/careerhub/internal/pkg/httpx"
	"github.com/ecodeclub/careerhub/internal/pkg/token"
	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/careerhub/internal/user/internal/domain"
	"github.com/ecodeclub/careerhub/internal/user/internal/errs"
	"github.com/ecodeclub/careerhub/internal/user/internal/service"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
	gen token.Generator
	vd  *validation.Validator
}

func NewHandler(svc service.UserService, gen token.Generator) *Handler {
	return &Handler{
		svc: svc,
		gen: gen,
		vd:  validation.NewValidator(),
	}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/signup", httpx.B[SignupReq](errs.InvalidInput.Code, h.Signup))
	users.POST("/login", httpx.B[LoginReq](errs.InvalidInput.Code, h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.W(h.Profile))
	users.PUT("/profile", httpx.B[UpdateProfileReq](errs.InvalidInput.Code, h.UpdateProfile))
	users.PUT("/password", httpx.B[ChangePasswordReq](errs.InvalidInput.Code, h.ChangePassword))
	users.PUT("/notifications", httpx.B[NotificationSettingsReq](errs.InvalidInput.Code, h.UpdateNotifications))
	users.PUT("/privacy", httpx.B[PrivacySettingsReq](errs.InvalidInput.Code, h.UpdatePrivacy))
	users.DELETE("/delete", httpx.B[DeleteAccountReq](errs.InvalidInput.Code, h.DeleteAccount))
}

func (h *Handler) Signup(ctx *ginx.Context, req SignupReq) (ginx.Result, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	uid, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		return h.emailTaken(ctx)
	case err != nil:
		return systemErrorResult, err
	}
	return httpx.Respond(ctx, http.StatusCreated, ginx.Result{
		Msg:  "User created successfully",
		Data: uid,
	})
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	req.Email = strings.TrimSpace(req.Email)
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	u, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrInvalidUserOrPassword):
		return httpx.Respond(ctx, http.StatusUnauthorized, ginx.Result{
			Code: errs.InvalidCredential.Code,
			Msg:  errs.InvalidCredential.Msg,
		})
	case err != nil:
		return systemErrorResult, err
	}
	accessToken, err := h.gen.Generate(u.Id)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: LoginResp{Uid: u.Id, AccessToken: accessToken},
	}, nil
}

func (h *Handler) Profile(ctx *ginx.Context) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	u, err := h.svc.Profile(ctx.Request.Context(), uid)
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		return httpx.Respond(ctx, http.StatusNotFound, ginx.Result{
			Code: errs.UserNotFound.Code,
			Msg:  errs.UserNotFound.Msg,
		})
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) UpdateProfile(ctx *ginx.Context, req UpdateProfileReq) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Email = strings.TrimSpace(req.Email)
	req.Skills = strings.TrimSpace(req.Skills)
	req.Interests = strings.TrimSpace(req.Interests)
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	err := h.svc.UpdateProfile(ctx.Request.Context(), domain.User{
		Id:        uid,
		FullName:  req.FullName,
		Email:     req.Email,
		Skills:    req.Skills,
		Interests: req.Interests,
	})
	switch {
	case errors.Is(err, service.ErrDuplicateEmail):
		return h.emailTaken(ctx)
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Profile updated successfully"}, nil
}

func (h *Handler) ChangePassword(ctx *ginx.Context, req ChangePasswordReq) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	err := h.svc.ChangePassword(ctx.Request.Context(), uid, req.CurrentPassword, req.NewPassword)
	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return httpx.Invalid(ctx, errs.InvalidInput.Code, validation.Errors{
			{Field: "currentPassword", Message: "is incorrect"},
		})
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Password updated successfully"}, nil
}

func (h *Handler) UpdateNotifications(ctx *ginx.Context, req NotificationSettingsReq) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	err := h.svc.UpdateNotifications(ctx.Request.Context(), uid, domain.NotificationSettings{
		EmailNotifications: *req.EmailNotifications,
		JobAlerts:          *req.JobAlerts,
		ApplicationUpdates: *req.ApplicationUpdates,
		Newsletter:         *req.Newsletter,
		MarketingEmails:    *req.MarketingEmails,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Notification settings updated successfully"}, nil
}

func (h *Handler) UpdatePrivacy(ctx *ginx.Context, req PrivacySettingsReq) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	err := h.svc.UpdatePrivacy(ctx.Request.Context(), uid, domain.PrivacySettings{
		ProfileVisibility: domain.ProfileVisibility(req.ProfileVisibility),
		ShowEmail:         *req.ShowEmail,
		ShowResume:        *req.ShowResume,
		DataSharing:       *req.DataSharing,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Privacy settings updated successfully"}, nil
}

func (h *Handler) DeleteAccount(ctx *ginx.Context, req DeleteAccountReq) (ginx.Result, error) {
	uid, ok := ectx.UidFromCtx(ctx.Request.Context())
	if !ok {
		return httpx.Respond(ctx, http.StatusUnauthorized, unauthorizedResult)
	}
	if err := h.vd.Struct(req); err != nil {
		return httpx.Invalid(ctx, errs.InvalidInput.Code, err)
	}
	err := h.svc.DeleteAccount(ctx.Request.Context(), uid, strings.TrimSpace(req.Reason))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "Account deleted successfully"}, nil
}

func (h *Handler) emailTaken(ctx *ginx.Context) (ginx.Result, error) {
	return httpx.Respond(ctx, http.StatusConflict, ginx.Result{
		Code: errs.EmailTaken.Code,
		Msg:  errs.EmailTaken.Msg,
	})
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:        u.Id,
		Email:     u.Email,
		FullName:  u.FullName,
		Skills:    u.Skills,
		Interests: u.Interests,
		Notifications: NotificationSettings{
			EmailNotifications: u.Notification.EmailNotifications,
			JobAlerts:          u.Notification.JobAlerts,
			ApplicationUpdates: u.Notification.ApplicationUpdates,
			Newsletter:         u.Notification.Newsletter,
			MarketingEmails:    u.Notification.MarketingEmails,
		},
		Privacy: PrivacySettings{
			ProfileVisibility: string(u.Privacy.ProfileVisibility),
			ShowEmail:         u.Privacy.ShowEmail,
			ShowResume:        u.Privacy.ShowResume,
			DataSharing:       u.Privacy.DataSharing,
		},
		Ctime: u.Ctime,
	}
}
