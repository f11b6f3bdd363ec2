package middleware

import (
	"net/http"

	"github.com/ecodeclub/careerhub/internal/pkg/ectx"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

// CheckAdminBuilder 必须放在 CheckLoginBuilder 之后
type CheckAdminBuilder struct {
	admins map[int64]struct{}
	logger *elog.Component
}

func NewCheckAdminBuilder(uids []int64) *CheckAdminBuilder {
	admins := make(map[int64]struct{}, len(uids))
	for _, uid := range uids {
		admins[uid] = struct{}{}
	}
	return &CheckAdminBuilder{admins: admins, logger: elog.DefaultLogger}
}

func (b *CheckAdminBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		uid, ok := ectx.UidFromCtx(ctx.Request.Context())
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{Code: 401001, Msg: "Unauthorized"})
			return
		}
		if _, ok = b.admins[uid]; !ok {
			b.logger.Warn("非管理员访问管理后台", elog.Int64("uid", uid))
			ctx.AbortWithStatusJSON(http.StatusForbidden, ginx.Result{Code: 403001, Msg: "Forbidden"})
		}
	}
}
