package test

import (
	"github.com/ecodeclub/careerhub/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
)

// WithUid 模拟登录态，测试里替代 token 校验的中间件
func WithUid(uid int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithUid(ctx.Request.Context(), uid))
	}
}
