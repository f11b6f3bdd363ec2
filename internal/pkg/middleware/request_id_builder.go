package middleware

import (
	"github.com/ecodeclub/careerhub/internal/pkg/ectx"
	"github.com/gin-gonic/gin"
	"github.com/lithammer/shortuuid/v4"
)

const requestIDHeader = "X-Request-ID"

type RequestIDBuilder struct {
}

func NewRequestIDBuilder() *RequestIDBuilder {
	return &RequestIDBuilder{}
}

func (b *RequestIDBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(requestIDHeader)
		if id == "" {
			id = shortuuid.New()
		}
		ctx.Header(requestIDHeader, id)
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithRequestID(ctx.Request.Context(), id))
	}
}
