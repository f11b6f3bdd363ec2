// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package middleware

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/careerhub/internal/pkg/ectx"
	"github.com/ecodeclub/careerhub/internal/pkg/token"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const authHeader = "Authorization"

// CheckLoginBuilder 校验 Bearer token，并把 uid 放进请求的 context 里
type CheckLoginBuilder struct {
	verifier token.Verifier
	logger   *elog.Component
}

func NewCheckLoginBuilder(verifier token.Verifier) *CheckLoginBuilder {
	return &CheckLoginBuilder{
		verifier: verifier,
		logger:   elog.DefaultLogger,
	}
}

func (b *CheckLoginBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		tokenStr, ok := bearerToken(ctx.GetHeader(authHeader))
		if !ok {
			b.unauthorized(ctx)
			return
		}
		uid, err := b.verifier.Verify(tokenStr)
		if err != nil {
			b.logger.Debug("token 校验失败", elog.FieldErr(err))
			b.unauthorized(ctx)
			return
		}
		ctx.Request = ctx.Request.WithContext(ectx.CtxWithUid(ctx.Request.Context(), uid))
	}
}

func (b *CheckLoginBuilder) unauthorized(ctx *gin.Context) {
	ctx.AbortWithStatusJSON(http.StatusUnauthorized, ginx.Result{
		Code: 401001,
		Msg:  "Unauthorized",
	})
}

func bearerToken(header string) (string, bool) {
	scheme, tokenStr, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	tokenStr = strings.TrimSpace(tokenStr)
	return tokenStr, tokenStr != ""
}
