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

package ioc

import (
	"net/http"

	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/job"
	"github.com/ecodeclub/careerhub/internal/pkg/middleware"
	"github.com/ecodeclub/careerhub/internal/pkg/token"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
)

type AdminServer *egin.Component

func InitAdminServer(verifier token.Verifier,
	companyHdl *company.AdminHandler,
	jobHdl *job.AdminHandler,
) AdminServer {
	res := egin.Load("admin").Build()
	res.Use(corsMiddleware(), middleware.NewRequestIDBuilder().Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(middleware.NewCheckLoginBuilder(verifier).Build())
	res.Use(middleware.NewCheckAdminBuilder(adminUids()).Build())
	companyHdl.PrivateRoutes(res.Engine)
	jobHdl.PrivateRoutes(res.Engine)
	return res
}

func adminUids() []int64 {
	var uids []int64
	err := econf.UnmarshalKey("admin.uids", &uids)
	if err != nil {
		panic(err)
	}
	return uids
}
