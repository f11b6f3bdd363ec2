package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/careerhub/internal/application"
	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/job"
	"github.com/ecodeclub/careerhub/internal/pkg/middleware"
	"github.com/ecodeclub/careerhub/internal/pkg/token"
	"github.com/ecodeclub/careerhub/internal/review"
	"github.com/ecodeclub/careerhub/internal/user"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
	"github.com/prometheus/client_golang/prometheus"
)

func initGinxServer(verifier token.Verifier,
	userHdl *user.Handler,
	companyHdl *company.Handler,
	jobHdl *job.Handler,
	reviewHdl *review.Handler,
	appHdl *application.Handler,
) *egin.Component {
	res := egin.Load("web").Build()
	res.Use(corsMiddleware(),
		middleware.NewRequestIDBuilder().Build(),
		middleware.NewMetricsBuilder("careerhub", prometheus.DefaultRegisterer).Build())
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	userHdl.PublicRoutes(res.Engine)
	companyHdl.PublicRoutes(res.Engine)
	jobHdl.PublicRoutes(res.Engine)
	reviewHdl.PublicRoutes(res.Engine)
	appHdl.PublicRoutes(res.Engine)
	// 登录校验
	res.Use(middleware.NewCheckLoginBuilder(verifier).Build())
	userHdl.PrivateRoutes(res.Engine)
	reviewHdl.PrivateRoutes(res.Engine)
	appHdl.PrivateRoutes(res.Engine)
	return res
}

func corsMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Request-Id"},
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			return strings.HasSuffix(origin, ".careerhub.dev")
		},
	})
}
