//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/careerhub/internal/application"
	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/job"
	"github.com/ecodeclub/careerhub/internal/review"
	"github.com/ecodeclub/careerhub/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ,
	InitIDGenerator, InitTokenGenerator, InitTokenVerifier)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		user.InitModule,
		company.InitModule,
		job.InitModule,
		review.InitModule,
		application.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*company.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*job.Module), "Hdl", "AdminHdl"),
		wire.FieldsOf(new(*review.Module), "Hdl"),
		wire.FieldsOf(new(*application.Module), "Hdl"),
		initMQConsumers,
		initGinxServer,
		InitAdminServer)
	return new(App), nil
}
