//go:build wireinject

package user

import (
	"sync"

	"github.com/ecodeclub/careerhub/internal/pkg/token"
	"github.com/ecodeclub/careerhub/internal/user/internal/event"
	"github.com/ecodeclub/careerhub/internal/user/internal/repository"
	"github.com/ecodeclub/careerhub/internal/user/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/user/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/user/internal/service"
	"github.com/ecodeclub/careerhub/internal/user/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(web.NewHandler,
	cache.NewUserECache,
	initDAO,
	initAccountDeletedEventProducer,
	service.NewUserService,
	repository.NewCachedUserRepository)

func InitModule(db *egorm.Component, ec ecache.Cache, q mq.MQ, gen token.Generator) *Module {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module)
}

var once = &sync.Once{}

func initDAO(db *egorm.Component) dao.UserDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMUserDAO(db)
}

func initAccountDeletedEventProducer(q mq.MQ) event.AccountDeletedEventProducer {
	producer, err := event.NewAccountDeletedEventProducer(q)
	if err != nil {
		panic(err)
	}
	return producer
}
