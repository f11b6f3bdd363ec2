//go:build wireinject

package review

import (
	"sync"

	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/pkg/snowflake"
	"github.com/ecodeclub/careerhub/internal/review/internal/event"
	"github.com/ecodeclub/careerhub/internal/review/internal/repository"
	"github.com/ecodeclub/careerhub/internal/review/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/review/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/review/internal/service"
	"github.com/ecodeclub/careerhub/internal/review/internal/web"
	"github.com/ecodeclub/careerhub/internal/user"
	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	ec ecache.Cache,
	q mq.MQ,
	cm *company.Module,
	um *user.Module,
	idGen snowflake.IDGenerator) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*company.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		InitTablesOnce,
		cache.NewStatsCache,
		repository.NewReviewRepository,
		service.NewReviewService,
		event.NewAccountDeletedEventConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ReviewDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMReviewDAO(db)
}
