//go:build wireinject

package application

import (
	"sync"

	"github.com/ecodeclub/careerhub/internal/application/internal/event"
	"github.com/ecodeclub/careerhub/internal/application/internal/repository"
	"github.com/ecodeclub/careerhub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/application/internal/service"
	"github.com/ecodeclub/careerhub/internal/application/internal/web"
	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/job"
	"github.com/ecodeclub/careerhub/internal/pkg/snowflake"
	"github.com/ecodeclub/careerhub/internal/user"
	"github.com/ecodeclub/mq-api"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component,
	q mq.MQ,
	jm *job.Module,
	cm *company.Module,
	um *user.Module,
	idGen snowflake.IDGenerator) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*job.Module), "Svc"),
		wire.FieldsOf(new(*company.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		InitTablesOnce,
		repository.NewApplicationRepository,
		service.NewApplicationService,
		event.NewAccountDeletedEventConsumer,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ApplicationDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMApplicationDAO(db)
}
