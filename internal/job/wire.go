//go:build wireinject

package job

import (
	"sync"

	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/job/internal/repository"
	"github.com/ecodeclub/careerhub/internal/job/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/job/internal/service"
	"github.com/ecodeclub/careerhub/internal/job/internal/web"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, cm *company.Module) (*Module, error) {
	wire.Build(
		wire.FieldsOf(new(*company.Module), "Svc"),
		InitTablesOnce,
		repository.NewJobRepository,
		service.NewJobService,
		web.NewHandler,
		web.NewAdminHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.JobDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMJobDAO(db)
}
