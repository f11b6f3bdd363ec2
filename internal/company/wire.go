//go:build wireinject

package company

import (
	"sync"

	"github.com/ecodeclub/careerhub/internal/company/internal/repository"
	"github.com/ecodeclub/careerhub/internal/company/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/company/internal/repository/dao"
	"github.com/ecodeclub/careerhub/internal/company/internal/service"
	"github.com/ecodeclub/careerhub/internal/company/internal/web"
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	InitTablesOnce,
	cache.NewCompanyCache,
	repository.NewCompanyRepository,
	service.NewCompanyService,
	web.NewHandler,
	web.NewAdminHandler,
)

func InitModule(db *egorm.Component, ec ecache.Cache) (*Module, error) {
	wire.Build(ProviderSet, wire.Struct(new(Module), "*"))
	return new(Module), nil
}

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.CompanyDAO {
	once.Do(func() {
		_ = dao.InitTables(db)
	})
	return dao.NewGORMCompanyDAO(db)
}
