package repository

import (
	"context"

	"github.com/ecodeclub/careerhub/internal/company/internal/domain"
	"github.com/ecodeclub/careerhub/internal/company/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/company/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/gotomicro/ego/core/elog"
)

var ErrCompanyNotFound = dao.ErrRecordNotFound

type CompanyRepository interface {
	Save(ctx context.Context, c domain.Company) (string, error)
	FindById(ctx context.Context, id string) (domain.Company, error)
	FindByIds(ctx context.Context, ids []string) ([]domain.Company, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Company, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id string) error
}

type companyRepository struct {
	dao    dao.CompanyDAO
	cache  cache.CompanyCache
	logger *elog.Component
}

func NewCompanyRepository(d dao.CompanyDAO, c cache.CompanyCache) CompanyRepository {
	return &companyRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *companyRepository) Save(ctx context.Context, c domain.Company) (string, error) {
	id, err := r.dao.Save(ctx, r.toEntity(c))
	if err != nil {
		return "", err
	}
	r.evict(ctx, id)
	return id, nil
}

// FindById 先查缓存，缓存出错的时候直接查库
func (r *companyRepository) FindById(ctx context.Context, id string) (domain.Company, error) {
	c, err := r.cache.Get(ctx, id)
	if err == nil {
		return c, nil
	}
	entity, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Company{}, err
	}
	c = r.toDomain(entity)
	if err = r.cache.Set(ctx, c); err != nil {
		r.logger.Error("回写公司缓存失败", elog.String("id", id), elog.FieldErr(err))
	}
	return c, nil
}

func (r *companyRepository) FindByIds(ctx context.Context, ids []string) ([]domain.Company, error) {
	entities, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Company) domain.Company {
		return r.toDomain(src)
	}), nil
}

func (r *companyRepository) List(ctx context.Context, offset int, limit int) ([]domain.Company, error) {
	entities, err := r.dao.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Company) domain.Company {
		return r.toDomain(src)
	}), nil
}

func (r *companyRepository) Count(ctx context.Context) (int64, error) {
	return r.dao.Count(ctx)
}

func (r *companyRepository) Delete(ctx context.Context, id string) error {
	err := r.dao.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	r.evict(ctx, id)
	return nil
}

func (r *companyRepository) evict(ctx context.Context, id string) {
	if err := r.cache.Delete(ctx, id); err != nil {
		r.logger.Error("删除公司缓存失败", elog.String("id", id), elog.FieldErr(err))
	}
}

func (r *companyRepository) toEntity(c domain.Company) dao.Company {
	return dao.Company{
		Id:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}

func (r *companyRepository) toDomain(c dao.Company) domain.Company {
	return domain.Company{
		ID:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Website:     c.Website,
		Ctime:       c.Ctime,
		Utime:       c.Utime,
	}
}
