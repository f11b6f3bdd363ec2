package repository

import (
	"context"

	"github.com/ecodeclub/careerhub/internal/job/internal/domain"
	"github.com/ecodeclub/careerhub/internal/job/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var ErrJobNotFound = dao.ErrRecordNotFound

type JobRepository interface {
	Save(ctx context.Context, j domain.Job) (string, error)
	FindById(ctx context.Context, id string) (domain.Job, error)
	FindByIds(ctx context.Context, ids []string) ([]domain.Job, error)
	List(ctx context.Context, companyId string, offset, limit int) ([]domain.Job, error)
	Count(ctx context.Context, companyId string) (int64, error)
	Delete(ctx context.Context, id string) error
}

type jobRepository struct {
	dao dao.JobDAO
}

func NewJobRepository(d dao.JobDAO) JobRepository {
	return &jobRepository{dao: d}
}

func (r *jobRepository) Save(ctx context.Context, j domain.Job) (string, error) {
	return r.dao.Save(ctx, r.toEntity(j))
}

func (r *jobRepository) FindById(ctx context.Context, id string) (domain.Job, error) {
	j, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Job{}, err
	}
	return r.toDomain(j), nil
}

func (r *jobRepository) FindByIds(ctx context.Context, ids []string) ([]domain.Job, error) {
	jobs, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) List(ctx context.Context, companyId string, offset, limit int) ([]domain.Job, error) {
	jobs, err := r.dao.List(ctx, companyId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(jobs, func(idx int, src dao.Job) domain.Job {
		return r.toDomain(src)
	}), nil
}

func (r *jobRepository) Count(ctx context.Context, companyId string) (int64, error) {
	return r.dao.Count(ctx, companyId)
}

func (r *jobRepository) Delete(ctx context.Context, id string) error {
	return r.dao.DeleteById(ctx, id)
}

func (r *jobRepository) toEntity(j domain.Job) dao.Job {
	return dao.Job{
		Id:        j.ID,
		CompanyId: j.CompanyID,
		Title:     j.Title,
		Location:  j.Location,
		Type:      string(j.Type),
		Remote:    j.Remote,
		Salary: sqlx.JsonColumn[dao.Salary]{
			Val: dao.Salary{
				Min:      j.Salary.Min,
				Max:      j.Salary.Max,
				Currency: j.Salary.Currency,
			},
			Valid: j.Salary != domain.Salary{},
		},
		Description: j.Description,
		Ctime:       j.Ctime,
		Utime:       j.Utime,
	}
}

func (r *jobRepository) toDomain(j dao.Job) domain.Job {
	res := domain.Job{
		ID:          j.Id,
		CompanyID:   j.CompanyId,
		Title:       j.Title,
		Location:    j.Location,
		Type:        domain.WorkType(j.Type),
		Remote:      j.Remote,
		Description: j.Description,
		Ctime:       j.Ctime,
		Utime:       j.Utime,
	}
	if j.Salary.Valid {
		res.Salary = domain.Salary{
			Min:      j.Salary.Val.Min,
			Max:      j.Salary.Val.Max,
			Currency: j.Salary.Val.Currency,
		}
	}
	return res
}
