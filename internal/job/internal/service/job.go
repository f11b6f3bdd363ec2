package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/job/internal/domain"
	"github.com/ecodeclub/careerhub/internal/job/internal/repository"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound     = errors.New("job not found")
	ErrCompanyNotFound = company.ErrCompanyNotFound
)

//go:generate mockgen -source=./job.go -destination=../../mocks/job.mock.go -package=jobmocks JobService
type JobService interface {
	// Save 公司不存在的时候返回 ErrCompanyNotFound
	Save(ctx context.Context, j domain.Job) (string, error)
	Detail(ctx context.Context, id string) (domain.Job, error)
	GetByIds(ctx context.Context, ids []string) (map[string]domain.Job, error)
	List(ctx context.Context, companyId string, offset, limit int) ([]domain.Job, int64, error)
	Delete(ctx context.Context, id string) error
}

type jobService struct {
	repo       repository.JobRepository
	companySvc company.Service
}

func NewJobService(repo repository.JobRepository, companySvc company.Service) JobService {
	return &jobService{
		repo:       repo,
		companySvc: companySvc,
	}
}

func (s *jobService) Save(ctx context.Context, j domain.Job) (string, error) {
	_, err := s.companySvc.GetById(ctx, j.CompanyID)
	if err != nil {
		return "", fmt.Errorf("保存职位 %s 失败: %w", j.ID, err)
	}
	return s.repo.Save(ctx, j)
}

func (s *jobService) Detail(ctx context.Context, id string) (domain.Job, error) {
	j, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrJobNotFound) {
		return domain.Job{}, ErrJobNotFound
	}
	return j, err
}

func (s *jobService) GetByIds(ctx context.Context, ids []string) (map[string]domain.Job, error) {
	jobs, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[string]domain.Job, len(jobs))
	for _, j := range jobs {
		res[j.ID] = j
	}
	return res, nil
}

func (s *jobService) List(ctx context.Context, companyId string, offset, limit int) ([]domain.Job, int64, error) {
	var (
		eg    errgroup.Group
		jobs  []domain.Job
		total int64
	)
	eg.Go(func() error {
		var err error
		jobs, err = s.repo.List(ctx, companyId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, companyId)
		return err
	})
	return jobs, total, eg.Wait()
}

func (s *jobService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
