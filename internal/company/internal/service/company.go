package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/careerhub/internal/company/internal/domain"
	"github.com/ecodeclub/careerhub/internal/company/internal/repository"
	"golang.org/x/sync/errgroup"
)

var ErrCompanyNotFound = errors.New("company not found")

//go:generate mockgen -source=./company.go -destination=../../mocks/company.mock.go -package=companymocks CompanyService
type CompanyService interface {
	Save(ctx context.Context, company domain.Company) (string, error)
	// GetById 公司不存在的时候返回 ErrCompanyNotFound
	GetById(ctx context.Context, id string) (domain.Company, error)
	GetByIds(ctx context.Context, ids []string) (map[string]domain.Company, error)
	List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error)
	Delete(ctx context.Context, id string) error
}

type companyService struct {
	repo repository.CompanyRepository
}

func NewCompanyService(repo repository.CompanyRepository) CompanyService {
	return &companyService{
		repo: repo,
	}
}

func (s *companyService) Save(ctx context.Context, company domain.Company) (string, error) {
	return s.repo.Save(ctx, company)
}

func (s *companyService) GetById(ctx context.Context, id string) (domain.Company, error) {
	c, err := s.repo.FindById(ctx, id)
	if errors.Is(err, repository.ErrCompanyNotFound) {
		return domain.Company{}, ErrCompanyNotFound
	}
	return c, err
}

func (s *companyService) GetByIds(ctx context.Context, ids []string) (map[string]domain.Company, error) {
	companies, err := s.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[string]domain.Company, len(companies))
	for _, company := range companies {
		res[company.ID] = company
	}
	return res, nil
}

func (s *companyService) List(ctx context.Context, offset int, limit int) ([]domain.Company, int64, error) {
	var (
		eg        errgroup.Group
		companies []domain.Company
		total     int64
	)
	eg.Go(func() error {
		var err error
		companies, err = s.repo.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx)
		return err
	})
	return companies, total, eg.Wait()
}

func (s *companyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
