package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/careerhub/internal/application/internal/domain"
	"github.com/ecodeclub/careerhub/internal/application/internal/repository"
	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/job"
	"github.com/ecodeclub/careerhub/internal/pkg/snowflake"
	"github.com/ecodeclub/careerhub/internal/user"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

var (
	ErrJobNotFound          = job.ErrJobNotFound
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = repository.ErrDuplicateApplication
	ErrIllegalTransition    = errors.New("illegal status transition")
	// ErrAccountNotFound token 还有效但是账号已经注销
	ErrAccountNotFound      = errors.New("account not found")
)

//go:generate mockgen -source=./application.go -destination=../../mocks/application.mock.go -package=applicationmocks ApplicationService
type ApplicationService interface {
	// Apply 职位不存在返回 ErrJobNotFound，重复投递返回 ErrDuplicateApplication
	// 账号已注销返回 ErrAccountNotFound
	Apply(ctx context.Context, uid int64, jobId string, notes string) (domain.Application, error)
	// List 同时返回每个状态下的投递数量，数量不受 q 影响
	List(ctx context.Context, uid int64, q domain.Query) ([]domain.Application, map[domain.Status]int64, error)
	Detail(ctx context.Context, uid, id int64) (domain.Application, error)
	// UpdateStatus 不允许的状态流转返回 ErrIllegalTransition
	UpdateStatus(ctx context.Context, uid, id int64, status domain.Status) (domain.Application, error)
	UpdateNotes(ctx context.Context, uid, id int64, notes string) (domain.Application, error)
	// UpdateInterview interviewDate 为 0 代表取消面试
	UpdateInterview(ctx context.Context, uid, id int64, interviewDate int64) (domain.Application, error)
	UpdateOffer(ctx context.Context, uid, id int64, offer domain.Offer) (domain.Application, error)
	DeleteByUid(ctx context.Context, uid int64) error
}

type applicationService struct {
	repo       repository.ApplicationRepository
	jobSvc     job.Service
	companySvc company.Service
	userSvc    user.Service
	idGen      snowflake.IDGenerator
}

func NewApplicationService(repo repository.ApplicationRepository,
	jobSvc job.Service,
	companySvc company.Service,
	userSvc user.Service,
	idGen snowflake.IDGenerator) ApplicationService {
	return &applicationService{
		repo:       repo,
		jobSvc:     jobSvc,
		companySvc: companySvc,
		userSvc:    userSvc,
		idGen:      idGen,
	}
}

func (s *applicationService) Apply(ctx context.Context, uid int64, jobId string, notes string) (domain.Application, error) {
	_, err := s.userSvc.Profile(ctx, uid)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return domain.Application{}, ErrAccountNotFound
	case err != nil:
		return domain.Application{}, fmt.Errorf("查询用户 %d 失败: %w", uid, err)
	}
	_, err = s.jobSvc.Detail(ctx, jobId)
	if err != nil {
		return domain.Application{}, fmt.Errorf("查询职位 %s 失败: %w", jobId, err)
	}
	a, err := s.repo.Create(ctx, domain.Application{
		ID:     s.idGen.Generate(),
		Uid:    uid,
		JobID:  jobId,
		Status: domain.StatusApplied,
		Notes:  notes,
	})
	if err != nil {
		return domain.Application{}, err
	}
	return s.withJob(ctx, a)
}

func (s *applicationService) List(ctx context.Context, uid int64,
	q domain.Query) ([]domain.Application, map[domain.Status]int64, error) {
	var (
		eg     errgroup.Group
		apps   []domain.Application
		counts map[domain.Status]int64
	)
	eg.Go(func() error {
		var err error
		apps, err = s.repo.List(ctx, uid, q.Status, q.SortBy)
		if err != nil {
			return err
		}
		apps, err = s.withJobs(ctx, apps)
		return err
	})
	eg.Go(func() error {
		var err error
		counts, err = s.repo.CountByStatus(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	search := strings.ToLower(strings.TrimSpace(q.Search))
	if search != "" {
		apps = slice.FindAll(apps, func(src domain.Application) bool {
			return strings.Contains(strings.ToLower(src.Job.Title), search) ||
				strings.Contains(strings.ToLower(src.Job.CompanyName), search)
		})
	}
	return apps, counts, nil
}

func (s *applicationService) Detail(ctx context.Context, uid, id int64) (domain.Application, error) {
	a, err := s.find(ctx, uid, id)
	if err != nil {
		return domain.Application{}, err
	}
	return s.withJob(ctx, a)
}

func (s *applicationService) UpdateStatus(ctx context.Context, uid, id int64,
	status domain.Status) (domain.Application, error) {
	a, err := s.find(ctx, uid, id)
	if err != nil {
		return domain.Application{}, err
	}
	if !a.Status.CanTransitTo(status) {
		return domain.Application{}, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, a.Status, status)
	}
	err = s.repo.UpdateStatus(ctx, uid, id, a.Status, status)
	// 读到的状态已经过期了，说明有并发修改
	if errors.Is(err, repository.ErrStatusChanged) {
		return domain.Application{}, fmt.Errorf("%w: %s 已经被修改", ErrIllegalTransition, a.Status)
	}
	return s.afterUpdate(ctx, uid, id, err)
}

func (s *applicationService) UpdateNotes(ctx context.Context, uid, id int64, notes string) (domain.Application, error) {
	err := s.repo.UpdateNotes(ctx, uid, id, notes)
	return s.afterUpdate(ctx, uid, id, err)
}

func (s *applicationService) UpdateInterview(ctx context.Context, uid, id int64,
	interviewDate int64) (domain.Application, error) {
	err := s.repo.UpdateInterview(ctx, uid, id, interviewDate)
	return s.afterUpdate(ctx, uid, id, err)
}

func (s *applicationService) UpdateOffer(ctx context.Context, uid, id int64,
	offer domain.Offer) (domain.Application, error) {
	err := s.repo.UpdateOffer(ctx, uid, id, offer)
	return s.afterUpdate(ctx, uid, id, err)
}

func (s *applicationService) DeleteByUid(ctx context.Context, uid int64) error {
	_, err := s.repo.DeleteByUid(ctx, uid)
	if err != nil {
		return fmt.Errorf("删除用户 %d 的投递记录失败: %w", uid, err)
	}
	return nil
}

// afterUpdate 更新之后重新查询，保证返回的是最新的数据
func (s *applicationService) afterUpdate(ctx context.Context, uid, id int64, err error) (domain.Application, error) {
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	if err != nil {
		return domain.Application{}, err
	}
	return s.Detail(ctx, uid, id)
}

func (s *applicationService) find(ctx context.Context, uid, id int64) (domain.Application, error) {
	a, err := s.repo.FindById(ctx, uid, id)
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return domain.Application{}, ErrApplicationNotFound
	}
	return a, err
}

func (s *applicationService) withJob(ctx context.Context, a domain.Application) (domain.Application, error) {
	res, err := s.withJobs(ctx, []domain.Application{a})
	if err != nil {
		return domain.Application{}, err
	}
	return res[0], nil
}

// withJobs 关联职位和公司，职位被删掉的投递记录只保留 JobID
func (s *applicationService) withJobs(ctx context.Context, apps []domain.Application) ([]domain.Application, error) {
	if len(apps) == 0 {
		return apps, nil
	}
	jobIds := slice.Map(apps, func(idx int, src domain.Application) string {
		return src.JobID
	})
	jobs, err := s.jobSvc.GetByIds(ctx, jobIds)
	if err != nil {
		return nil, err
	}
	companyIds := make([]string, 0, len(jobs))
	for _, j := range jobs {
		companyIds = append(companyIds, j.CompanyID)
	}
	companies, err := s.companySvc.GetByIds(ctx, companyIds)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		j, ok := jobs[apps[i].JobID]
		if !ok {
			apps[i].Job = domain.Job{ID: apps[i].JobID}
			continue
		}
		apps[i].Job = domain.Job{
			ID:          j.ID,
			Title:       j.Title,
			Location:    j.Location,
			Type:        string(j.Type),
			CompanyID:   j.CompanyID,
			CompanyName: companies[j.CompanyID].Name,
		}
	}
	return apps, nil
}
