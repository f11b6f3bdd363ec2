package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ecodeclub/careerhub/internal/company"
	"github.com/ecodeclub/careerhub/internal/pkg/snowflake"
	"github.com/ecodeclub/careerhub/internal/review/internal/domain"
	"github.com/ecodeclub/careerhub/internal/review/internal/repository"
	"github.com/ecodeclub/careerhub/internal/user"
	"golang.org/x/sync/errgroup"
)

var (
	ErrCompanyNotFound = company.ErrCompanyNotFound
	ErrDuplicateReview = repository.ErrDuplicateReview
	// ErrAccountNotFound token 还有效但是账号已经注销
	ErrAccountNotFound = errors.New("account not found")
)

//go:generate mockgen -source=./review.go -destination=../../mocks/review.mock.go -package=reviewmocks ReviewService
type ReviewService interface {
	// Create 公司不存在返回 ErrCompanyNotFound，重复评价返回 ErrDuplicateReview
	// 账号已注销返回 ErrAccountNotFound
	Create(ctx context.Context, r domain.Review) (domain.Review, error)
	List(ctx context.Context, companyId string, offset, limit int) ([]domain.Review, int64, error)
	Stats(ctx context.Context, companyId string) (domain.Stats, error)
	// DeleteByUid 账号注销之后清理
	DeleteByUid(ctx context.Context, uid int64) error
}

type reviewService struct {
	repo       repository.ReviewRepository
	companySvc company.Service
	userSvc    user.Service
	idGen      snowflake.IDGenerator
}

func NewReviewService(repo repository.ReviewRepository,
	companySvc company.Service,
	userSvc user.Service,
	idGen snowflake.IDGenerator) ReviewService {
	return &reviewService{
		repo:       repo,
		companySvc: companySvc,
		userSvc:    userSvc,
		idGen:      idGen,
	}
}

func (s *reviewService) Create(ctx context.Context, r domain.Review) (domain.Review, error) {
	_, err := s.userSvc.Profile(ctx, r.Uid)
	switch {
	case errors.Is(err, user.ErrUserNotFound):
		return domain.Review{}, ErrAccountNotFound
	case err != nil:
		return domain.Review{}, fmt.Errorf("查询用户 %d 失败: %w", r.Uid, err)
	}
	_, err = s.companySvc.GetById(ctx, r.CompanyID)
	if err != nil {
		return domain.Review{}, fmt.Errorf("查询公司 %s 失败: %w", r.CompanyID, err)
	}
	// 唯一性靠唯一索引保证，不提前查
	r.ID = s.idGen.Generate()
	return s.repo.Create(ctx, r)
}

func (s *reviewService) List(ctx context.Context, companyId string, offset, limit int) ([]domain.Review, int64, error) {
	var (
		eg      errgroup.Group
		reviews []domain.Review
		total   int64
	)
	eg.Go(func() error {
		var err error
		reviews, err = s.repo.List(ctx, companyId, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, companyId)
		return err
	})
	return reviews, total, eg.Wait()
}

func (s *reviewService) Stats(ctx context.Context, companyId string) (domain.Stats, error) {
	return s.repo.Stats(ctx, companyId)
}

func (s *reviewService) DeleteByUid(ctx context.Context, uid int64) error {
	err := s.repo.DeleteByUid(ctx, uid)
	if err != nil {
		return fmt.Errorf("删除用户 %d 的评价失败: %w", uid, err)
	}
	return nil
}
