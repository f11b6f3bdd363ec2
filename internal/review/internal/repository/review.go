package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/careerhub/internal/review/internal/domain"
	"github.com/ecodeclub/careerhub/internal/review/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/review/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

var ErrDuplicateReview = dao.ErrDuplicateReview

// 第二次删除缓存的延迟，要大于一次 Stats 查库加回写的耗时
const defaultEvictDelay = time.Second

type ReviewRepository interface {
	Create(ctx context.Context, r domain.Review) (domain.Review, error)
	List(ctx context.Context, companyId string, offset, limit int) ([]domain.Review, error)
	Count(ctx context.Context, companyId string) (int64, error)
	Stats(ctx context.Context, companyId string) (domain.Stats, error)
	DeleteByUid(ctx context.Context, uid int64) error
}

type reviewRepository struct {
	dao        dao.ReviewDAO
	cache      cache.StatsCache
	evictDelay time.Duration
	logger     *elog.Component
}

func NewReviewRepository(d dao.ReviewDAO, c cache.StatsCache) ReviewRepository {
	return &reviewRepository{
		dao:        d,
		cache:      c,
		evictDelay: defaultEvictDelay,
		logger:     elog.DefaultLogger,
	}
}

func (r *reviewRepository) Create(ctx context.Context, re domain.Review) (domain.Review, error) {
	entity, err := r.dao.Insert(ctx, r.toEntity(re))
	if err != nil {
		return domain.Review{}, err
	}
	r.doubleEvict(ctx, []string{entity.CompanyId})
	return r.toDomain(entity), nil
}

func (r *reviewRepository) List(ctx context.Context, companyId string, offset, limit int) ([]domain.Review, error) {
	entities, err := r.dao.List(ctx, companyId, offset, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Review) domain.Review {
		return r.toDomain(src)
	}), nil
}

func (r *reviewRepository) Count(ctx context.Context, companyId string) (int64, error) {
	return r.dao.Count(ctx, companyId)
}

// Stats 缓存没有命中或者缓存出错都查库
func (r *reviewRepository) Stats(ctx context.Context, companyId string) (domain.Stats, error) {
	stats, err := r.cache.Get(ctx, companyId)
	if err == nil {
		return stats, nil
	}
	entity, err := r.dao.Stats(ctx, companyId)
	if err != nil {
		return domain.Stats{}, err
	}
	stats = domain.Stats{
		CompanyID:       companyId,
		Total:           entity.Total,
		Rating:          entity.Rating,
		WorkEnvironment: entity.WorkEnvironment,
		Compensation:    entity.Compensation,
		CareerGrowth:    entity.CareerGrowth,
	}
	if err = r.cache.Set(ctx, stats); err != nil {
		r.logger.Error("回写评价统计缓存失败",
			elog.String("companyId", companyId),
			elog.FieldErr(err))
	}
	return stats, nil
}

func (r *reviewRepository) DeleteByUid(ctx context.Context, uid int64) error {
	companyIds, err := r.dao.DeleteByUid(ctx, uid)
	if err != nil {
		return err
	}
	r.doubleEvict(ctx, companyIds)
	return nil
}

// doubleEvict 延迟双删。删除缓存和提交之间并发的 Stats 可能把旧的统计写回去，
// 过 evictDelay 之后再删一次
func (r *reviewRepository) doubleEvict(ctx context.Context, companyIds []string) {
	if len(companyIds) == 0 {
		return
	}
	r.evict(ctx, companyIds)
	time.AfterFunc(r.evictDelay, func() {
		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), time.Second)
		defer cancel()
		r.evict(ctx, companyIds)
	})
}

func (r *reviewRepository) evict(ctx context.Context, companyIds []string) {
	if err := r.cache.Delete(ctx, companyIds); err != nil {
		r.logger.Error("删除评价统计缓存失败",
			elog.Any("companyIds", companyIds),
			elog.FieldErr(err))
	}
}

func (r *reviewRepository) toEntity(re domain.Review) dao.Review {
	return dao.Review{
		Id:              re.ID,
		Uid:             re.Uid,
		CompanyId:       re.CompanyID,
		Rating:          uint8(re.Rating),
		WorkEnvironment: uint8(re.WorkEnvironment),
		Compensation:    uint8(re.Compensation),
		CareerGrowth:    uint8(re.CareerGrowth),
		Title:           re.Title,
		Content:         re.Content,
		Pros:            sqlx.JsonColumn[[]string]{Val: re.Pros, Valid: true},
		Cons:            sqlx.JsonColumn[[]string]{Val: re.Cons, Valid: true},
		Position:        re.Position,
		WorkType:        string(re.WorkType),
		Verified:        re.Verified,
	}
}

func (r *reviewRepository) toDomain(re dao.Review) domain.Review {
	return domain.Review{
		ID:              re.Id,
		Uid:             re.Uid,
		CompanyID:       re.CompanyId,
		Rating:          int(re.Rating),
		WorkEnvironment: int(re.WorkEnvironment),
		Compensation:    int(re.Compensation),
		CareerGrowth:    int(re.CareerGrowth),
		Title:           re.Title,
		Content:         re.Content,
		Pros:            re.Pros.Val,
		Cons:            re.Cons.Val,
		Position:        re.Position,
		WorkType:        domain.WorkType(re.WorkType),
		Verified:        re.Verified,
		Ctime:           re.Ctime,
		Utime:           re.Utime,
	}
}
