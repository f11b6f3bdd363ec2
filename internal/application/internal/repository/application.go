package repository

import (
	"context"

	"github.com/ecodeclub/careerhub/internal/application/internal/domain"
	"github.com/ecodeclub/careerhub/internal/application/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
)

var (
	ErrApplicationNotFound  = dao.ErrRecordNotFound
	ErrDuplicateApplication = dao.ErrDuplicateApplication
	ErrStatusChanged        = dao.ErrStatusChanged
)

type ApplicationRepository interface {
	Create(ctx context.Context, a domain.Application) (domain.Application, error)
	FindById(ctx context.Context, uid, id int64) (domain.Application, error)
	List(ctx context.Context, uid int64, status domain.Status, sortBy domain.SortBy) ([]domain.Application, error)
	CountByStatus(ctx context.Context, uid int64) (map[domain.Status]int64, error)
	UpdateStatus(ctx context.Context, uid, id int64, from, to domain.Status) error
	UpdateNotes(ctx context.Context, uid, id int64, notes string) error
	UpdateInterview(ctx context.Context, uid, id int64, interviewDate int64) error
	UpdateOffer(ctx context.Context, uid, id int64, offer domain.Offer) error
	DeleteByUid(ctx context.Context, uid int64) (int64, error)
}

type applicationRepository struct {
	dao dao.ApplicationDAO
}

func NewApplicationRepository(d dao.ApplicationDAO) ApplicationRepository {
	return &applicationRepository{dao: d}
}

func (r *applicationRepository) Create(ctx context.Context, a domain.Application) (domain.Application, error) {
	entity, err := r.dao.Insert(ctx, r.toEntity(a))
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(entity), nil
}

func (r *applicationRepository) FindById(ctx context.Context, uid, id int64) (domain.Application, error) {
	entity, err := r.dao.FindById(ctx, uid, id)
	if err != nil {
		return domain.Application{}, err
	}
	return r.toDomain(entity), nil
}

func (r *applicationRepository) List(ctx context.Context, uid int64,
	status domain.Status, sortBy domain.SortBy) ([]domain.Application, error) {
	orderBy := "last_updated"
	if sortBy == domain.SortByAppliedDate {
		orderBy = "applied_date"
	}
	entities, err := r.dao.List(ctx, uid, string(status), orderBy)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Application) domain.Application {
		return r.toDomain(src)
	}), nil
}

func (r *applicationRepository) CountByStatus(ctx context.Context, uid int64) (map[domain.Status]int64, error) {
	counts, err := r.dao.CountByStatus(ctx, uid)
	if err != nil {
		return nil, err
	}
	res := make(map[domain.Status]int64, len(domain.Statuses))
	for _, st := range domain.Statuses {
		res[st] = 0
	}
	for _, c := range counts {
		res[domain.Status(c.Status)] = c.Cnt
	}
	return res, nil
}

func (r *applicationRepository) UpdateStatus(ctx context.Context, uid, id int64, from, to domain.Status) error {
	return r.dao.UpdateStatus(ctx, uid, id, string(from), string(to))
}

func (r *applicationRepository) UpdateNotes(ctx context.Context, uid, id int64, notes string) error {
	return r.dao.Update(ctx, uid, id, map[string]any{"notes": notes})
}

func (r *applicationRepository) UpdateInterview(ctx context.Context, uid, id int64, interviewDate int64) error {
	return r.dao.Update(ctx, uid, id, map[string]any{"interview_date": interviewDate})
}

func (r *applicationRepository) UpdateOffer(ctx context.Context, uid, id int64, offer domain.Offer) error {
	return r.dao.Update(ctx, uid, id, map[string]any{"offer": r.toOfferColumn(offer)})
}

func (r *applicationRepository) DeleteByUid(ctx context.Context, uid int64) (int64, error) {
	return r.dao.DeleteByUid(ctx, uid)
}

func (r *applicationRepository) toOfferColumn(o domain.Offer) sqlx.JsonColumn[dao.Offer] {
	return sqlx.JsonColumn[dao.Offer]{
		Val: dao.Offer{
			Salary:    o.Salary,
			StartDate: o.StartDate,
			Notes:     o.Notes,
		},
		Valid: !o.IsZero(),
	}
}

func (r *applicationRepository) toEntity(a domain.Application) dao.Application {
	return dao.Application{
		Id:            a.ID,
		Uid:           a.Uid,
		JobId:         a.JobID,
		Status:        string(a.Status),
		AppliedDate:   a.AppliedDate,
		LastUpdated:   a.LastUpdated,
		Notes:         a.Notes,
		InterviewDate: a.InterviewDate,
		Offer:         r.toOfferColumn(a.Offer),
	}
}

func (r *applicationRepository) toDomain(a dao.Application) domain.Application {
	res := domain.Application{
		ID:            a.Id,
		Uid:           a.Uid,
		JobID:         a.JobId,
		Status:        domain.Status(a.Status),
		AppliedDate:   a.AppliedDate,
		LastUpdated:   a.LastUpdated,
		Notes:         a.Notes,
		InterviewDate: a.InterviewDate,
	}
	if a.Offer.Valid {
		res.Offer = domain.Offer{
			Salary:    a.Offer.Val.Salary,
			StartDate: a.Offer.Val.StartDate,
			Notes:     a.Offer.Val.Notes,
		}
	}
	return res
}
