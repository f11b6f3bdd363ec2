package repository

import (
	"context"

	"github.com/ecodeclub/careerhub/internal/user/internal/domain"
	"github.com/ecodeclub/careerhub/internal/user/internal/repository/cache"
	"github.com/ecodeclub/careerhub/internal/user/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
)

type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	// FindByIdWithPassword 不走缓存，修改密码的时候用
	FindByIdWithPassword(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	UpdateProfile(ctx context.Context, u domain.User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdateNotifications(ctx context.Context, id int64, n domain.NotificationSettings) error
	UpdatePrivacy(ctx context.Context, id int64, p domain.PrivacySettings) error
	Delete(ctx context.Context, id int64) error
}

// CachedUserRepository 使用了缓存的 repository 实现
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO, c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	// 忽略掉这里的错误
	_ = ur.cache.Set(ctx, u)
	return u, nil
}

func (ur *CachedUserRepository) FindByIdWithPassword(ctx context.Context, id int64) (domain.User, error) {
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	return ur.entityToDomain(ue), nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	ue, err := ur.dao.FindByEmail(ctx, email)
	if err != nil {
		return domain.User{}, err
	}
	return ur.entityToDomain(ue), nil
}

func (ur *CachedUserRepository) UpdateProfile(ctx context.Context, u domain.User) error {
	err := ur.dao.UpdateProfile(ctx, ur.domainToEntity(u))
	if err != nil {
		return err
	}
	ur.evict(ctx, u.Id)
	return nil
}

func (ur *CachedUserRepository) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ur.dao.UpdatePassword(ctx, id, password)
}

func (ur *CachedUserRepository) UpdateNotifications(ctx context.Context, id int64, n domain.NotificationSettings) error {
	err := ur.dao.UpdateNotifications(ctx, id, dao.NotificationSettings(n))
	if err != nil {
		return err
	}
	ur.evict(ctx, id)
	return nil
}

func (ur *CachedUserRepository) UpdatePrivacy(ctx context.Context, id int64, p domain.PrivacySettings) error {
	err := ur.dao.UpdatePrivacy(ctx, id, ur.privacyToEntity(p))
	if err != nil {
		return err
	}
	ur.evict(ctx, id)
	return nil
}

func (ur *CachedUserRepository) Delete(ctx context.Context, id int64) error {
	err := ur.dao.DeleteById(ctx, id)
	if err != nil {
		return err
	}
	ur.evict(ctx, id)
	return nil
}

// evict 数据库已经更新成功，缓存删除失败只记录日志，等过期
func (ur *CachedUserRepository) evict(ctx context.Context, id int64) {
	if err := ur.cache.Delete(ctx, id); err != nil {
		ur.logger.Error("删除用户缓存失败", elog.Int64("uid", id), elog.FieldErr(err))
	}
}

func (ur *CachedUserRepository) privacyToEntity(p domain.PrivacySettings) dao.PrivacySettings {
	return dao.PrivacySettings{
		ProfileVisibility: string(p.ProfileVisibility),
		ShowEmail:         p.ShowEmail,
		ShowResume:        p.ShowResume,
		DataSharing:       p.DataSharing,
	}
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:        u.Id,
		Email:     u.Email,
		Password:  u.Password,
		FullName:  u.FullName,
		Skills:    u.Skills,
		Interests: u.Interests,
		Notifications: sqlx.JsonColumn[dao.NotificationSettings]{
			Val:   dao.NotificationSettings(u.Notification),
			Valid: true,
		},
		Privacy: sqlx.JsonColumn[dao.PrivacySettings]{
			Val:   ur.privacyToEntity(u.Privacy),
			Valid: true,
		},
		Ctime: u.Ctime,
		Utime: u.Utime,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	u := domain.User{
		Id:           ue.Id,
		Email:        ue.Email,
		Password:     ue.Password,
		FullName:     ue.FullName,
		Skills:       ue.Skills,
		Interests:    ue.Interests,
		Notification: domain.DefaultNotificationSettings(),
		Privacy:      domain.DefaultPrivacySettings(),
		Ctime:        ue.Ctime,
		Utime:        ue.Utime,
	}
	if ue.Notifications.Valid {
		u.Notification = domain.NotificationSettings(ue.Notifications.Val)
	}
	if ue.Privacy.Valid {
		p := ue.Privacy.Val
		u.Privacy = domain.PrivacySettings{
			ProfileVisibility: domain.ProfileVisibility(p.ProfileVisibility),
			ShowEmail:         p.ShowEmail,
			ShowResume:        p.ShowResume,
			DataSharing:       p.DataSharing,
		}
	}
	return u
}
