package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ecodeclub/careerhub/internal/pkg/database"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var (
	ErrDataNotFound  = gorm.ErrRecordNotFound
	ErrUserDuplicate = errors.New("邮箱已经被使用")
)

type UserDAO interface {
	Insert(ctx context.Context, u User) (int64, error)
	FindById(ctx context.Context, id int64) (User, error)
	FindByIds(ctx context.Context, ids []int64) ([]User, error)
	FindByEmail(ctx context.Context, email string) (User, error)
	// UpdateProfile 邮箱被别人占用的时候返回 ErrUserDuplicate
	UpdateProfile(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id int64, password string) error
	UpdateNotifications(ctx context.Context, id int64, n NotificationSettings) error
	UpdatePrivacy(ctx context.Context, id int64, p PrivacySettings) error
	DeleteById(ctx context.Context, id int64) error
}

type GORMUserDAO struct {
	db *egorm.Component
}

func NewGORMUserDAO(db *egorm.Component) UserDAO {
	return &GORMUserDAO{
		db: db,
	}
}

func (ud *GORMUserDAO) Insert(ctx context.Context, u User) (int64, error) {
	now := time.Now().UnixMilli()
	u.Ctime = now
	u.Utime = now
	err := ud.db.WithContext(ctx).Create(&u).Error
	if database.IsDuplicateKey(err) {
		return 0, ErrUserDuplicate
	}
	return u.Id, err
}

func (ud *GORMUserDAO) FindById(ctx context.Context, id int64) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "id = ?", id).Error
	return u, err
}

func (ud *GORMUserDAO) FindByIds(ctx context.Context, ids []int64) ([]User, error) {
	var us []User
	if len(ids) == 0 {
		return us, nil
	}
	err := ud.db.WithContext(ctx).Find(&us, "id IN ?", ids).Error
	return us, err
}

func (ud *GORMUserDAO) FindByEmail(ctx context.Context, email string) (User, error) {
	var u User
	err := ud.db.WithContext(ctx).First(&u, "email = ?", email).Error
	return u, err
}

func (ud *GORMUserDAO) UpdateProfile(ctx context.Context, u User) error {
	err := ud.update(ctx, u.Id, map[string]any{
		"full_name": u.FullName,
		"email":     u.Email,
		"skills":    u.Skills,
		"interests": u.Interests,
	})
	if database.IsDuplicateKey(err) {
		return ErrUserDuplicate
	}
	return err
}

func (ud *GORMUserDAO) UpdatePassword(ctx context.Context, id int64, password string) error {
	return ud.update(ctx, id, map[string]any{"password": password})
}

func (ud *GORMUserDAO) UpdateNotifications(ctx context.Context, id int64, n NotificationSettings) error {
	return ud.update(ctx, id, map[string]any{
		"notifications": sqlx.JsonColumn[NotificationSettings]{Val: n, Valid: true},
	})
}

func (ud *GORMUserDAO) UpdatePrivacy(ctx context.Context, id int64, p PrivacySettings) error {
	return ud.update(ctx, id, map[string]any{
		"privacy": sqlx.JsonColumn[PrivacySettings]{Val: p, Valid: true},
	})
}

func (ud *GORMUserDAO) update(ctx context.Context, id int64, cols map[string]any) error {
	cols["utime"] = time.Now().UnixMilli()
	return ud.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Updates(cols).Error
}

func (ud *GORMUserDAO) DeleteById(ctx context.Context, id int64) error {
	return ud.db.WithContext(ctx).Where("id = ?", id).Delete(&User{}).Error
}

type User struct {
	Id            int64                                 `gorm:"primaryKey,autoIncrement"`
	Email         string                                `gorm:"type:varchar(256);uniqueIndex"`
	Password      string                                `gorm:"type:varchar(256)"`
	FullName      string                                `gorm:"type:varchar(256)"`
	Skills        string                                `gorm:"type:varchar(1024)"`
	Interests     string                                `gorm:"type:varchar(1024)"`
	Notifications sqlx.JsonColumn[NotificationSettings] `gorm:"type:json"`
	Privacy       sqlx.JsonColumn[PrivacySettings]      `gorm:"type:json"`
	// 创建时间
	Ctime int64
	// 更新时间
	Utime int64
}

type NotificationSettings struct {
	EmailNotifications bool `json:"emailNotifications"`
	JobAlerts          bool `json:"jobAlerts"`
	ApplicationUpdates bool `json:"applicationUpdates"`
	Newsletter         bool `json:"newsletter"`
	MarketingEmails    bool `json:"marketingEmails"`
}

type PrivacySettings struct {
	ProfileVisibility string `json:"profileVisibility"`
	ShowEmail         bool   `json:"showEmail"`
	ShowResume        bool   `json:"showResume"`
	DataSharing       bool   `json:"dataSharing"`
}
