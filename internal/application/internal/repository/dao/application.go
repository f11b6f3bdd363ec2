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
	ErrRecordNotFound       = gorm.ErrRecordNotFound
	ErrDuplicateApplication = errors.New("用户已经投递过这个职位")
	// ErrStatusChanged 更新的时候状态已经被别的请求改掉了
	ErrStatusChanged = errors.New("投递状态已经变更")
)

type ApplicationDAO interface {
	Insert(ctx context.Context, a Application) (Application, error)
	FindById(ctx context.Context, uid, id int64) (Application, error)
	// List status 为空的时候不过滤，orderBy 是列名，都是倒序
	List(ctx context.Context, uid int64, status string, orderBy string) ([]Application, error)
	CountByStatus(ctx context.Context, uid int64) ([]StatusCount, error)
	// UpdateStatus 只有当前状态还是 from 的时候才会更新
	UpdateStatus(ctx context.Context, uid, id int64, from, to string) error
	// Update 只更新 fields 里面的列，last_updated 会一并刷新
	Update(ctx context.Context, uid, id int64, fields map[string]any) error
	DeleteByUid(ctx context.Context, uid int64) (int64, error)
}

type GORMApplicationDAO struct {
	db *egorm.Component
}

func NewGORMApplicationDAO(db *egorm.Component) ApplicationDAO {
	return &GORMApplicationDAO{db: db}
}

func (d *GORMApplicationDAO) Insert(ctx context.Context, a Application) (Application, error) {
	now := time.Now().UnixMilli()
	a.AppliedDate = now
	a.LastUpdated = now
	a.Ctime = now
	a.Utime = now
	err := d.db.WithContext(ctx).Create(&a).Error
	if database.IsDuplicateKey(err) {
		return Application{}, ErrDuplicateApplication
	}
	return a, err
}

func (d *GORMApplicationDAO) FindById(ctx context.Context, uid, id int64) (Application, error) {
	var a Application
	err := d.db.WithContext(ctx).Where("id = ? AND uid = ?", id, uid).First(&a).Error
	return a, err
}

func (d *GORMApplicationDAO) List(ctx context.Context, uid int64, status string, orderBy string) ([]Application, error) {
	db := d.db.WithContext(ctx).Where("uid = ?", uid)
	if status != "" {
		db = db.Where("status = ?", status)
	}
	var res []Application
	err := db.Order(orderBy + " DESC").Order("id DESC").Find(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) CountByStatus(ctx context.Context, uid int64) ([]StatusCount, error) {
	var res []StatusCount
	err := d.db.WithContext(ctx).Model(&Application{}).
		Select("status, COUNT(*) AS cnt").
		Where("uid = ?", uid).
		Group("status").
		Scan(&res).Error
	return res, err
}

func (d *GORMApplicationDAO) UpdateStatus(ctx context.Context, uid, id int64, from, to string) error {
	now := time.Now().UnixMilli()
	res := d.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND uid = ? AND status = ?", id, uid, from).
		Updates(map[string]any{
			"status":       to,
			"last_updated": now,
			"utime":        now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	// 同一毫秒内重复设置同一个状态，MySQL 会认为没有行被修改
	a, err := d.FindById(ctx, uid, id)
	if err != nil {
		return err
	}
	if a.Status != to {
		return ErrStatusChanged
	}
	return nil
}

func (d *GORMApplicationDAO) Update(ctx context.Context, uid, id int64, fields map[string]any) error {
	now := time.Now().UnixMilli()
	fields["last_updated"] = now
	fields["utime"] = now
	res := d.db.WithContext(ctx).Model(&Application{}).
		Where("id = ? AND uid = ?", id, uid).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	_, err := d.FindById(ctx, uid, id)
	return err
}

func (d *GORMApplicationDAO) DeleteByUid(ctx context.Context, uid int64) (int64, error) {
	res := d.db.WithContext(ctx).Where("uid = ?", uid).Delete(&Application{})
	return res.RowsAffected, res.Error
}

type Application struct {
	Id  int64 `gorm:"primaryKey;autoIncrement:false"`
	Uid int64 `gorm:"not null;uniqueIndex:uniq_uid_job"`
	// 一个用户对一个职位只能投递一次
	JobId         string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_uid_job"`
	Status        string `gorm:"type:varchar(32);not null"`
	AppliedDate   int64
	LastUpdated   int64
	Notes         string `gorm:"type:text"`
	InterviewDate int64
	Offer         sqlx.JsonColumn[Offer] `gorm:"type:json"`
	Ctime         int64
	Utime         int64
}

type Offer struct {
	Salary    int64  `json:"salary"`
	StartDate int64  `json:"startDate"`
	Notes     string `json:"notes"`
}

type StatusCount struct {
	Status string
	Cnt    int64
}
