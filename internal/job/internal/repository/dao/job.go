package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type JobDAO interface {
	Save(ctx context.Context, j Job) (string, error)
	FindById(ctx context.Context, id string) (Job, error)
	FindByIds(ctx context.Context, ids []string) ([]Job, error)
	// List companyId 为空的时候不过滤
	List(ctx context.Context, companyId string, offset, limit int) ([]Job, error)
	Count(ctx context.Context, companyId string) (int64, error)
	DeleteById(ctx context.Context, id string) error
}

type GORMJobDAO struct {
	db *egorm.Component
}

func NewGORMJobDAO(db *egorm.Component) JobDAO {
	return &GORMJobDAO{db: db}
}

func (d *GORMJobDAO) Save(ctx context.Context, j Job) (string, error) {
	now := time.Now().UnixMilli()
	j.Ctime = now
	j.Utime = now
	err := d.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"company_id", "title", "location", "type", "remote", "salary", "description", "utime",
		}),
	}).Create(&j).Error
	return j.Id, err
}

func (d *GORMJobDAO) FindById(ctx context.Context, id string) (Job, error) {
	var j Job
	err := d.db.WithContext(ctx).Where("id = ?", id).First(&j).Error
	return j, err
}

func (d *GORMJobDAO) FindByIds(ctx context.Context, ids []string) ([]Job, error) {
	var jobs []Job
	if len(ids) == 0 {
		return jobs, nil
	}
	err := d.db.WithContext(ctx).Where("id IN ?", ids).Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) List(ctx context.Context, companyId string, offset, limit int) ([]Job, error) {
	var jobs []Job
	err := d.filter(ctx, companyId).Offset(offset).Limit(limit).
		Order("utime DESC").Order("id ASC").Find(&jobs).Error
	return jobs, err
}

func (d *GORMJobDAO) Count(ctx context.Context, companyId string) (int64, error) {
	var cnt int64
	err := d.filter(ctx, companyId).Model(&Job{}).Count(&cnt).Error
	return cnt, err
}

func (d *GORMJobDAO) filter(ctx context.Context, companyId string) *gorm.DB {
	db := d.db.WithContext(ctx)
	if companyId != "" {
		db = db.Where("company_id = ?", companyId)
	}
	return db
}

func (d *GORMJobDAO) DeleteById(ctx context.Context, id string) error {
	return d.db.WithContext(ctx).Where("id = ?", id).Delete(&Job{}).Error
}

type Job struct {
	Id          string `gorm:"primaryKey;type:varchar(64)"`
	CompanyId   string `gorm:"type:varchar(64);not null;index"`
	Title       string `gorm:"type:varchar(256);not null"`
	Location    string `gorm:"type:varchar(256)"`
	Type        string `gorm:"type:varchar(32)"`
	Remote      bool
	Salary      sqlx.JsonColumn[Salary] `gorm:"type:json"`
	Description string                  `gorm:"type:text"`
	Ctime       int64
	Utime       int64
}

type Salary struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}
