package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type CompanyDAO interface {
	Save(ctx context.Context, c Company) (string, error)
	FindById(ctx context.Context, id string) (Company, error)
	FindByIds(ctx context.Context, ids []string) ([]Company, error)
	List(ctx context.Context, offset int, limit int) ([]Company, error)
	Count(ctx context.Context) (int64, error)
	DeleteById(ctx context.Context, id string) error
}

type GORMCompanyDAO struct {
	db *egorm.Component
}

func NewGORMCompanyDAO(db *egorm.Component) CompanyDAO {
	return &GORMCompanyDAO{
		db: db,
	}
}

func (c *GORMCompanyDAO) Save(ctx context.Context, company Company) (string, error) {
	now := time.Now().UnixMilli()
	company.Utime = now
	company.Ctime = now
	err := c.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "description", "website", "utime"}),
	}).Create(&company).Error
	return company.Id, err
}

func (c *GORMCompanyDAO) FindById(ctx context.Context, id string) (Company, error) {
	var company Company
	err := c.db.WithContext(ctx).Where("id = ?", id).First(&company).Error
	return company, err
}

func (c *GORMCompanyDAO) FindByIds(ctx context.Context, ids []string) ([]Company, error) {
	var companies []Company
	if len(ids) == 0 {
		return companies, nil
	}
	err := c.db.WithContext(ctx).Where("id IN ?", ids).Find(&companies).Error
	return companies, err
}

func (c *GORMCompanyDAO) List(ctx context.Context, offset int, limit int) ([]Company, error) {
	var companies []Company
	err := c.db.WithContext(ctx).Offset(offset).Limit(limit).
		Order("utime DESC").Order("id ASC").Find(&companies).Error
	return companies, err
}

func (c *GORMCompanyDAO) Count(ctx context.Context) (int64, error) {
	var count int64
	err := c.db.WithContext(ctx).Model(&Company{}).Count(&count).Error
	return count, err
}

func (c *GORMCompanyDAO) DeleteById(ctx context.Context, id string) error {
	return c.db.WithContext(ctx).Where("id = ?", id).Delete(&Company{}).Error
}

type Company struct {
	// 外部分配的 key，例如 c1
	Id          string `gorm:"primaryKey;type:varchar(64)"`
	Name        string `gorm:"type:varchar(256);not null"`
	Description string `gorm:"type:text"`
	Website     string `gorm:"type:varchar(512)"`
	Ctime       int64
	Utime       int64
}
