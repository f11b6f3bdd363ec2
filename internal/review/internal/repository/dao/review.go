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

var ErrDuplicateReview = errors.New("用户已经评价过这家公司")

type ReviewDAO interface {
	// Insert 同一个用户对同一家公司重复评价的时候返回 ErrDuplicateReview
	Insert(ctx context.Context, r Review) (Review, error)
	// List 按照创建时间倒序
	List(ctx context.Context, companyId string, offset, limit int) ([]Review, error)
	Count(ctx context.Context, companyId string) (int64, error)
	Stats(ctx context.Context, companyId string) (Stats, error)
	// DeleteByUid 返回被删除的评价涉及到的公司
	DeleteByUid(ctx context.Context, uid int64) ([]string, error)
}

type GORMReviewDAO struct {
	db *egorm.Component
}

func NewGORMReviewDAO(db *egorm.Component) ReviewDAO {
	return &GORMReviewDAO{db: db}
}

func (d *GORMReviewDAO) Insert(ctx context.Context, r Review) (Review, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := d.db.WithContext(ctx).Create(&r).Error
	if database.IsDuplicateKey(err) {
		return Review{}, ErrDuplicateReview
	}
	return r, err
}

func (d *GORMReviewDAO) List(ctx context.Context, companyId string, offset, limit int) ([]Review, error) {
	var res []Review
	err := d.db.WithContext(ctx).
		Where("company_id = ?", companyId).
		Order("ctime DESC").Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

func (d *GORMReviewDAO) Count(ctx context.Context, companyId string) (int64, error) {
	var cnt int64
	err := d.db.WithContext(ctx).Model(&Review{}).
		Where("company_id = ?", companyId).
		Count(&cnt).Error
	return cnt, err
}

func (d *GORMReviewDAO) Stats(ctx context.Context, companyId string) (Stats, error) {
	var res Stats
	err := d.db.WithContext(ctx).Model(&Review{}).
		Select("COUNT(*) AS total, "+
			"COALESCE(AVG(rating), 0) AS rating, "+
			"COALESCE(AVG(work_environment), 0) AS work_environment, "+
			"COALESCE(AVG(compensation), 0) AS compensation, "+
			"COALESCE(AVG(career_growth), 0) AS career_growth").
		Where("company_id = ?", companyId).
		Scan(&res).Error
	return res, err
}

func (d *GORMReviewDAO) DeleteByUid(ctx context.Context, uid int64) ([]string, error) {
	var companyIds []string
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Review{}).Where("uid = ?", uid).
			Distinct().Pluck("company_id", &companyIds).Error
		if err != nil {
			return err
		}
		return tx.Where("uid = ?", uid).Delete(&Review{}).Error
	})
	return companyIds, err
}

type Review struct {
	Id  int64 `gorm:"primaryKey;autoIncrement:false"`
	Uid int64 `gorm:"not null;uniqueIndex:uniq_uid_company"`
	// 列表按照公司查，按照时间排
	CompanyId       string                    `gorm:"type:varchar(64);not null;uniqueIndex:uniq_uid_company;index:idx_company_ctime,priority:1"`
	Rating          uint8                     `gorm:"type:tinyint(3);not null"`
	WorkEnvironment uint8                     `gorm:"type:tinyint(3);not null"`
	Compensation    uint8                     `gorm:"type:tinyint(3);not null"`
	CareerGrowth    uint8                     `gorm:"type:tinyint(3);not null"`
	Title           string                    `gorm:"type:varchar(256);not null"`
	Content         string                    `gorm:"type:text;not null"`
	Pros            sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Cons            sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Position        string                    `gorm:"type:varchar(128)"`
	WorkType        string                    `gorm:"type:varchar(32)"`
	Verified        bool
	Ctime           int64 `gorm:"index:idx_company_ctime,priority:2"`
	Utime           int64
}

type Stats struct {
	Total           int64
	Rating          float64
	WorkEnvironment float64
	Compensation    float64
	CareerGrowth    float64
}
