package web

import (
	"math"
	"time"

	"github.com/ecodeclub/careerhub/internal/review/internal/domain"
)

// 和前端约定的时间格式，精确到毫秒的 UTC 时间
const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type CreateReviewReq struct {
	CompanyID       string   `json:"companyId" validate:"required,max=64"`
	Rating          int      `json:"rating" validate:"min=1,max=5"`
	Title           string   `json:"title" validate:"min=5,max=200"`
	Content         string   `json:"content" validate:"min=20,max=2000"`
	WorkEnvironment int      `json:"workEnvironment" validate:"min=1,max=5"`
	Compensation    int      `json:"compensation" validate:"min=1,max=5"`
	CareerGrowth    int      `json:"careerGrowth" validate:"min=1,max=5"`
	Pros            []string `json:"pros" validate:"max=10,dive,min=1,max=200"`
	Cons            []string `json:"cons" validate:"max=10,dive,min=1,max=200"`
	Position        string   `json:"position" validate:"max=100"`
	WorkType        string   `json:"workType" validate:"omitempty,oneof=full-time part-time internship contract"`
	IsVerified      bool     `json:"isVerified"`
}

type CreateReviewResp struct {
	Review ReviewSummary `json:"review"`
}

type ReviewSummary struct {
	// id 超过了 js 能精确表示的范围
	ID        int64  `json:"id,string"`
	Rating    int    `json:"rating"`
	Title     string `json:"title"`
	CreatedAt string `json:"createdAt"`
}

type ReviewVO struct {
	ID              int64    `json:"id,string"`
	CompanyID       string   `json:"companyId"`
	UserID          int64    `json:"userId"`
	UserName        string   `json:"userName"`
	Rating          int      `json:"rating"`
	Title           string   `json:"title"`
	Content         string   `json:"content"`
	Pros            []string `json:"pros"`
	Cons            []string `json:"cons"`
	WorkEnvironment int      `json:"workEnvironment"`
	Compensation    int      `json:"compensation"`
	CareerGrowth    int      `json:"careerGrowth"`
	CreatedAt       string   `json:"createdAt"`
	Helpful         int      `json:"helpful"`
	Position        string   `json:"position,omitempty"`
	WorkType        string   `json:"workType,omitempty"`
	IsVerified      bool     `json:"isVerified"`
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

type ListReviewResp struct {
	Reviews    []ReviewVO `json:"reviews"`
	Pagination Pagination `json:"pagination"`
}

type StatsVO struct {
	CompanyID       string  `json:"companyId"`
	Total           int64   `json:"total"`
	Rating          float64 `json:"rating"`
	WorkEnvironment float64 `json:"workEnvironment"`
	Compensation    float64 `json:"compensation"`
	CareerGrowth    float64 `json:"careerGrowth"`
}

func newStatsVO(s domain.Stats) StatsVO {
	return StatsVO{
		CompanyID:       s.CompanyID,
		Total:           s.Total,
		Rating:          roundOne(s.Rating),
		WorkEnvironment: roundOne(s.WorkEnvironment),
		Compensation:    roundOne(s.Compensation),
		CareerGrowth:    roundOne(s.CareerGrowth),
	}
}

func newReviewVO(r domain.Review, userName string) ReviewVO {
	return ReviewVO{
		ID:              r.ID,
		CompanyID:       r.CompanyID,
		UserID:          r.Uid,
		UserName:        userName,
		Rating:          r.Rating,
		Title:           r.Title,
		Content:         r.Content,
		Pros:            nonNil(r.Pros),
		Cons:            nonNil(r.Cons),
		WorkEnvironment: r.WorkEnvironment,
		Compensation:    r.Compensation,
		CareerGrowth:    r.CareerGrowth,
		CreatedAt:       formatTime(r.Ctime),
		Position:        r.Position,
		WorkType:        string(r.WorkType),
		IsVerified:      r.Verified,
	}
}

func formatTime(ms int64) string {
	return time.UnixMilli(ms).UTC().Format(timeLayout)
}

// 保留一位小数
func roundOne(f float64) float64 {
	return math.Round(f*10) / 10
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
