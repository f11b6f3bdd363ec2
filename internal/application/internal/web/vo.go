package web

import (
	"time"

	"github.com/ecodeclub/careerhub/internal/application/internal/domain"
)

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

type ApplyReq struct {
	JobID string `json:"jobId" validate:"required,max=64"`
	Notes string `json:"notes" validate:"max=2000"`
}

// ListReq 来自查询参数
type ListReq struct {
	Status string `json:"status" validate:"omitempty,oneof=all applied interviewing rejected accepted withdrawn"`
	Search string `json:"search" validate:"max=100"`
	Sort   string `json:"sort" validate:"omitempty,oneof=lastUpdated appliedDate"`
}

type UpdateStatusReq struct {
	Status string `json:"status" validate:"required,oneof=applied interviewing rejected accepted withdrawn"`
}

type UpdateNotesReq struct {
	Notes string `json:"notes" validate:"max=2000"`
}

// UpdateInterviewReq interviewDate 传 null 代表取消面试
type UpdateInterviewReq struct {
	InterviewDate *time.Time `json:"interviewDate"`
}

type UpdateOfferReq struct {
	Salary    int64      `json:"salary" validate:"gte=0"`
	StartDate *time.Time `json:"startDate"`
	Notes     string     `json:"notes" validate:"max=2000"`
}

type ApplicationVO struct {
	ID            int64    `json:"id,string"`
	JobID         string   `json:"jobId"`
	Job           JobVO    `json:"job"`
	Status        string   `json:"status"`
	AppliedDate   string   `json:"appliedDate"`
	LastUpdated   string   `json:"lastUpdated"`
	Notes         string   `json:"notes,omitempty"`
	InterviewDate string   `json:"interviewDate,omitempty"`
	OfferDetails  *OfferVO `json:"offerDetails,omitempty"`
}

type JobVO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	CompanyID   string `json:"companyId"`
	CompanyName string `json:"companyName"`
}

type OfferVO struct {
	Salary    int64  `json:"salary,omitempty"`
	StartDate string `json:"startDate,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type ListApplicationResp struct {
	Applications []ApplicationVO `json:"applications"`
	// key 是状态，all 是总数
	Counts map[string]int64 `json:"counts"`
}

func newApplicationVO(a domain.Application) ApplicationVO {
	vo := ApplicationVO{
		ID:    a.ID,
		JobID: a.JobID,
		Job: JobVO{
			ID:          a.Job.ID,
			Title:       a.Job.Title,
			Location:    a.Job.Location,
			Type:        a.Job.Type,
			CompanyID:   a.Job.CompanyID,
			CompanyName: a.Job.CompanyName,
		},
		Status:        string(a.Status),
		AppliedDate:   formatTime(a.AppliedDate),
		LastUpdated:   formatTime(a.LastUpdated),
		Notes:         a.Notes,
		InterviewDate: formatTime(a.InterviewDate),
	}
	if !a.Offer.IsZero() {
		vo.OfferDetails = &OfferVO{
			Salary:    a.Offer.Salary,
			StartDate: formatTime(a.Offer.StartDate),
			Notes:     a.Offer.Notes,
		}
	}
	return vo
}

// formatTime 0 代表没有设置
func formatTime(ms int64) string {
	if ms == 0 {
		return ""
	}
	return time.UnixMilli(ms).UTC().Format(timeLayout)
}

func toMilli(t *time.Time) int64 {
	if t == nil {
		return 0
	}
	return t.UnixMilli()
}
