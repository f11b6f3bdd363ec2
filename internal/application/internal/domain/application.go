package domain

type Status string

const (
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusRejected     Status = "rejected"
	StatusAccepted     Status = "accepted"
	StatusWithdrawn    Status = "withdrawn"
)

// Statuses 固定顺序，用于统计每个状态下的数量
var Statuses = []Status{
	StatusApplied,
	StatusInterviewing,
	StatusRejected,
	StatusAccepted,
	StatusWithdrawn,
}

// 允许的状态流转，withdrawn 是终态
var transitions = map[Status][]Status{
	StatusApplied:      {StatusInterviewing, StatusAccepted, StatusRejected, StatusWithdrawn},
	StatusInterviewing: {StatusAccepted, StatusRejected, StatusWithdrawn},
	StatusAccepted:     {StatusWithdrawn},
	StatusRejected:     {StatusWithdrawn},
}

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusRejected, StatusAccepted, StatusWithdrawn:
		return true
	default:
		return false
	}
}

// CanTransitTo 设置成当前状态也是允许的，只刷新 LastUpdated
func (s Status) CanTransitTo(next Status) bool {
	if s == next {
		return true
	}
	for _, st := range transitions[s] {
		if st == next {
			return true
		}
	}
	return false
}

type Application struct {
	ID     int64
	Uid    int64
	JobID  string
	Status Status
	// 毫秒
	AppliedDate int64
	LastUpdated int64
	Notes       string
	// 0 代表没有安排面试
	InterviewDate int64
	Offer         Offer
	// 查询的时候关联出来的职位信息
	Job Job
}

type Offer struct {
	Salary    int64
	StartDate int64
	Notes     string
}

func (o Offer) IsZero() bool {
	return o == Offer{}
}

type Job struct {
	ID          string
	Title       string
	Location    string
	Type        string
	CompanyID   string
	CompanyName string
}

type SortBy string

const (
	SortByLastUpdated SortBy = "lastUpdated"
	SortByAppliedDate SortBy = "appliedDate"
)

// Query Status 为空代表全部状态，Search 匹配职位名称或者公司名称，不区分大小写
type Query struct {
	Status Status
	Search string
	SortBy SortBy
}
