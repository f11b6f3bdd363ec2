package domain

type WorkType string

const (
	WorkTypeFullTime   WorkType = "full-time"
	WorkTypePartTime   WorkType = "part-time"
	WorkTypeInternship WorkType = "internship"
	WorkTypeContract   WorkType = "contract"
)

// Review 一个用户对一家公司只能有一条评价
type Review struct {
	ID        int64
	Uid       int64
	CompanyID string
	// 1-5 分
	Rating          int
	WorkEnvironment int
	Compensation    int
	CareerGrowth    int
	Title           string
	Content         string
	Pros            []string
	Cons            []string
	Position        string
	WorkType        WorkType
	// 是否在这家公司工作过
	Verified bool
	Ctime    int64
	Utime    int64
}

// Stats 公司的评价汇总，平均分没有评价的时候是 0
type Stats struct {
	CompanyID       string
	Total           int64
	Rating          float64
	WorkEnvironment float64
	Compensation    float64
	CareerGrowth    float64
}
