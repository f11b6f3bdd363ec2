package domain

type WorkType string

const (
	WorkTypeFullTime   WorkType = "full-time"
	WorkTypePartTime   WorkType = "part-time"
	WorkTypeInternship WorkType = "internship"
	WorkTypeContract   WorkType = "contract"
)

type Job struct {
	ID          string
	CompanyID   string
	Title       string
	Location    string
	Type        WorkType
	Remote      bool
	Salary      Salary
	Description string
	Ctime       int64
	Utime       int64
}

type Salary struct {
	Min      int64  `json:"min"`
	Max      int64  `json:"max"`
	Currency string `json:"currency"`
}
