package web

type Salary struct {
	Min      int64  `json:"min" validate:"gte=0"`
	Max      int64  `json:"max" validate:"gtefield=Min"`
	Currency string `json:"currency" validate:"omitempty,len=3"`
}

type SaveJobReq struct {
	ID          string `json:"id" validate:"required,max=64"`
	CompanyID   string `json:"companyId" validate:"required,max=64"`
	Title       string `json:"title" validate:"required,max=256"`
	Location    string `json:"location" validate:"max=256"`
	Type        string `json:"type" validate:"omitempty,oneof=full-time part-time internship contract"`
	Remote      bool   `json:"remote"`
	Salary      Salary `json:"salary"`
	Description string `json:"description" validate:"max=10000"`
}

type JobVO struct {
	ID          string `json:"id"`
	CompanyID   string `json:"companyId"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Remote      bool   `json:"remote"`
	Salary      Salary `json:"salary"`
	Description string `json:"description"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

type IdReq struct {
	Id string `json:"id"`
}

type ListJobResp struct {
	List  []JobVO `json:"list"`
	Total int64   `json:"total"`
}
