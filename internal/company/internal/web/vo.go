package web

type SaveCompanyReq struct {
	ID          string `json:"id" validate:"required,max=64"`
	Name        string `json:"name" validate:"required,max=256"`
	Description string `json:"description" validate:"max=5000"`
	Website     string `json:"website" validate:"omitempty,url,max=512"`
}

type CompanyVO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Website     string `json:"website"`
	Ctime       int64  `json:"ctime"`
	Utime       int64  `json:"utime"`
}

type IdReq struct {
	Id string `json:"id"`
}

type ListCompanyResp struct {
	List  []CompanyVO `json:"list"`
	Total int64       `json:"total"`
}
