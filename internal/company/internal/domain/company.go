package domain

type Company struct {
	ID          string
	Name        string
	Description string
	Website     string
	Ctime       int64
	Utime       int64
}
