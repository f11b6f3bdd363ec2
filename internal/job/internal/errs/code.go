package errs

var (
	SystemError     = ErrorCode{Code: 503001, Msg: "Internal server error"}
	InvalidInput    = ErrorCode{Code: 503002, Msg: "Validation failed"}
	JobNotFound     = ErrorCode{Code: 503003, Msg: "Job not found"}
	CompanyNotFound = ErrorCode{Code: 503004, Msg: "Company not found"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
