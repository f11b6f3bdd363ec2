package errs

var (
	SystemError     = ErrorCode{Code: 504001, Msg: "Internal server error"}
	InvalidInput    = ErrorCode{Code: 504002, Msg: "Validation failed"}
	CompanyNotFound = ErrorCode{Code: 504003, Msg: "Company not found"}
	DuplicateReview = ErrorCode{Code: 504004, Msg: "You have already reviewed this company"}
	CompanyRequired = ErrorCode{Code: 504005, Msg: "Company ID is required"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
