package errs

var (
	SystemError     = ErrorCode{Code: 502001, Msg: "Internal server error"}
	InvalidInput    = ErrorCode{Code: 502002, Msg: "Validation failed"}
	CompanyNotFound = ErrorCode{Code: 502003, Msg: "Company not found"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
