package errs

var (
	SystemError       = ErrorCode{Code: 501001, Msg: "Internal server error"}
	InvalidInput      = ErrorCode{Code: 501002, Msg: "Validation failed"}
	UserNotFound      = ErrorCode{Code: 501003, Msg: "User not found"}
	EmailTaken        = ErrorCode{Code: 501004, Msg: "Email is already in use"}
	InvalidCredential = ErrorCode{Code: 501005, Msg: "Invalid email or password"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
