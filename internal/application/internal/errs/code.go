package errs

var (
	SystemError          = ErrorCode{Code: 505001, Msg: "Internal server error"}
	InvalidInput         = ErrorCode{Code: 505002, Msg: "Validation failed"}
	ApplicationNotFound  = ErrorCode{Code: 505003, Msg: "Application not found"}
	JobNotFound          = ErrorCode{Code: 505004, Msg: "Job not found"}
	DuplicateApplication = ErrorCode{Code: 505005, Msg: "You have already applied to this job"}
	IllegalTransition    = ErrorCode{Code: 505006, Msg: "Status change is not allowed"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
