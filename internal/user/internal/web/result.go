package web

import (
	"github.com/ecodeclub/careerhub/internal/user/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: 401001,
		Msg:  "Unauthorized",
	}
)
