package web

import (
	"github.com/ecodeclub/careerhub/internal/application/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	applicationNotFoundResult = ginx.Result{
		Code: errs.ApplicationNotFound.Code,
		Msg:  errs.ApplicationNotFound.Msg,
	}
	jobNotFoundResult = ginx.Result{
		Code: errs.JobNotFound.Code,
		Msg:  errs.JobNotFound.Msg,
	}
	duplicateApplicationResult = ginx.Result{
		Code: errs.DuplicateApplication.Code,
		Msg:  errs.DuplicateApplication.Msg,
	}
	illegalTransitionResult = ginx.Result{
		Code: errs.IllegalTransition.Code,
		Msg:  errs.IllegalTransition.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: 401001,
		Msg:  "Unauthorized",
	}
)
