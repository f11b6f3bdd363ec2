package web

import (
	"github.com/ecodeclub/careerhub/internal/company/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.CompanyNotFound.Code,
		Msg:  errs.CompanyNotFound.Msg,
	}
)

const (
	defaultLimit = 10
	maxLimit     = 100
)
