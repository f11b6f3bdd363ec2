package web

import (
	"github.com/ecodeclub/careerhub/internal/review/internal/errs"
	"github.com/ecodeclub/ginx"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	companyNotFoundResult = ginx.Result{
		Code: errs.CompanyNotFound.Code,
		Msg:  errs.CompanyNotFound.Msg,
	}
	duplicateReviewResult = ginx.Result{
		Code: errs.DuplicateReview.Code,
		Msg:  errs.DuplicateReview.Msg,
	}
	companyRequiredResult = ginx.Result{
		Code: errs.CompanyRequired.Code,
		Msg:  errs.CompanyRequired.Msg,
	}
	unauthorizedResult = ginx.Result{
		Code: 401001,
		Msg:  "Unauthorized",
	}
)
