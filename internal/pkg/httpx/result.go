package httpx

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/ginx"
)

// Respond 用来返回非 200 的业务响应，比如 201、404、409
// ginx 拿到 ErrNoResponse 之后不会再写响应
func Respond(ctx *ginx.Context, status int, res ginx.Result) (ginx.Result, error) {
	ctx.JSON(status, res)
	return ginx.Result{}, ginx.ErrNoResponse
}

// Invalid 把校验错误按字段返回，返回 400
func Invalid(ctx *ginx.Context, code int, err error) (ginx.Result, error) {
	res := ginx.Result{Code: code, Msg: "Validation failed"}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		res.Data = fieldErrs
	}
	return Respond(ctx, http.StatusBadRequest, res)
}

// IntQuery 取不到或者解析失败的时候用默认值
func IntQuery(ctx *ginx.Context, key string, defaultVal int) int {
	val, err := strconv.Atoi(ctx.Context.Query(key))
	if err != nil {
		return defaultVal
	}
	return val
}
