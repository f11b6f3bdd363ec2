package httpx

import (
	"encoding/json"
	"errors"
	"reflect"
	"time"

	"github.com/ecodeclub/careerhub/internal/pkg/validation"
	"github.com/ecodeclub/ginx"
	"github.com/gin-gonic/gin"
)

// B 和 ginx.B 一样绑定 JSON 请求体，但是绑定失败的时候按照字段返回 400，
// code 是各个模块自己的 InvalidInput
func B[Req any](code int, fn func(ctx *ginx.Context, req Req) (ginx.Result, error)) gin.HandlerFunc {
	return ginx.W(func(ctx *ginx.Context) (ginx.Result, error) {
		var req Req
		if err := ctx.Context.ShouldBindJSON(&req); err != nil {
			return Invalid(ctx, code, bindErrors(err))
		}
		return fn(ctx, req)
	})
}

func bindErrors(err error) validation.Errors {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.Errors{{Field: typeErr.Field, Message: typeMessage(typeErr.Type)}}
	}
	var timeErr *time.ParseError
	if errors.As(err, &timeErr) {
		return validation.Errors{{Field: "body", Message: "contains an invalid date"}}
	}
	return validation.Errors{{Field: "body", Message: "must be valid JSON"}}
}

func typeMessage(typ reflect.Type) string {
	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "must be an integer"
	case reflect.Float32, reflect.Float64:
		return "must be a number"
	case reflect.String:
		return "must be a string"
	case reflect.Bool:
		return "must be a boolean"
	case reflect.Slice, reflect.Array:
		return "must be an array"
	default:
		return "must be an object"
	}
}

