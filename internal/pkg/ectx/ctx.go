package ectx

import "context"

type ctxKeyType string

var (
	uidCtxKey       ctxKeyType = "uid"
	requestIDCtxKey ctxKeyType = "request_id"
)

// CtxWithUid 登录校验通过之后，把 uid 放进 request 的 context 里面
func CtxWithUid(ctx context.Context, uid int64) context.Context {
	return context.WithValue(ctx, uidCtxKey, uid)
}

// UidFromCtx 没有登录的时候返回 false
func UidFromCtx(ctx context.Context) (int64, bool) {
	val, ok := ctx.Value(uidCtxKey).(int64)
	return val, ok && val > 0
}

func CtxWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDCtxKey, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	val, _ := ctx.Value(requestIDCtxKey).(string)
	return val
}
