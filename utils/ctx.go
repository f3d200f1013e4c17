package utils

import "context"

type CtxKey string

const (
	CtxKeySurfaceLog CtxKey = "surface_log"
	CtxKeyRequestID  CtxKey = "request_id"
)

// InjectSurfaceLogKey 将 surface 的名字注入到 context 中，日志会写到该 surface 独立的文件
func InjectSurfaceLogKey(ctx context.Context, logKey string) context.Context {
	return context.WithValue(ctx, CtxKeySurfaceLog, logKey)
}

// InjectRequestID 将一次推荐请求的 id 注入到 context 中
func InjectRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, CtxKeyRequestID, id)
}

// ExtractSurfaceLogKey 从 context 中获取 surface 的名字
func ExtractSurfaceLogKey(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(CtxKeySurfaceLog).(string)
	return key, ok
}

// ExtractRequestID 从 context 中获取请求 id
func ExtractRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyRequestID).(string)
	return id, ok
}
