// 包 middleware：入口中间件（请求 ID、panic 恢复、通用响应头）
package middleware

import (
	"context"
	"net/http"

	"parks-api/internal/api"
	"parks-api/internal/logger"

	"github.com/google/uuid"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// HeaderRequestID：请求/响应中携带请求 ID 的头部
const HeaderRequestID = "X-Request-ID"

// RequestID：沿用调用方提供的 X-Request-ID，否则生成 UUID；写入响应头与上下文
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set(HeaderRequestID, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID：从上下文读取请求 ID
func GetRequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}

// Recovery：处理器 panic 时返回 500 与统一错误体，不让连接被直接断开
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				logger.L().Error("handler_panic",
					"panic", v,
					"path", r.URL.Path,
					"request_id", GetRequestID(r.Context()),
				)
				api.WriteError(w, http.StatusInternalServerError, api.MsgInternal)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// NoStore：目录数据为进程内只读快照，不希望中间代理长期缓存
func NoStore(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("cache-control", "no-store")
		next.ServeHTTP(w, r)
	})
}

// Chain：按书写顺序由外到内组合中间件
func Chain(h http.Handler, mws ...func(http.Handler) http.Handler) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

// Wrap：主入口使用的默认中间件栈；访问日志挂在最内侧以便读到请求 ID
func Wrap(next http.Handler) http.Handler {
	return Chain(next,
		RequestID,
		Recovery,
		NoStore,
		logger.AccessMiddleware(logger.L()),
	)
}
