package api

import (
	"encoding/json"
	"net/http"
)

// 文档注释：统一错误体
// 约束：404/400/405/5xx 均返回 {"status":"error","message":...}，客户端可凭状态码与 message 区分错误类型。
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	StatusError = "error"

	MsgParkNotFound     = "Park not found"
	MsgStateNotFound    = "State not found"
	MsgInvalidID        = "Invalid id"
	MsgNotFound         = "Not found"
	MsgMethodNotAllowed = "Method not allowed"
	MsgInternal         = "Internal server error"
)

// WriteJSON：以 JSON 写出响应体
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("content-type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError：写出统一错误体
func WriteError(w http.ResponseWriter, status int, msg string) {
	WriteJSON(w, status, Response{Status: StatusError, Message: msg})
}
