// 包 api：集中注册目录查询路由以解耦主入口，便于挂载文档、指标等附加端点
package api

import (
	"errors"
	"net/http"
	"strconv"

	"parks-api/internal/catalog"
	"parks-api/internal/logger"
	"parks-api/internal/metrics"
	"parks-api/internal/version"
)

// BuildRoutes：构建六个目录路由、/health 与兜底处理
// 背景：路由层只负责路径参数提取与 JSON 编码，原样把解码后的 id/query 交给目录查询，不做额外过滤。
// 约束：返回的 ServeMux 可在主入口继续注册 /metrics、/api-docs 等端点。
func BuildRoutes(c *catalog.Catalogs) *http.ServeMux {
	mux := http.NewServeMux()
	handle := func(pattern string, h http.Handler) {
		mux.Handle(pattern, metrics.Instrument(pattern, h))
	}

	handle("GET /parks", listHandler(c.Parks))
	handle("GET /parks/{id}", getHandler(c.Parks, "parks", MsgParkNotFound))
	handle("GET /parks/search/{query}", searchHandler(c.Parks, "parks"))

	handle("GET /states", listHandler(c.States))
	handle("GET /states/{id}", getHandler(c.States, "states", MsgStateNotFound))
	handle("GET /states/search/{query}", searchHandler(c.States, "states"))

	handle("GET /health", healthHandler(c))
	mux.HandleFunc("/", fallback)
	return mux
}

func listHandler[T catalog.Record](c *catalog.Catalog[T]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, c.List())
	})
}

func getHandler[T catalog.Record](c *catalog.Catalog[T], name, notFound string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r.PathValue("id"))
		if err != nil {
			WriteError(w, http.StatusBadRequest, MsgInvalidID)
			return
		}
		rec, err := c.Get(id)
		if errors.Is(err, catalog.ErrNotFound) {
			metrics.NotFoundTotal.WithLabelValues(name).Inc()
			logger.L().Debug("catalog_lookup_miss", "catalog", name, "id", id)
			WriteError(w, http.StatusNotFound, notFound)
			return
		}
		if err != nil {
			logger.L().Error("catalog_lookup_error", "catalog", name, "id", id, "err", err)
			WriteError(w, http.StatusInternalServerError, MsgInternal)
			return
		}
		WriteJSON(w, http.StatusOK, rec)
	})
}

func searchHandler[T catalog.Record](c *catalog.Catalog[T], name string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.PathValue("query")
		res := c.Search(query)
		metrics.ObserveSearch(name, len(res))
		logger.L().Debug("catalog_search", "catalog", name, "query", query, "results", len(res))
		WriteJSON(w, http.StatusOK, res)
	})
}

// parseID：id 必须是十进制 uint32；非数字或越界由调用方映射为 400
func parseID(s string) (uint32, error) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

type healthResult struct {
	Status string `json:"status"`
	Parks  int    `json:"parks"`
	States int    `json:"states"`
	Commit string `json:"commit"`
}

func healthHandler(c *catalog.Catalogs) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, http.StatusOK, healthResult{
			Status: "ok",
			Parks:  c.Parks.Len(),
			States: c.States.Len(),
			Commit: version.Commit,
		})
	})
}

// fallback：未注册路径返回 404；所有目录路由仅支持 GET，其它方法返回 405
func fallback(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("allow", "GET, HEAD")
		WriteError(w, http.StatusMethodNotAllowed, MsgMethodNotAllowed)
		return
	}
	WriteError(w, http.StatusNotFound, MsgNotFound)
}
