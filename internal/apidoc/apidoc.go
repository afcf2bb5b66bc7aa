// 包 apidoc：OpenAPI 文档与 Swagger UI 页面。文档以 YAML 编写并内嵌，启动时转换一次为 JSON
package apidoc

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"

	"gopkg.in/yaml.v3"
)

const (
	SpecPath = "/api-docs/openapi.json"
	UIPath   = "/swagger/"
)

//go:embed openapi.yaml
var specYAML []byte

//go:embed swagger.html
var swaggerHTML []byte

// Spec：将内嵌 YAML 文档转换为 JSON
func Spec() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(specYAML, &doc); err != nil {
		return nil, fmt.Errorf("parse openapi.yaml: %w", err)
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode openapi json: %w", err)
	}
	return b, nil
}

// Register：挂载文档、UI 页面以及 "/" 到 UI 的跳转
// 约束：文档解析失败时返回错误，由主入口决定是否终止启动。
func Register(mux *http.ServeMux) error {
	spec, err := Spec()
	if err != nil {
		return err
	}
	mux.HandleFunc("GET "+SpecPath, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "application/json; charset=utf-8")
		_, _ = w.Write(spec)
	})
	mux.HandleFunc("GET "+UIPath+"{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("content-type", "text/html; charset=utf-8")
		_, _ = w.Write(swaggerHTML)
	})
	mux.Handle("GET /{$}", http.RedirectHandler(UIPath, http.StatusFound))
	return nil
}
