package apidoc

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecListsCatalogRoutes(t *testing.T) {
	b, err := Spec()
	require.NoError(t, err)

	var doc struct {
		Paths      map[string]any `json:"paths"`
		Components struct {
			Schemas map[string]any `json:"schemas"`
		} `json:"components"`
	}
	require.NoError(t, json.Unmarshal(b, &doc))
	for _, p := range []string{"/parks", "/parks/{id}", "/parks/search/{query}", "/states", "/states/{id}", "/states/search/{query}"} {
		assert.Contains(t, doc.Paths, p)
	}
	for _, s := range []string{"Park", "State", "Response"} {
		assert.Contains(t, doc.Components.Schemas, s)
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	require.NoError(t, Register(mux))

	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, SpecPath, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, json.Valid(rr.Body.Bytes()))

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, UIPath, nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), SpecPath)

	rr = httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, UIPath, rr.Header().Get("Location"))
}
