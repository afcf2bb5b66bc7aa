package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scrape(t *testing.T) string {
	t.Helper()
	rr := httptest.NewRecorder()
	Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)
	b, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	return string(b)
}

func TestInstrumentCountsRouteAndStatus(t *testing.T) {
	h := Instrument("GET /things/{id}", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/1", nil))

	body := scrape(t)
	assert.Contains(t, body, `parksapi_requests_total{route="GET /things/{id}",status="404"} 1`)
	assert.Contains(t, body, `parksapi_request_duration_ms_count{route="GET /things/{id}"} 1`)
}

func TestObserveSearchCountsEmpty(t *testing.T) {
	ObserveSearch("widgets", 0)
	ObserveSearch("widgets", 3)

	body := scrape(t)
	assert.Contains(t, body, `parksapi_empty_search_total{catalog="widgets"} 1`)
	assert.Contains(t, body, `parksapi_search_results_count{catalog="widgets"} 2`)
}
