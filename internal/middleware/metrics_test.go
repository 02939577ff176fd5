package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsLabelsByRouteTemplate(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "/items/:id", "204")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/items/"+id, nil))
		assert.Equal(t, http.StatusNoContent, w.Code)
	}

	assert.Equal(t, before+3, testutil.ToFloat64(counter))
	assert.Equal(t, float64(0), testutil.ToFloat64(httpRequestsInFlight))
}

func TestMetricsUnmatchedRoute(t *testing.T) {
	router := gin.New()
	router.Use(Metrics())

	counter := httpRequestsTotal.WithLabelValues(http.MethodGet, "unmatched", "404")
	before := testutil.ToFloat64(counter)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
