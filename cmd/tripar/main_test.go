package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDocsRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/health", healthHandler)
	initSwagger(r)
	return r
}

func TestHealthHandler(t *testing.T) {
	rec := httptest.NewRecorder()
	newDocsRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSwaggerDocIsRegistered(t *testing.T) {
	rec := httptest.NewRecorder()
	newDocsRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		Info  struct{ Title string } `json:"info"`
		Paths map[string]any         `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Tripar Flight API", doc.Info.Title)
	for _, path := range []string{"/v1/flights/search", "/v1/flights/filter", "/v1/flights/book", "/v1/bookings", "/api/flights/flights"} {
		assert.Contains(t, doc.Paths, path)
	}
}

func TestDocsPage(t *testing.T) {
	rec := httptest.NewRecorder()
	newDocsRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `data-url="/swagger/doc.json"`)
}
