package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoveryMiddlewareRendersErrorPage(t *testing.T) {
	errorPage := func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("something went wrong"))
	}

	handler := newRecoveryMiddleware(errorPage)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/catalogue", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "something went wrong", w.Body.String())
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	handler := newRequestLoggerMiddleware([]string{"/static"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/map", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestLogLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", logLevel("debug").String())
	assert.Equal(t, "WARN", logLevel("WARN").String())
	assert.Equal(t, "INFO", logLevel("").String())
}
