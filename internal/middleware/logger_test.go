package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func TestNewStructuredLogger(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf))

	handler := NewStructuredLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/acquirers", nil)
	handler.ServeHTTP(w, req)

	require.Equal(t, http.StatusTeapot, w.Code)

	out := buf.String()
	require.Contains(t, out, "request completed")
	require.Contains(t, out, "method=GET")
	require.Contains(t, out, "path=/acquirers")
	require.Contains(t, out, "status=418")
	require.Contains(t, out, "request_id=")
}
