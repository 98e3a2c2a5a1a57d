//go:build unit || e2e

package httptest

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// executes a JSON request against router
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err, "Failed to encode request body to JSON")
		reqBody = bytes.NewBuffer(jsonBody)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// executes a request whose body is sent as-is, for malformed-input cases
func PerformRawRequest(t *testing.T, router *gin.Engine, method, path, contentType string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// StreamRecorder is a ResponseRecorder that satisfies http.CloseNotifier,
// which gin's Context.Stream requires.
type StreamRecorder struct {
	*httptest.ResponseRecorder
	closeCh chan bool
}

func (r *StreamRecorder) CloseNotify() <-chan bool {
	return r.closeCh
}

// executes a streaming request until the handler returns
func PerformStreamRequest(t *testing.T, router *gin.Engine, path string) *StreamRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := &StreamRecorder{ResponseRecorder: httptest.NewRecorder(), closeCh: make(chan bool, 1)}
	router.ServeHTTP(w, req)
	return w
}

// decodes JSON response body into target struct
func DecodeResponseBody(t *testing.T, body *bytes.Buffer, target any) error {
	t.Helper()

	err := json.NewDecoder(body).Decode(target)
	require.NoError(t, err, "Failed to decode response body")

	return err
}
