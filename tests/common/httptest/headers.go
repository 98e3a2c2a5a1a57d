//go:build unit || e2e

package httptest

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}

func AssertHeaderPrefix(t *testing.T, w *httptest.ResponseRecorder, key, prefix string) {
	t.Helper()
	got := w.Header().Get(key)
	assert.True(t, strings.HasPrefix(got, prefix), "header %s = %q, want prefix %q", key, got, prefix)
}
