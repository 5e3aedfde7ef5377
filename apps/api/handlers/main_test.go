package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/regime-co/regime-api/libs/go/logger"
	"github.com/regime-co/regime-api/libs/go/middleware"
)

var (
	testRegimeID = uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	testOrderID  = uuid.MustParse("11234567-89ab-cdef-0123-456789abcdef")
	testReviewID = uuid.MustParse("21234567-89ab-cdef-0123-456789abcdef")
)

const testSessionID = "sess_5f1c2a"

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger("test")
	os.Exit(m.Run())
}

// newTestRouter builds an engine with the correlation middleware and the given routes
func newTestRouter(register func(r *gin.Engine)) *gin.Engine {
	r := gin.New()
	r.Use(middleware.CorrelationIDMiddleware())
	register(r)
	return r
}

// perform sends a request with an optional JSON body and returns the recorder
func perform(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionHeaders() map[string]string {
	return map[string]string{middleware.SessionIDHeader: testSessionID}
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return out
}
